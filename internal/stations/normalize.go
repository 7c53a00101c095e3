package stations

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	defaultPlugs   = 2
	defaultACPower = "22 kW"
	defaultDCPower = "50 kW"
)

// Normalizer turns an Overpass response tree into stations owned by one
// operator. The zero value is not usable; start from DefaultNormalizer.
type Normalizer struct {
	// Owners are matched case-sensitively as substrings of the operator tag.
	Owners []string
	// Locality is used when an element has no usable address, and as the
	// city of structured addresses without addr:city.
	Locality string
	// NamePrefix starts the synthesized name of unnamed stations.
	NamePrefix string
	// Fallback is returned instead of an empty result.
	Fallback func() []Station
}

// DefaultNormalizer returns the normalizer for WSW stations in Wuppertal.
func DefaultNormalizer() Normalizer {
	return Normalizer{
		Owners:     []string{"WSW", "Wuppertaler Stadtwerke"},
		Locality:   "Wuppertal",
		NamePrefix: "WSW",
		Fallback:   Fallback,
	}
}

// Normalize converts raw with the default WSW rules.
func Normalize(raw any) []Station {
	return DefaultNormalizer().Normalize(raw)
}

// Normalize converts a decoded Overpass document into stations. It never
// fails and never returns an empty slice: a document without an elements
// array, or one where no element survives filtering, yields the fallback
// dataset instead.
func (n Normalizer) Normalize(raw any) []Station {
	root, ok := raw.(map[string]any)
	if !ok {
		return n.fallback()
	}
	elements, ok := root["elements"].([]any)
	if !ok {
		return n.fallback()
	}

	stations := make([]Station, 0, len(elements))
	for _, el := range elements {
		station, ok := n.convert(el)
		if !ok {
			continue
		}
		stations = append(stations, station)
	}

	if len(stations) == 0 {
		return n.fallback()
	}
	return stations
}

func (n Normalizer) fallback() []Station {
	if n.Fallback == nil {
		return Fallback()
	}
	if out := n.Fallback(); len(out) > 0 {
		return out
	}
	return Fallback()
}

// convert maps one element, reporting false when it must be skipped.
func (n Normalizer) convert(el any) (Station, bool) {
	obj, ok := el.(map[string]any)
	if !ok {
		return Station{}, false
	}
	// Ways and relations have no coordinates in body output.
	if obj["type"] != "node" {
		return Station{}, false
	}
	rawTags, ok := obj["tags"].(map[string]any)
	if !ok {
		return Station{}, false
	}
	t := tags(rawTags)

	if t.get("amenity") != "charging_station" {
		return Station{}, false
	}
	operator := t.get("operator")
	if !n.ownedBy(operator) {
		return Station{}, false
	}

	id, err := cast.ToStringE(obj["id"])
	if err != nil || id == "" {
		return Station{}, false
	}
	lat, lon, ok := coordinates(obj)
	if !ok {
		return Station{}, false
	}

	ct := inferConnectionType(t)

	name := t.get("name")
	if name == "" {
		name = strings.TrimSpace(n.NamePrefix + " Ladestation " + string(ct))
	}

	status := StatusActive
	if t.get("operational_status") == "closed" {
		status = StatusInactive
	}

	power := t.get("maxpower")
	if power == "" {
		power = defaultPower(ct)
	}

	return Station{
		ID:                id,
		Name:              name,
		Address:           n.inferAddress(t),
		Lat:               lat,
		Lon:               lon,
		ConnectionType:    ct,
		Plugs:             inferPlugs(t),
		OperationalStatus: status,
		PowerOutput:       power,
		Operator:          operator,
	}, true
}

func (n Normalizer) ownedBy(operator string) bool {
	if operator == "" {
		return false
	}
	for _, owner := range n.Owners {
		if owner != "" && strings.Contains(operator, owner) {
			return true
		}
	}
	return false
}

func (n Normalizer) inferAddress(t tags) string {
	street := t.get("addr:street")
	houseNumber := t.get("addr:housenumber")
	if street != "" && houseNumber != "" {
		city := t.get("addr:city")
		if city == "" {
			city = n.Locality
		}
		locality := strings.TrimSpace(t.get("addr:postcode") + " " + city)
		return strings.TrimSpace(street + " " + houseNumber + ", " + locality)
	}
	if addr := strings.TrimSpace(t.get("address")); addr != "" {
		return addr
	}
	if desc := strings.TrimSpace(t.get("description")); desc != "" {
		return desc
	}
	return n.Locality
}

// inferConnectionType starts from AC; any fast-charging hint promotes to DC.
func inferConnectionType(t tags) ConnectionType {
	if t.get("socket_ccs") != "" || t.get("socket_chademo") != "" {
		return DC
	}
	if strings.Contains(t.get("socket_type"), "fast") {
		return DC
	}
	if level, ok := leadingInt(t.get("charging_levels")); ok && level > 2 {
		return DC
	}
	return AC
}

// inferPlugs reads socket_count, then capacity. The first non-empty tag
// decides; anything that does not start with a positive integer gives the
// default.
func inferPlugs(t tags) int {
	raw := t.get("socket_count")
	if raw == "" {
		raw = t.get("capacity")
	}
	if n, ok := leadingInt(raw); ok && n >= 1 {
		return n
	}
	return defaultPlugs
}

func defaultPower(ct ConnectionType) string {
	if ct == DC {
		return defaultDCPower
	}
	return defaultACPower
}

func coordinates(obj map[string]any) (lat, lon float64, ok bool) {
	lat, err := cast.ToFloat64E(obj["lat"])
	if err != nil || obj["lat"] == nil {
		return 0, 0, false
	}
	lon, err = cast.ToFloat64E(obj["lon"])
	if err != nil || obj["lon"] == nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// leadingInt parses the integer prefix of s ("4 sockets" -> 4), ignoring
// leading whitespace.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

type tags map[string]any

func (t tags) get(key string) string {
	v, ok := t[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}
