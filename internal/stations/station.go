// Package stations holds the charging station model, the normalizer that
// builds it from Overpass data, and the in-memory filter and proximity queries
// run over station lists.
package stations

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConnectionType is the charging current a station delivers.
type ConnectionType string

const (
	AC ConnectionType = "AC"
	DC ConnectionType = "DC"
)

// OperationalStatus reports whether a station is in service.
type OperationalStatus string

const (
	StatusActive   OperationalStatus = "active"
	StatusInactive OperationalStatus = "inactive"
)

// CityCenter is the default map center (Wuppertal).
var CityCenter = struct{ Lat, Lon float64 }{Lat: 51.2562, Lon: 7.1509}

// Station is a normalized charging station. Values are never mutated after
// construction.
type Station struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Address           string            `json:"address"`
	Lat               float64           `json:"lat"`
	Lon               float64           `json:"lon"`
	ConnectionType    ConnectionType    `json:"connectionType"`
	Plugs             int               `json:"plugs"`
	OperationalStatus OperationalStatus `json:"operationalStatus,omitempty"`
	PowerOutput       string            `json:"powerOutput,omitempty"`
	Operator          string            `json:"operator,omitempty"`
}

// NavigationURL returns a Google Maps directions link to the station.
func (s Station) NavigationURL() string {
	dest := strconv.FormatFloat(s.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(s.Lon, 'f', -1, 64)
	q := url.Values{"api": {"1"}, "destination": {dest}}
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

// Filter narrows a station list. Zero-valued fields match everything.
type Filter struct {
	SearchTerm     string         `json:"searchTerm,omitempty"`
	ConnectionType ConnectionType `json:"connectionType,omitempty"`
	MinPlugs       int            `json:"minPlugs,omitempty"`
}

// IsEmpty reports whether the filter lets every station through.
func (f Filter) IsEmpty() bool {
	return f.SearchTerm == "" && f.ConnectionType == "" && f.MinPlugs <= 0
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseConnectionType maps user input to a ConnectionType, ignoring case and
// surrounding blanks. The empty string means "all types".
func ParseConnectionType(s string) (ConnectionType, error) {
	ct := ConnectionType(strings.ToUpper(strings.TrimSpace(s)))
	if err := validate.Var(ct, "omitempty,oneof=AC DC"); err != nil {
		return "", fmt.Errorf("unknown connection type %q", s)
	}
	return ct, nil
}

// ParseMinPlugs reads the minimum plug count from form input. Only the
// leading integer counts; anything unparsable means no minimum.
func ParseMinPlugs(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 0 {
		return 0
	}
	return n
}
