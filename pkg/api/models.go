package api

import (
	"fmt"
	"strconv"
	"strings"
)

// BBox is a geographic bounding box in Overpass order (south, west, north, east).
type BBox struct {
	South float64 `yaml:"south" validate:"gte=-90,lte=90,ltfield=North"`
	West  float64 `yaml:"west" validate:"gte=-180,lte=180,ltfield=East"`
	North float64 `yaml:"north" validate:"gte=-90,lte=90"`
	East  float64 `yaml:"east" validate:"gte=-180,lte=180"`
}

// WuppertalBBox approximates the Wuppertal city area.
var WuppertalBBox = BBox{South: 51.18, West: 7.02, North: 51.33, East: 7.28}

// DefaultOperators are the operator tag values the query matches on.
var DefaultOperators = []string{"WSW", "Wuppertaler Stadtwerke", "Wuppertaler Stadtwerke Mobilität"}

// String formats the box the way Overpass QL expects it: "s,w,n,e".
func (b BBox) String() string {
	parts := []string{
		formatCoord(b.South),
		formatCoord(b.West),
		formatCoord(b.North),
		formatCoord(b.East),
	}
	return strings.Join(parts, ",")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildQuery renders the Overpass QL query selecting charging stations run by
// any of the given operators inside bbox. Nodes, ways and relations are all
// requested; only nodes carry coordinates in the body output.
func BuildQuery(bbox BBox, operators []string) string {
	ops := strings.Join(operators, "|")
	box := bbox.String()

	var sb strings.Builder
	sb.WriteString("[out:json];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&sb, "  %s[\"amenity\"=\"charging_station\"][\"operator\"~\"%s\"](%s);\n", kind, ops, box)
	}
	sb.WriteString(");\nout body;\n>;\nout skel qt;\n")
	return sb.String()
}
