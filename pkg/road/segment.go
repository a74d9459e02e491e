package road

import (
	"github.com/velezas/osm-road-routing/pkg/geometry"
)

type RoadType int

const (
	Unknown RoadType = iota
	Motorway
	Trunk
	Primary
	Secondary
	Tertiary
	Residential
)

// A Segment is one stretch of road as imported from the map data,
// before it is turned into graph arcs.
type Segment struct {
	ID     int64
	Type   RoadType
	Points []geometry.Point
	Tags   map[string]string
	OneWay bool
}

func (r RoadType) String() string {
	return []string{"unclassified", "motorway", "trunk", "primary", "secondary", "tertiary", "residential"}[r]
}

// TypeFromHighwayTag maps an OSM highway tag value to a RoadType.
// Tag values outside the routable road classes map to Unknown.
func TypeFromHighwayTag(highway string) RoadType {
	switch highway {
	case "motorway":
		return Motorway
	case "trunk":
		return Trunk
	case "primary":
		return Primary
	case "secondary":
		return Secondary
	case "tertiary":
		return Tertiary
	case "residential", "unclassified", "living_street", "service":
		return Residential
	default:
		return Unknown
	}
}
