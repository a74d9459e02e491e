package osmxml

import (
	"context"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/road"
)

// RoadImporter extracts the road network from a plain .osm XML extract,
// the format produced by the OSM export tab and by JOSM.
type RoadImporter struct {
	filename string
	roads    []*road.Segment
	nodes    map[osm.NodeID]geometry.Point
}

func NewRoadImporter(filename string) *RoadImporter {
	return &RoadImporter{
		filename: filename,
		roads:    make([]*road.Segment, 0),
		nodes:    make(map[osm.NodeID]geometry.Point),
	}
}

// Import scans the XML file once. Nodes precede the ways referencing them
// in well-formed OSM extracts, so a single pass suffices.
func (ri *RoadImporter) Import(ctx context.Context) error {
	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := osmxml.New(ctx, file)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			ri.nodes[o.ID] = geometry.MakePoint(o.Lat, o.Lon)
		case *osm.Way:
			ri.importWay(o)
		}
	}
	return scanner.Err()
}

func (ri *RoadImporter) importWay(way *osm.Way) {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return
	}
	roadType := road.TypeFromHighwayTag(highway)
	if roadType == road.Unknown {
		return
	}

	tags := make(map[string]string, len(way.Tags))
	for _, tag := range way.Tags {
		tags[tag.Key] = tag.Value
	}

	segment := &road.Segment{
		ID:     int64(way.ID),
		Type:   roadType,
		Tags:   tags,
		OneWay: tags["oneway"] == "yes",
		Points: make([]geometry.Point, 0, len(way.Nodes)),
	}
	for _, wayNode := range way.Nodes {
		if point, ok := ri.nodes[wayNode.ID]; ok {
			segment.Points = append(segment.Points, point)
		}
	}
	if len(segment.Points) > 0 {
		ri.roads = append(ri.roads, segment)
	}
}

func (ri *RoadImporter) Roads() []*road.Segment {
	return ri.roads
}
