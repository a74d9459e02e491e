package pbf

import (
	"os"
	"runtime"
	"sync"

	"github.com/qedus/osmpbf"

	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/road"
)

// RoadImporter extracts the road network from an OSM pbf extract.
// Every way tagged as a routable highway becomes one road segment.
type RoadImporter struct {
	filename string
	roads    []*road.Segment
	nodes    map[int64]geometry.Point
}

func NewRoadImporter(filename string) *RoadImporter {
	return &RoadImporter{
		filename: filename,
		roads:    make([]*road.Segment, 0),
		nodes:    make(map[int64]geometry.Point),
	}
}

// Import reads the pbf file in two passes: first all node coordinates,
// then the highway ways referencing them.
func (ri *RoadImporter) Import() error {
	if err := ri.collectNodes(); err != nil {
		return err
	}

	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	var wg sync.WaitGroup
	roadsChan := make(chan *road.Segment, 1000)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for segment := range roadsChan {
			ri.roads = append(ri.roads, segment)
		}
	}()

	for {
		v, err := decoder.Decode()
		if err != nil {
			close(roadsChan)
			break
		}
		switch v := v.(type) {
		case *osmpbf.Way:
			highway, ok := v.Tags["highway"]
			if !ok {
				continue
			}
			roadType := road.TypeFromHighwayTag(highway)
			if roadType == road.Unknown {
				continue
			}

			segment := &road.Segment{
				ID:     v.ID,
				Type:   roadType,
				Tags:   v.Tags,
				OneWay: v.Tags["oneway"] == "yes",
				Points: make([]geometry.Point, 0, len(v.NodeIDs)),
			}
			for _, nodeID := range v.NodeIDs {
				if point, ok := ri.nodes[nodeID]; ok {
					segment.Points = append(segment.Points, point)
				}
			}
			if len(segment.Points) > 0 {
				roadsChan <- segment
			}
		}
	}

	wg.Wait()
	return nil
}

func (ri *RoadImporter) Roads() []*road.Segment {
	return ri.roads
}

func (ri *RoadImporter) collectNodes() error {
	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err != nil {
			break
		}
		switch v := v.(type) {
		case *osmpbf.Node:
			ri.nodes[v.ID] = geometry.MakePoint(v.Lat, v.Lon)
		}
	}
	return nil
}
