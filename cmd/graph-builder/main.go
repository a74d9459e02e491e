package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/velezas/osm-road-routing/internal/osmxml"
	"github.com/velezas/osm-road-routing/internal/pbf"
	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/road"
)

func main() {
	pbfFile := flag.String("pbf", "", "build the road graph from a .osm.pbf extract")
	xmlFile := flag.String("osm", "", "build the road graph from a plain .osm XML extract")
	outputFile := flag.String("o", "road_graph.fmi", "output graph file")
	flag.Parse()

	if (*pbfFile == "") == (*xmlFile == "") {
		log.Fatal("exactly one of -pbf and -osm must be given")
	}

	start := time.Now()
	roads := importRoads(*pbfFile, *xmlFile)
	fmt.Printf("[TIME] Import: %s\n", time.Since(start))
	fmt.Printf("Road segments: %d\n", len(roads))

	start = time.Now()
	merger := road.NewMerger(roads)
	merger.Merge()
	roads = merger.Roads()
	fmt.Printf("[TIME] Merge: %s\n", time.Since(start))
	fmt.Printf("Merged segments: %d (%d merges, %d unmergable)\n",
		len(roads), merger.MergeCount(), merger.UnmergableRoadCount())

	start = time.Now()
	g := buildGraph(roads)
	fmt.Printf("[TIME] Build graph: %s\n", time.Since(start))
	fmt.Printf("Nodes: %d\n", g.NodeCount())
	fmt.Printf("Arcs: %d\n", g.ArcCount())

	start = time.Now()
	graph.WriteFmi(g, *outputFile)
	fmt.Printf("[TIME] Export: %s\n", time.Since(start))
	fmt.Printf("Wrote graph to %s\n", *outputFile)
}

func importRoads(pbfFile, xmlFile string) []*road.Segment {
	if pbfFile != "" {
		importer := pbf.NewRoadImporter(pbfFile)
		if err := importer.Import(); err != nil {
			log.Fatal(err)
		}
		return importer.Roads()
	}

	importer := osmxml.NewRoadImporter(xmlFile)
	if err := importer.Import(context.Background()); err != nil {
		log.Fatal(err)
	}
	return importer.Roads()
}

// buildGraph turns road segments into a weighted graph. Consecutive segment
// points become nodes, connected by arcs weighted with the great circle
// distance in meters. Two-way roads get arcs in both directions.
func buildGraph(roads []*road.Segment) *graph.AdjacencyListGraph {
	g := graph.NewAdjacencyListGraph()

	pointToNode := make(map[geometry.Point]int)
	for _, segment := range roads {
		for _, point := range segment.Points {
			if _, exists := pointToNode[point]; !exists {
				g.AddNode(point)
				pointToNode[point] = g.NodeCount() - 1
			}
		}
	}

	for _, segment := range roads {
		for i := 0; i < len(segment.Points)-1; i++ {
			from := pointToNode[segment.Points[i]]
			to := pointToNode[segment.Points[i+1]]

			weight := int(segment.Points[i].DistanceTo(segment.Points[i+1]))

			g.AddArc(from, to, weight)
			g.SetRoadType(from, to, segment.Type.String())

			if !segment.OneWay {
				g.AddArc(to, from, weight)
				g.SetRoadType(to, from, segment.Type.String())
			}
		}
	}

	return g
}
