package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/routing"
	"github.com/velezas/osm-road-routing/pkg/server"
)

func main() {
	graphFile := flag.String("graph", "road_graph.fmi", "graph file to serve")
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	start := time.Now()
	g := graph.NewAdjacencyArrayFromFmiFile(*graphFile)
	log.Printf("Loaded graph with %d nodes and %d arcs in %s", g.NodeCount(), g.ArcCount(), time.Since(start))

	router := routing.NewRouter(g)
	s := server.New(router)

	log.Printf("Listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, s.Handler()))
}
