package graph

import (
	"errors"
	"fmt"
	"strings"

	geo "github.com/velezas/osm-road-routing/pkg/geometry"
)

type NodeId = int

// ErrUnknownNode is returned when a node id is not part of the graph.
var ErrUnknownNode = errors.New("graph: unknown node")

// Graph is a read-only weighted graph over geographic nodes.
// Implementations must be safe for concurrent readers; a graph is never
// mutated while a search runs on it.
type Graph interface {
	GetNode(id NodeId) *geo.Point
	GetNodes() []geo.Point
	GetArcsFrom(id NodeId) []Arc
	NodeCount() int
	ArcCount() int
	AsString() string
}

// DynamicGraph is a graph which can still grow. Used while building,
// never during a search.
type DynamicGraph interface {
	Graph
	AddNode(n geo.Point)
	AddArc(from, to NodeId, distance int) bool
}

type Arcs = []Arc

// Contains reports whether the given node id is part of the graph.
func Contains(g Graph, id NodeId) bool {
	return id >= 0 && id < g.NodeCount()
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of arcs
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id lat lon"
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(i)
		sb.WriteString(fmt.Sprintf("%v %v %v\n", i, node.Lat(), node.Lon()))
	}

	sb.WriteString("#Edges\n")
	// list all arcs structured as "fromId targetId distance"
	for i := 0; i < g.NodeCount(); i++ {
		for _, arc := range g.GetArcsFrom(i) {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", i, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}
