package graph

import (
	"fmt"

	geo "github.com/velezas/osm-road-routing/pkg/geometry"
)

// Implementation for dynamic graphs
type AdjacencyListGraph struct {
	Nodes    []geo.Point // The nodes of the graph
	Edges    [][]Arc     // The arcs of the graph. The first index is the node the arcs start from
	arcCount int         // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		Nodes: make([]geo.Point, 0),
		Edges: make([][]Arc, 0),
	}
}

// Return the node for the given id
func (alg *AdjacencyListGraph) GetNode(id NodeId) *geo.Point {
	if id < 0 || id >= alg.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return &alg.Nodes[id]
}

// Return all nodes of the graph
func (alg *AdjacencyListGraph) GetNodes() []geo.Point {
	return alg.Nodes
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= alg.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return alg.Edges[id]
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.Nodes)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph
func (alg *AdjacencyListGraph) AddNode(n geo.Point) {
	alg.Nodes = append(alg.Nodes, n)
	alg.Edges = append(alg.Edges, make([]Arc, 0))
}

// Add an arc to the graph, going from source to target with the given distance.
// A duplicate arc is only kept if it improves the distance.
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, distance int) bool {
	if from >= alg.NodeCount() || to >= alg.NodeCount() {
		panic(fmt.Sprintf("Arc out of range %v -> %v", from, to))
	}

	arcs := alg.Edges[from]
	for i := range arcs {
		arc := &arcs[i]
		if to == arc.To {
			if distance < arc.Distance {
				arc.Distance = distance
				return true
			}
			return false
		}
	}

	alg.Edges[from] = append(alg.Edges[from], MakeArc(to, distance, "unclassified"))
	alg.arcCount++
	return true
}

// Set the road type of an existing arc
func (alg *AdjacencyListGraph) SetRoadType(from, to NodeId, roadType string) bool {
	if from >= alg.NodeCount() || to >= alg.NodeCount() {
		return false
	}

	arcs := alg.Edges[from]
	for i := range arcs {
		if arcs[i].To == to {
			arcs[i].RoadType = roadType
			return true
		}
	}
	return false
}
