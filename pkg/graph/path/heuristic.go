package path

import (
	"github.com/velezas/osm-road-routing/pkg/graph"
)

// A Heuristic estimates the remaining distance between two nodes in meters.
//
// For the shortest-path guarantee of AStar to hold, the estimate must be
// admissible (never larger than the true shortest distance) and consistent
// with the arc weights. This is a documented precondition and is not checked
// at runtime. estimate(a, a) must be 0.
type Heuristic func(from, to graph.NodeId) int

// NewHaversineHeuristic returns the default heuristic for graphs whose arc
// weights are physical distances in meters: the great circle distance between
// the node coordinates. The value is scaled down by 1% so that integer
// rounding of arc weights cannot make it overestimate.
func NewHaversineHeuristic(g graph.Graph) Heuristic {
	return func(from, to graph.NodeId) int {
		return int(0.99 * float64(g.GetNode(from).IntHaversine(*g.GetNode(to))))
	}
}
