package path

import (
	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/slice"
)

// A Result is the outcome of a single search run. Dijkstra and AStar produce
// the identical shape so runs can be compared side by side.
type Result struct {
	Path          []graph.NodeId // ordered nodes from origin to destination, empty if unreachable
	Distance      int            // sum of arc weights along Path, only meaningful if Reachable
	Reachable     bool           // false if the frontier emptied before settling the destination
	NodesExplored int            // frontier pushes performed during the search
	NodesVisited  int            // nodes settled during the search
	PathLength    int            // number of nodes on Path
}

// newResult assembles the result from the final search state. Pure bookkeeping,
// no algorithmic decisions.
func newResult(state *searchState, origin, destination graph.NodeId) Result {
	result := Result{
		Path:          make([]graph.NodeId, 0),
		NodesExplored: state.explored,
		NodesVisited:  state.visited,
	}

	if !state.settled[destination] {
		// unreachable is a normal outcome, not an error
		return result
	}

	for nodeId := destination; nodeId != -1; nodeId = state.searchSpace[nodeId].predecessor {
		result.Path = append(result.Path, nodeId)
	}
	slice.ReverseInPlace(result.Path)

	result.Distance = state.searchSpace[destination].distance
	result.Reachable = true
	result.PathLength = len(result.Path)
	return result
}
