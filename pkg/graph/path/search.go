package path

import (
	"fmt"

	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/queue"
)

// searchItem holds the per-node bookkeeping of a single search run.
type searchItem struct {
	distance    int          // best known distance from the origin
	predecessor graph.NodeId // previous node on the best known path, -1 for the origin
}

// searchState is created fresh for every search run and discarded once the
// result is assembled. It is never shared between runs, so concurrent searches
// on the same graph do not interfere.
type searchState struct {
	searchSpace []*searchItem // indexed by node id, nil = node not discovered yet
	settled     []bool        // indexed by node id, true = distance is final
	explored    int           // frontier pushes
	visited     int           // settled nodes
}

func newSearchState(size int) *searchState {
	return &searchState{
		searchSpace: make([]*searchItem, size),
		settled:     make([]bool, size),
	}
}

// Dijkstra computes the shortest path from origin to destination by arc weight
// sum. It returns graph.ErrUnknownNode if either node is not in the graph; an
// unreachable destination is reported through the Result, not as an error.
func Dijkstra(g graph.Graph, origin, destination graph.NodeId) (Result, error) {
	return runSearch(g, origin, destination, nil)
}

// AStar computes the shortest path from origin to destination, guided by the
// heuristic. If h is nil, the great circle distance between node coordinates
// is used. The result is guaranteed shortest only for an admissible and
// consistent heuristic; for any other heuristic a path is still returned but
// may be longer than optimal.
func AStar(g graph.Graph, origin, destination graph.NodeId, h Heuristic) (Result, error) {
	if h == nil {
		h = NewHaversineHeuristic(g)
	}
	return runSearch(g, origin, destination, h)
}

// runSearch is the engine behind both algorithms. A nil heuristic gives plain
// Dijkstra; otherwise the frontier is ordered by distance plus estimate while
// distances themselves accumulate true arc weights only.
//
// Stale frontier entries (a node pushed again with a better distance leaves
// the old entry behind) are skipped at pop time via the settled check.
func runSearch(g graph.Graph, origin, destination graph.NodeId, h Heuristic) (Result, error) {
	if !graph.Contains(g, origin) {
		return Result{}, fmt.Errorf("origin %v: %w", origin, graph.ErrUnknownNode)
	}
	if !graph.Contains(g, destination) {
		return Result{}, fmt.Errorf("destination %v: %w", destination, graph.ErrUnknownNode)
	}

	state := newSearchState(g.NodeCount())
	state.searchSpace[origin] = &searchItem{distance: 0, predecessor: -1}

	frontier := queue.NewFrontier()
	frontier.Push(priority(0, origin, destination, h), origin)
	state.explored++

	for !frontier.IsEmpty() {
		entry := frontier.Pop()
		currentNodeId := entry.NodeId

		if state.settled[currentNodeId] {
			// stale entry, a shorter path to this node was settled earlier
			continue
		}
		state.settled[currentNodeId] = true
		state.visited++

		if currentNodeId == destination {
			break
		}

		currentDistance := state.searchSpace[currentNodeId].distance
		for _, arc := range g.GetArcsFrom(currentNodeId) {
			successor := arc.Destination()
			if state.settled[successor] {
				continue
			}

			updatedDistance := currentDistance + arc.Cost()
			if item := state.searchSpace[successor]; item == nil {
				state.searchSpace[successor] = &searchItem{distance: updatedDistance, predecessor: currentNodeId}
			} else if updatedDistance < item.distance {
				item.distance = updatedDistance
				item.predecessor = currentNodeId
			} else {
				continue
			}

			frontier.Push(priority(updatedDistance, successor, destination, h), successor)
			state.explored++
		}
	}

	return newResult(state, origin, destination), nil
}

func priority(distance int, node, destination graph.NodeId, h Heuristic) int {
	if h == nil {
		return distance
	}
	return distance + h(node, destination)
}
