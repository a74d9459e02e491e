package routing

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/graph/path"
)

const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// ErrUnknownAlgorithm is returned for algorithm names other than
// "dijkstra" and "astar".
var ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

// A Route is the outcome of one shortest-path computation, resolved to
// coordinates so callers can draw it as a line overlay.
type Route struct {
	Origin      geometry.Point   // requested origin
	Destination geometry.Point   // requested destination
	Algorithm   string           // algorithm that produced the route
	Exists      bool             // whether a path was found
	Waypoints   []geometry.Point // path as coordinates, empty if no path exists
	Length      int              // path length in meters

	// search statistics, for side by side comparison
	NodesExplored int
	NodesVisited  int
	PathLength    int
	Duration      time.Duration
}

// A Comparison holds the routes both algorithms produced for the same
// origin/destination pair.
type Comparison struct {
	Dijkstra Route
	AStar    Route
}

// Router maps coordinates onto the road graph and runs shortest-path
// searches on it. The graph is never mutated, so a single Router is safe
// for concurrent use.
type Router struct {
	g graph.Graph
}

func NewRouter(g graph.Graph) *Router {
	return &Router{g: g}
}

func (r *Router) Graph() graph.Graph {
	return r.g
}

// GetNodes returns the coordinates of all graph nodes.
func (r *Router) GetNodes() []geometry.Point {
	return r.g.GetNodes()
}

// FindNearestNode returns the graph node closest to the given coordinate,
// or -1 if the graph is empty.
func (r *Router) FindNearestNode(point geometry.Point) graph.NodeId {
	minDistance := math.MaxFloat64
	nearestNode := -1
	for i := 0; i < r.g.NodeCount(); i++ {
		if distance := point.DistanceTo(*r.g.GetNode(i)); distance < minDistance {
			minDistance = distance
			nearestNode = i
		}
	}
	return nearestNode
}

// ComputeRoute runs the named algorithm between the graph nodes nearest to
// origin and destination.
func (r *Router) ComputeRoute(origin, destination geometry.Point, algorithm string) (Route, error) {
	originNode := r.FindNearestNode(origin)
	destinationNode := r.FindNearestNode(destination)
	if originNode == -1 || destinationNode == -1 {
		return Route{}, fmt.Errorf("no node near (%v, %v): %w", origin.Lat(), origin.Lon(), graph.ErrUnknownNode)
	}
	return r.computeRoute(origin, destination, originNode, destinationNode, algorithm)
}

// Compare runs Dijkstra and A* for the same pair. The searches run
// concurrently; each owns its private state, the shared graph is read-only.
func (r *Router) Compare(origin, destination geometry.Point) (Comparison, error) {
	originNode := r.FindNearestNode(origin)
	destinationNode := r.FindNearestNode(destination)
	if originNode == -1 || destinationNode == -1 {
		return Comparison{}, fmt.Errorf("no node near (%v, %v): %w", origin.Lat(), origin.Lon(), graph.ErrUnknownNode)
	}

	var comparison Comparison
	var dijkstraErr, astarErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		comparison.Dijkstra, dijkstraErr = r.computeRoute(origin, destination, originNode, destinationNode, AlgorithmDijkstra)
	}()
	go func() {
		defer wg.Done()
		comparison.AStar, astarErr = r.computeRoute(origin, destination, originNode, destinationNode, AlgorithmAStar)
	}()
	wg.Wait()

	if dijkstraErr != nil {
		return Comparison{}, dijkstraErr
	}
	if astarErr != nil {
		return Comparison{}, astarErr
	}
	return comparison, nil
}

func (r *Router) computeRoute(origin, destination geometry.Point, originNode, destinationNode graph.NodeId, algorithm string) (Route, error) {
	var result path.Result
	var err error

	start := time.Now()
	switch algorithm {
	case AlgorithmDijkstra:
		result, err = path.Dijkstra(r.g, originNode, destinationNode)
	case AlgorithmAStar:
		result, err = path.AStar(r.g, originNode, destinationNode, nil)
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	elapsed := time.Since(start)

	if err != nil {
		return Route{}, err
	}

	route := Route{
		Origin:        origin,
		Destination:   destination,
		Algorithm:     algorithm,
		Exists:        result.Reachable,
		Waypoints:     r.buildWaypoints(result.Path),
		Length:        result.Distance,
		NodesExplored: result.NodesExplored,
		NodesVisited:  result.NodesVisited,
		PathLength:    result.PathLength,
		Duration:      elapsed,
	}
	return route, nil
}

func (r *Router) buildWaypoints(nodeIds []graph.NodeId) []geometry.Point {
	waypoints := make([]geometry.Point, 0, len(nodeIds))
	for _, nodeId := range nodeIds {
		waypoints = append(waypoints, *r.g.GetNode(nodeId))
	}
	return waypoints
}
