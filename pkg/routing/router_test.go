package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/graph"
)

// Three nodes on the equator, 0 -> 1 -> 2 west to east, arc weights slightly
// above the great circle distances.
const equatorChainFmi = `3
4
# nodes
0 0 0
1 0 0.01
2 0 0.02
# edges
0 1 1112
1 0 1112
1 2 1112
2 1 1112`

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	return NewRouter(graph.NewAdjacencyArrayFromFmiString(equatorChainFmi))
}

func TestFindNearestNode(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, 0, router.FindNearestNode(geometry.MakePoint(0.001, -0.002)))
	assert.Equal(t, 1, router.FindNearestNode(geometry.MakePoint(0, 0.0102)))
	assert.Equal(t, 2, router.FindNearestNode(geometry.MakePoint(0, 1)))
}

func TestFindNearestNodeEmptyGraph(t *testing.T) {
	router := NewRouter(graph.NewAdjacencyListGraph())
	assert.Equal(t, -1, router.FindNearestNode(geometry.MakePoint(0, 0)))
}

func TestComputeRoute(t *testing.T) {
	router := newTestRouter(t)

	route, err := router.ComputeRoute(geometry.MakePoint(0, 0), geometry.MakePoint(0, 0.02), AlgorithmDijkstra)
	require.NoError(t, err)

	assert.True(t, route.Exists)
	assert.Equal(t, 2224, route.Length)
	assert.Equal(t, 3, route.PathLength)
	require.Len(t, route.Waypoints, 3)
	assert.Equal(t, 0.0, route.Waypoints[0].Lon())
	assert.Equal(t, 0.02, route.Waypoints[2].Lon())
	assert.LessOrEqual(t, route.NodesVisited, route.NodesExplored)
}

func TestComputeRouteUnknownAlgorithm(t *testing.T) {
	router := newTestRouter(t)

	_, err := router.ComputeRoute(geometry.MakePoint(0, 0), geometry.MakePoint(0, 0.02), "bellman-ford")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCompare(t *testing.T) {
	router := newTestRouter(t)

	comparison, err := router.Compare(geometry.MakePoint(0, 0), geometry.MakePoint(0, 0.02))
	require.NoError(t, err)

	assert.Equal(t, AlgorithmDijkstra, comparison.Dijkstra.Algorithm)
	assert.Equal(t, AlgorithmAStar, comparison.AStar.Algorithm)
	assert.True(t, comparison.Dijkstra.Exists)
	assert.True(t, comparison.AStar.Exists)
	assert.Equal(t, comparison.Dijkstra.Length, comparison.AStar.Length)
	assert.Equal(t, comparison.Dijkstra.PathLength, comparison.AStar.PathLength)
}
