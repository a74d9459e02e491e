package server

// Point is a coordinate in the JSON API.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteRequest asks for a route between two coordinates. Algorithm is
// optional and defaults to dijkstra.
type RouteRequest struct {
	Origin      Point  `json:"origin"`
	Destination Point  `json:"destination"`
	Algorithm   string `json:"algorithm,omitempty"`
}

// CompareRequest asks for the same route computed by both algorithms.
type CompareRequest struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
}

type Path struct {
	Length    int     `json:"length"`
	Waypoints []Point `json:"waypoints"`
}

// SearchStats carries the exploration statistics of one search run.
type SearchStats struct {
	NodesExplored int     `json:"nodesExplored"`
	NodesVisited  int     `json:"nodesVisited"`
	PathLength    int     `json:"pathLength"`
	DurationMs    float64 `json:"durationMs"`
}

type RouteResult struct {
	Origin      Point       `json:"origin"`
	Destination Point       `json:"destination"`
	Algorithm   string      `json:"algorithm"`
	Reachable   bool        `json:"reachable"`
	Path        Path        `json:"path"`
	Stats       SearchStats `json:"stats"`
}

// CompareResult holds both results side by side.
type CompareResult struct {
	Dijkstra RouteResult `json:"dijkstra"`
	AStar    RouteResult `json:"astar"`
}

// Nodes lists all node coordinates of the served graph.
type Nodes struct {
	Waypoints []Point `json:"waypoints"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
