package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velezas/osm-road-routing/pkg/geometry"
	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/routing"
)

// Server exposes a routing.Router over HTTP. It holds no mutable state of
// its own, every request runs an independent search.
type Server struct {
	router *routing.Router
}

func New(router *routing.Router) *Server {
	return &Server{router: router}
}

type route struct {
	name    string
	method  string
	pattern string
	handler http.HandlerFunc
}

// Handler returns the http handler serving the routing API.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	for _, r := range s.routes() {
		router.Methods(r.method).Path(r.pattern).Name(r.name).Handler(r.handler)
	}
	return router
}

func (s *Server) routes() []route {
	return []route{
		{"ComputeRoute", http.MethodPost, "/routes", s.computeRoute},
		{"CompareRoutes", http.MethodPost, "/compare", s.compareRoutes},
		{"GetNodes", http.MethodGet, "/nodes", s.getNodes},
	}
}

// computeRoute handles POST /routes
func (s *Server) computeRoute(w http.ResponseWriter, r *http.Request) {
	var request RouteRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&request); err != nil {
		encodeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	algorithm := request.Algorithm
	if algorithm == "" {
		algorithm = routing.AlgorithmDijkstra
	}

	routeResult, err := s.router.ComputeRoute(
		geometry.MakePoint(request.Origin.Lat, request.Origin.Lon),
		geometry.MakePoint(request.Destination.Lat, request.Destination.Lon),
		algorithm,
	)
	if err != nil {
		encodeJSONResponse(w, statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	encodeJSONResponse(w, http.StatusOK, makeRouteResult(routeResult))
}

// compareRoutes handles POST /compare
func (s *Server) compareRoutes(w http.ResponseWriter, r *http.Request) {
	var request CompareRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&request); err != nil {
		encodeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comparison, err := s.router.Compare(
		geometry.MakePoint(request.Origin.Lat, request.Origin.Lon),
		geometry.MakePoint(request.Destination.Lat, request.Destination.Lon),
	)
	if err != nil {
		encodeJSONResponse(w, statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	encodeJSONResponse(w, http.StatusOK, CompareResult{
		Dijkstra: makeRouteResult(comparison.Dijkstra),
		AStar:    makeRouteResult(comparison.AStar),
	})
}

// getNodes handles GET /nodes
func (s *Server) getNodes(w http.ResponseWriter, r *http.Request) {
	points := s.router.GetNodes()

	waypoints := make([]Point, 0, len(points))
	for _, point := range points {
		waypoints = append(waypoints, Point{Lat: point.Lat(), Lon: point.Lon()})
	}

	encodeJSONResponse(w, http.StatusOK, Nodes{Waypoints: waypoints})
}

func makeRouteResult(route routing.Route) RouteResult {
	result := RouteResult{
		Origin:      Point{Lat: route.Origin.Lat(), Lon: route.Origin.Lon()},
		Destination: Point{Lat: route.Destination.Lat(), Lon: route.Destination.Lon()},
		Algorithm:   route.Algorithm,
		Reachable:   route.Exists,
		Stats: SearchStats{
			NodesExplored: route.NodesExplored,
			NodesVisited:  route.NodesVisited,
			PathLength:    route.PathLength,
			DurationMs:    float64(route.Duration.Microseconds()) / 1000.0,
		},
	}

	waypoints := make([]Point, 0, len(route.Waypoints))
	for _, waypoint := range route.Waypoints {
		waypoints = append(waypoints, Point{Lat: waypoint.Lat(), Lon: waypoint.Lon()})
	}
	result.Path = Path{Waypoints: waypoints}
	if route.Exists {
		result.Path.Length = route.Length
	}
	return result
}

func statusForError(err error) int {
	if errors.Is(err, routing.ErrUnknownAlgorithm) || errors.Is(err, graph.ErrUnknownNode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func encodeJSONResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
