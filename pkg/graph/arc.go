package graph

// An Arc is a directed, weighted connection to another node.
// Distance is the arc weight in meters and must be non-negative.
type Arc struct {
	To       NodeId
	Distance int
	RoadType string
}

func MakeArc(to NodeId, distance int, roadType string) Arc {
	return Arc{To: to, Distance: distance, RoadType: roadType}
}

func NewArc(to NodeId, distance int, roadType string) *Arc {
	return &Arc{To: to, Distance: distance, RoadType: roadType}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Cost() int {
	return a.Distance
}
