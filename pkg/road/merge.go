package road

import (
	"github.com/velezas/osm-road-routing/pkg/geometry"
)

// Merger joins consecutive segments of the same road into longer ones to cut
// down the number of segments before graph construction. Only segments with
// matching attributes are merged.
type Merger struct {
	roads           []*Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(roads []*Segment) *Merger {
	return &Merger{
		roads: roads,
	}
}

func (m *Merger) Merge() {
	// index segments by their end points
	nodeToSegments := make(map[geometry.Point][]*Segment)

	for _, seg := range m.roads {
		if len(seg.Points) < 2 {
			m.unmergableCount++
			continue
		}

		start := seg.Points[0]
		end := seg.Points[len(seg.Points)-1]

		nodeToSegments[start] = append(nodeToSegments[start], seg)
		nodeToSegments[end] = append(nodeToSegments[end], seg)
	}

	merged := make(map[int64]bool)
	var newRoads []*Segment

	for _, seg := range m.roads {
		if merged[seg.ID] || len(seg.Points) < 2 {
			continue
		}

		current := seg
		for {
			end := current.Points[len(current.Points)-1]
			connected := nodeToSegments[end]

			foundNext := false
			for _, next := range connected {
				if merged[next.ID] || next.ID == current.ID {
					continue
				}
				if len(next.Points) < 2 || next.Points[0] != end {
					continue
				}

				if canMerge(current, next) {
					current = mergeTwoSegments(current, next)
					merged[next.ID] = true
					m.mergeCount++
					foundNext = true
					break
				}
			}

			if !foundNext {
				break
			}
		}

		newRoads = append(newRoads, current)
	}

	m.roads = newRoads
}

func canMerge(s1, s2 *Segment) bool {
	return s1.Type == s2.Type && s1.OneWay == s2.OneWay
}

func mergeTwoSegments(s1, s2 *Segment) *Segment {
	merged := &Segment{
		ID:     s1.ID,
		Type:   s1.Type,
		OneWay: s1.OneWay,
		Tags:   s1.Tags,
	}

	// the first point of s2 duplicates the last point of s1
	merged.Points = append(merged.Points, s1.Points...)
	merged.Points = append(merged.Points, s2.Points[1:]...)

	return merged
}

func (m *Merger) Roads() []*Segment {
	return m.roads
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableRoadCount() int {
	return m.unmergableCount
}
