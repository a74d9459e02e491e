package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velezas/osm-road-routing/pkg/geometry"
)

func segment(id int64, roadType RoadType, oneWay bool, coords ...[2]float64) *Segment {
	points := make([]geometry.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, geometry.MakePoint(c[0], c[1]))
	}
	return &Segment{ID: id, Type: roadType, OneWay: oneWay, Points: points}
}

func TestMergeConsecutiveSegments(t *testing.T) {
	roads := []*Segment{
		segment(1, Primary, false, [2]float64{0, 0}, [2]float64{0, 1}),
		segment(2, Primary, false, [2]float64{0, 1}, [2]float64{0, 2}),
		segment(3, Primary, false, [2]float64{0, 2}, [2]float64{0, 3}),
	}

	m := NewMerger(roads)
	m.Merge()

	require.Len(t, m.Roads(), 1)
	assert.Equal(t, 2, m.MergeCount())
	assert.Len(t, m.Roads()[0].Points, 4)
}

func TestNoMergeAcrossRoadTypes(t *testing.T) {
	roads := []*Segment{
		segment(1, Primary, false, [2]float64{0, 0}, [2]float64{0, 1}),
		segment(2, Tertiary, false, [2]float64{0, 1}, [2]float64{0, 2}),
	}

	m := NewMerger(roads)
	m.Merge()

	assert.Len(t, m.Roads(), 2)
	assert.Equal(t, 0, m.MergeCount())
}

func TestDegenerateSegmentsAreDropped(t *testing.T) {
	roads := []*Segment{
		segment(1, Primary, false, [2]float64{0, 0}),
		segment(2, Primary, false, [2]float64{0, 1}, [2]float64{0, 2}),
	}

	m := NewMerger(roads)
	m.Merge()

	assert.Len(t, m.Roads(), 1)
	assert.Equal(t, 1, m.UnmergableRoadCount())
}
