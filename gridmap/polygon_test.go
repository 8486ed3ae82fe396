package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
)

func TestRectangleObstacleBlocksCrossing(t *testing.T) {
	g := gridmap.Build(10, 10, 1, gridmap.Conn8)
	box := gridmap.RectangleObstacle(g, 3, 3, 6, 6)

	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 9, Y: 9}
	require.True(t, box.SegmentIntersects(a, b, 0))
}

func TestRectangleObstacleMissedByFarSegment(t *testing.T) {
	g := gridmap.Build(10, 10, 1, gridmap.Conn8)
	box := gridmap.RectangleObstacle(g, 3, 3, 6, 6)

	a := geom.Point{X: 0, Y: 9}
	b := geom.Point{X: 1, Y: 9}
	require.False(t, box.SegmentIntersects(a, b, 0))
}
