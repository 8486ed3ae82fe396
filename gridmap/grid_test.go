package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
)

func TestBuildConn8Neighbors(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	center := g.NodeAt(1, 1)
	require.Len(t, center.Neighbors, 8)

	corner := g.NodeAt(0, 0)
	require.Len(t, corner.Neighbors, 3)
}

func TestBuildConn4Neighbors(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn4)
	center := g.NodeAt(1, 1)
	require.Len(t, center.Neighbors, 4)
}

func TestUpdateReportsChangedOnly(t *testing.T) {
	g := gridmap.Build(5, 5, 1, gridmap.Conn8)

	changed := g.Update([]gridmap.CellUpdate{
		{X: 2, Y: 2, Value: gridmap.Blocked},
		{X: 2, Y: 2, Value: gridmap.Blocked}, // idempotent: already blocked
		{X: 3, Y: 3, Value: gridmap.Free},    // no-op: already free
	})
	require.Equal(t, []bool{true, false, false}, changed)
	require.False(t, g.IsFree(2, 2))
}

func TestEdgeCostBlockedIsBigNum(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	g.Update([]gridmap.CellUpdate{{X: 1, Y: 1, Value: gridmap.Blocked}})

	a := g.NodeAt(0, 0)
	b := g.NodeAt(1, 1)
	require.Equal(t, gridmap.BigNum, g.EdgeCost(a, b))

	c := g.NodeAt(0, 1)
	d := g.NodeAt(0, 0)
	require.InDelta(t, 1.0, g.EdgeCost(c, d), 1e-9)
}

func TestWorldGridRoundTrip(t *testing.T) {
	g := gridmap.Build(4, 4, 0.5, gridmap.Conn4)
	p := g.GridToWorld(3, 2)
	x, y := g.WorldToGrid(p)
	require.Equal(t, 3, x)
	require.Equal(t, 2, y)
}
