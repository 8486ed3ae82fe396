package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
)

func TestDistance(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}
	require.InDelta(t, 5.0, a.Distance(b), 1e-9)
}

func TestEqual(t *testing.T) {
	a := geom.Point{X: 1, Y: 1}
	b := geom.Point{X: 1 + 1e-12, Y: 1 - 1e-12}
	require.True(t, a.Equal(b))

	c := geom.Point{X: 1.1, Y: 1}
	require.False(t, a.Equal(c))
}

func TestEqualFloatSymmetric(t *testing.T) {
	require.True(t, geom.EqualFloat(1e12, 1e12+1e-6))
	require.True(t, geom.EqualFloat(1e12+1e-6, 1e12))
	require.False(t, geom.EqualFloat(1.0, 2.0))
	require.False(t, geom.EqualFloat(2.0, 1.0))
}
