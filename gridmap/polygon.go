package gridmap

import "github.com/Forrest-Z/motion-planning-in-ROS/geom"

// Polygon is a closed obstacle boundary in world coordinates, the minimal
// collision-geometry collaborator Theta* needs for its line-of-sight check.
type Polygon struct {
	Vertices []geom.Point
}

// SegmentIntersects reports whether the segment a-b crosses any edge of p,
// with each edge of p first offset by buffer (see inflate).
func (p Polygon) SegmentIntersects(a, b geom.Point, buffer float64) bool {
	n := len(p.Vertices)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		v0 := p.Vertices[i]
		v1 := p.Vertices[(i+1)%n]
		if segmentsIntersect(a, b, inflate(v0, v1, buffer).p0, inflate(v0, v1, buffer).p1) {
			return true
		}
	}
	return false
}

type segment struct{ p0, p1 geom.Point }

// inflate offsets an obstacle edge outward by buffer along its normal, a
// cheap Minkowski-style approximation that is sufficient for Theta*'s
// purpose: a conservative line-of-sight reject, not exact clearance. The
// normal points outward for counter-clockwise vertex order, the order
// RectangleObstacle produces.
func inflate(v0, v1 geom.Point, buffer float64) segment {
	if buffer == 0 {
		return segment{v0, v1}
	}
	dx, dy := v1.X-v0.X, v1.Y-v0.Y
	length := v0.Distance(v1)
	if length == 0 {
		return segment{v0, v1}
	}
	nx, ny := dy/length*buffer, -dx/length*buffer
	return segment{
		p0: geom.Point{X: v0.X + nx, Y: v0.Y + ny},
		p1: geom.Point{X: v1.X + nx, Y: v1.Y + ny},
	}
}

// segmentsIntersect reports whether segments p1-p2 and p3-p4 cross, using
// the standard orientation test.
func segmentsIntersect(p1, p2, p3, p4 geom.Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p geom.Point) bool {
	return p.X <= max(a.X, b.X) && p.X >= min(a.X, b.X) &&
		p.Y <= max(a.Y, b.Y) && p.Y >= min(a.Y, b.Y)
}

// RectangleObstacle is a convenience constructor for an axis-aligned box
// obstacle whose corners are the world points of grid cells (x0, y0) and
// (x1, y1), as GridToWorld gives them; used by test fixtures.
func RectangleObstacle(g *Grid, x0, y0, x1, y1 int) Polygon {
	c := g.CellSize
	return Polygon{Vertices: []geom.Point{
		{X: float64(x0) * c, Y: float64(y0) * c},
		{X: float64(x1) * c, Y: float64(y0) * c},
		{X: float64(x1) * c, Y: float64(y1) * c},
		{X: float64(x0) * c, Y: float64(y1) * c},
	}}
}
