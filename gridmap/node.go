// Package gridmap builds the graph of nodes with neighbor sets the planners
// consume, and the occupancy grid LPA*/D* Lite query through EdgeCost. None
// of this package makes planning decisions; it only hands the planner
// package a graph and a cost oracle.
package gridmap

import "github.com/Forrest-Z/motion-planning-in-ROS/geom"

// Node is a dense integer id, its world point, and the set of neighboring
// node ids. The planner never mutates a Node; it is
// a read-only, non-owning reference from every SearchNode that wraps it.
type Node struct {
	ID        int
	Point     geom.Point
	Neighbors map[int]struct{}
}

// Connectivity selects 4- or 8-directional neighbor construction.
type Connectivity int

const (
	// Conn4 connects only orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
