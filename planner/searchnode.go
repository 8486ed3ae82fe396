package planner

import "github.com/Forrest-Z/motion-planning-in-ROS/gridmap"

// BigNum is the "infinity" sentinel: any finite valid cost is strictly
// less. Sums involving it are not clamped back to BigNum: BigNum+x stays
// above BigNum, so a strict comparison such as relax's c < rhs against a
// BigNum rhs still rejects it.
const BigNum = gridmap.BigNum

// State is a SearchNode's lifecycle tag.
type State int

const (
	// New is the implicit state of every untouched vertex.
	New State = iota
	// Open means the vertex is resident on the open priority queue.
	Open
	// Closed means the vertex has been expanded (A*/Theta*) or is
	// resident in the standby pool (LPA*/D* Lite).
	Closed
)

// SearchNode is per-vertex search state layered over a read-only,
// non-owning *gridmap.Node. searchID is the vertex's identity within a
// search; for LPA*/D* Lite it always equals node.ID.
type SearchNode struct {
	node *gridmap.Node

	searchID int
	g        float64
	rhs      float64
	h        float64
	key      Key
	parent   *gridmap.Node
	state    State
}

// newSearchNode creates a fresh, untouched SearchNode wrapping node.
func newSearchNode(node *gridmap.Node, searchID int) *SearchNode {
	return &SearchNode{
		node:     node,
		searchID: searchID,
		g:        BigNum,
		rhs:      BigNum,
		h:        BigNum,
		key:      Key{BigNum, BigNum},
		state:    New,
	}
}

// Node returns the underlying graph node this SearchNode wraps.
func (s *SearchNode) Node() *gridmap.Node { return s.node }

// G returns the current cost-from-start/source estimate.
func (s *SearchNode) G() float64 { return s.g }

// RHS returns the current one-step look-ahead value.
func (s *SearchNode) RHS() float64 { return s.rhs }
