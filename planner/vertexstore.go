package planner

import "container/heap"

// openQueue is the indexed min-heap over SearchNode.key: a single
// canonical residence for queued vertices, with an id→slot index so keys
// can be updated in place (heap.Fix) instead of a defensive re-heapify.
type openQueue struct {
	items   []*SearchNode
	indexOf map[int]int
}

func newOpenQueue() *openQueue {
	return &openQueue{indexOf: make(map[int]int)}
}

func (q *openQueue) Len() int { return len(q.items) }

func (q *openQueue) Less(i, j int) bool {
	return q.items[i].key.less(q.items[j].key)
}

func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.indexOf[q.items[i].searchID] = i
	q.indexOf[q.items[j].searchID] = j
}

func (q *openQueue) Push(x interface{}) {
	n := x.(*SearchNode)
	q.indexOf[n.searchID] = len(q.items)
	q.items = append(q.items, n)
}

func (q *openQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	delete(q.indexOf, item.searchID)
	return item
}

func (q *openQueue) isEmpty() bool { return len(q.items) == 0 }

func (q *openQueue) contains(id int) bool {
	_, ok := q.indexOf[id]
	return ok
}

func (q *openQueue) get(id int) *SearchNode {
	return q.items[q.indexOf[id]]
}

// top returns, without removing, the vertex of smallest key. Callers must
// check isEmpty first.
func (q *openQueue) top() *SearchNode {
	return q.items[0]
}

// topKey returns {BigNum, BigNum} when the queue is empty, matching the
// paper's U.TopKey() contract.
func (q *openQueue) topKey() Key {
	if q.isEmpty() {
		return Key{BigNum, BigNum}
	}
	return q.items[0].key
}

// pop removes and returns the vertex of smallest key.
func (q *openQueue) pop() *SearchNode {
	return heap.Pop(q).(*SearchNode)
}

// push inserts n, whose key must already be set, onto the queue.
func (q *openQueue) push(n *SearchNode) {
	heap.Push(q, n)
}

// fix re-establishes heap order after n's key changed in place.
func (q *openQueue) fix(n *SearchNode) {
	heap.Fix(q, q.indexOf[n.searchID])
}

// remove deletes n from the queue.
func (q *openQueue) remove(n *SearchNode) {
	heap.Remove(q, q.indexOf[n.searchID])
}

// vertexStore is the bidirectional residency LPA*/D* Lite rely on: an open
// priority queue and a standby lookup map, with every vertex resident in
// exactly one of the two at any time.
type vertexStore struct {
	open    *openQueue
	standby map[int]*SearchNode
}

func newVertexStore() *vertexStore {
	return &vertexStore{
		open:    newOpenQueue(),
		standby: make(map[int]*SearchNode),
	}
}

// locate returns the unique residence of the vertex with the given id,
// probing standby first, then the open queue.
func (v *vertexStore) locate(id int) (*SearchNode, bool) {
	if n, ok := v.standby[id]; ok {
		return n, true
	}
	if v.open.contains(id) {
		return v.open.get(id), true
	}
	return nil, false
}

// promote moves n from standby onto the open queue.
func (v *vertexStore) promote(n *SearchNode) {
	delete(v.standby, n.searchID)
	n.state = Open
	v.open.push(n)
}

// demote moves n from the open queue into standby.
func (v *vertexStore) demote(n *SearchNode) {
	v.open.remove(n)
	n.state = Closed
	v.standby[n.searchID] = n
}
