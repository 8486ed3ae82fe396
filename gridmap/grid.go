package gridmap

import "github.com/Forrest-Z/motion-planning-in-ROS/geom"

// Occupancy values stored per cell. Only the free/not-free distinction is
// consumed by EdgeCost; any nonzero value blocks the cell.
const (
	Free    int8 = 0
	Blocked int8 = 1
)

// BigNum is the "infinity" absorbing element used throughout this module.
// It is comfortably below half of math.MaxFloat64 so BigNum+x never wraps.
const BigNum = 1e12

// CellUpdate names a single occupancy change to apply via Grid.Update.
type CellUpdate struct {
	X, Y  int
	Value int8
}

// Grid is a 2D occupancy grid over a square cell size, indexed (y, x). It
// owns the Node array the planners search over;
// planners hold a read-only reference and never mutate grid topology
// themselves — only Update does, and only on the caller's say-so.
type Grid struct {
	Width, Height int
	CellSize      float64
	Conn          Connectivity

	occupancy [][]int8 // [y][x]
	nodes     []Node   // dense, id = y*Width+x
}

// Build constructs a Width x Height grid of free cells with the given
// connectivity and cell size, and materializes its Node array with
// precomputed neighbor sets. This is the one graph constructor in this
// repository; every planner is built over the Node array it returns.
func Build(width, height int, cellSize float64, conn Connectivity) *Grid {
	g := &Grid{
		Width:     width,
		Height:    height,
		CellSize:  cellSize,
		Conn:      conn,
		occupancy: make([][]int8, height),
	}
	for y := range g.occupancy {
		g.occupancy[y] = make([]int8, width)
	}
	g.rebuildNodes()
	return g
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) rebuildNodes() {
	g.nodes = make([]Node, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.index(x, y)
			g.nodes[id] = Node{
				ID:        id,
				Point:     geom.Point{X: float64(x) * g.CellSize, Y: float64(y) * g.CellSize},
				Neighbors: make(map[int]struct{}),
			}
		}
	}
	offsets := g.Conn.offsets()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.index(x, y)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				g.nodes[id].Neighbors[g.index(nx, ny)] = struct{}{}
			}
		}
	}
}

// WorldToGrid converts a world point to the (x, y) grid cell containing it.
func (g *Grid) WorldToGrid(p geom.Point) (x, y int) {
	return int(p.X/g.CellSize + 0.5), int(p.Y/g.CellSize + 0.5)
}

// GridToWorld converts a grid cell to its world-space center point.
func (g *Grid) GridToWorld(x, y int) geom.Point {
	return geom.Point{X: float64(x) * g.CellSize, Y: float64(y) * g.CellSize}
}

// NodeAt returns the node for grid cell (x, y).
func (g *Grid) NodeAt(x, y int) *Node {
	return &g.nodes[g.index(x, y)]
}

// NodeByID returns the node with the given dense id.
func (g *Grid) NodeByID(id int) *Node {
	return &g.nodes[id]
}

// Nodes returns the dense node array backing this grid. Planners hold this
// slice for the lifetime of the search; gridmap never reallocates it after
// Build (Update only mutates occupancy values in place).
func (g *Grid) Nodes() []Node {
	return g.nodes
}

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (width, height int) {
	return g.Width, g.Height
}

// Occupancy returns the raw [y][x] occupancy array. Callers must not mutate
// it directly; use Update so Grid can report which cells actually changed.
func (g *Grid) Occupancy() [][]int8 {
	return g.occupancy
}

// IsFree reports whether grid cell (x, y) is unoccupied.
func (g *Grid) IsFree(x, y int) bool {
	return g.occupancy[y][x] == Free
}

// Update applies a batch of occupancy changes and reports, per update,
// whether that cell's value actually changed. LPAStar.MapChange only
// reacts to flagged cells.
func (g *Grid) Update(updates []CellUpdate) []bool {
	changed := make([]bool, len(updates))
	for i, u := range updates {
		if !g.InBounds(u.X, u.Y) {
			continue
		}
		if g.occupancy[u.Y][u.X] != u.Value {
			g.occupancy[u.Y][u.X] = u.Value
			changed[i] = true
		}
	}
	return changed
}

// PassableNeighbors returns the subset of node id's neighbor set whose
// cells are currently free, and nil if id's own cell is occupied. A*/Theta*
// are one-shot searches that need blocked cells filtered out of the
// expansion frontier entirely; this filter is evaluated live against
// current occupancy rather than baked into a frozen snapshot, since
// nothing mutates the grid mid-search. LPA*/D* Lite do not use this: they
// keep the full neighbor topology and let EdgeCost carry BigNum for
// blocked edges, so a later unblock can make a vertex locally inconsistent
// again.
func (g *Grid) PassableNeighbors(id int) map[int]struct{} {
	x, y := id%g.Width, id/g.Width
	if g.occupancy[y][x] != Free {
		return nil
	}
	n := &g.nodes[id]
	out := make(map[int]struct{}, len(n.Neighbors))
	for nb := range n.Neighbors {
		nx, ny := nb%g.Width, nb/g.Width
		if g.occupancy[ny][nx] == Free {
			out[nb] = struct{}{}
		}
	}
	return out
}

// EdgeCost is the cost of moving between two adjacent cells: Euclidean
// distance if both are free, BigNum otherwise. Non-neighboring nodes are
// never queried by the planners, so adjacency itself is not checked here.
func (g *Grid) EdgeCost(a, b *Node) float64 {
	ax, ay := g.WorldToGrid(a.Point)
	bx, by := g.WorldToGrid(b.Point)
	if g.occupancy[ay][ax] != Free || g.occupancy[by][bx] != Free {
		return BigNum
	}
	return a.Point.Distance(b.Point)
}
