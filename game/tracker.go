package game

// Tracker maintains connectivity incrementally with a union-find over cells
// and four virtual edge nodes, so the outcome of a live game can be read
// without a full traversal after every stone.
//
// Union-find cannot split components, so removing a stone requires Reset.
type Tracker struct {
	size      int
	neighbors NeighborTable
	cells     []Cell
	parent    []int
	rank      []uint8
}

// NewTracker returns a tracker for an empty board of the given size.
func NewTracker(size int) *Tracker {
	t := &Tracker{size: size, neighbors: Neighbors(size)}
	t.clear()
	return t
}

// TrackBoard returns a tracker seeded with every stone on board.
func TrackBoard(board Board) *Tracker {
	t := NewTracker(board.Size())
	t.Reset(board)
	return t
}

func (t *Tracker) clear() {
	n := t.size*t.size + 4
	t.cells = make([]Cell, t.size*t.size)
	t.parent = make([]int, n)
	t.rank = make([]uint8, n)
	for i := range t.parent {
		t.parent[i] = i
	}
}

// Reset discards all connectivity and replays the stones on board.
func (t *Tracker) Reset(board Board) {
	t.clear()
	for cell := 0; cell < board.Len(); cell++ {
		if c := board.At(cell); c != Empty {
			t.Place(cell, c)
		}
	}
}

func (t *Tracker) leftEdge() int   { return t.size * t.size }
func (t *Tracker) rightEdge() int  { return t.size*t.size + 1 }
func (t *Tracker) topEdge() int    { return t.size*t.size + 2 }
func (t *Tracker) bottomEdge() int { return t.size*t.size + 3 }

// Place records a stone. Placing on an occupied cell or placing Empty is ignored.
func (t *Tracker) Place(cell int, colour Cell) {
	if colour == Empty || t.cells[cell] != Empty {
		return
	}
	t.cells[cell] = colour

	for _, n := range t.neighbors.Of(cell) {
		if t.cells[n] == colour {
			t.union(cell, n)
		}
	}

	row, column := cell/t.size, cell%t.size
	switch colour {
	case White:
		if column == 0 {
			t.union(cell, t.leftEdge())
		}
		if column == t.size-1 {
			t.union(cell, t.rightEdge())
		}
	case Black:
		if row == 0 {
			t.union(cell, t.topEdge())
		}
		if row == t.size-1 {
			t.union(cell, t.bottomEdge())
		}
	}
}

// Winner returns the colour connecting its edges, or Empty.
func (t *Tracker) Winner() Cell {
	if t.find(t.topEdge()) == t.find(t.bottomEdge()) {
		return Black
	}
	if t.find(t.leftEdge()) == t.find(t.rightEdge()) {
		return White
	}
	return Empty
}

// Outcome matches IsWin: 1, -1 or 0 from perspective's point of view.
func (t *Tracker) Outcome(perspective Cell) int {
	switch t.Winner() {
	case Empty:
		return 0
	case perspective:
		return 1
	default:
		return -1
	}
}

func (t *Tracker) find(x int) int {
	for t.parent[x] != x {
		t.parent[x] = t.parent[t.parent[x]]
		x = t.parent[x]
	}
	return x
}

func (t *Tracker) union(a, b int) {
	ra, rb := t.find(a), t.find(b)
	if ra == rb {
		return
	}
	switch {
	case t.rank[ra] < t.rank[rb]:
		t.parent[ra] = rb
	case t.rank[ra] > t.rank[rb]:
		t.parent[rb] = ra
	default:
		t.parent[rb] = ra
		t.rank[ra]++
	}
}
