package game

import "sync"

// NeighborTable lists the valid hex neighbors of every cell for one board size.
// It is immutable once built.
type NeighborTable struct {
	size      int
	neighbors [][]int
}

var (
	neighborsMu    sync.RWMutex
	neighborsCache = map[int]NeighborTable{}
)

// Neighbors returns the memoised table for size, building it on first use.
func Neighbors(size int) NeighborTable {
	neighborsMu.RLock()
	table, ok := neighborsCache[size]
	neighborsMu.RUnlock()
	if ok {
		return table
	}

	neighborsMu.Lock()
	defer neighborsMu.Unlock()
	if table, ok := neighborsCache[size]; ok {
		return table
	}
	table = buildNeighbors(size)
	neighborsCache[size] = table
	return table
}

func buildNeighbors(size int) NeighborTable {
	normal := []int{-1, 1, -size, size, -size + 1, size - 1}
	// Column 0 loses the offsets that wrap to the previous row's last column
	left := []int{1, -size, size, -size + 1}
	// Last column loses the offsets that wrap to the next row's first column
	right := []int{-1, -size, size, size - 1}

	total := size * size
	neighbors := make([][]int, total)
	for cell := 0; cell < total; cell++ {
		offsets := normal
		switch {
		case (cell+1)%size == 0:
			offsets = right
		case cell%size == 0:
			offsets = left
		}
		// A 1x1 board is both leftmost and rightmost
		if size == 1 {
			offsets = nil
		}

		adjacent := make([]int, 0, len(offsets))
		for _, offset := range offsets {
			if n := cell + offset; n >= 0 && n < total {
				adjacent = append(adjacent, n)
			}
		}
		neighbors[cell] = adjacent
	}
	return NeighborTable{size: size, neighbors: neighbors}
}

func (t NeighborTable) Size() int {
	return t.size
}

// Of returns the neighbors of cell. The slice must not be modified.
func (t NeighborTable) Of(cell int) []int {
	return t.neighbors[cell]
}
