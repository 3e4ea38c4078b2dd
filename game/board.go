package game

import "strings"

// Cell is the state of a single hexagon on the board.
type Cell int8

const (
	Empty Cell = iota
	White      // connects the left edge to the right edge
	Black      // connects the top edge to the bottom edge
)

func (c Cell) String() string {
	switch c {
	case White:
		return "W"
	case Black:
		return "B"
	default:
		return "."
	}
}

// Opponent returns the other colour. Empty has no opponent.
func Opponent(c Cell) Cell {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// ParseColour maps "white"/"w" and "black"/"b" to a colour.
func ParseColour(s string) (Cell, bool) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return Empty, false
}

// Board is a size x size hex board stored row-major.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns an empty board. Size must be positive.
func NewBoard(size int) Board {
	return Board{size: size, cells: make([]Cell, size*size)}
}

func (b Board) Size() int {
	return b.size
}

// Len is the number of cells, size².
func (b Board) Len() int {
	return len(b.cells)
}

func (b Board) At(cell int) Cell {
	return b.cells[cell]
}

// Set overwrites a cell. Boards share their cells with shallow copies, so
// callers holding a snapshot must Copy first.
func (b Board) Set(cell int, c Cell) {
	b.cells[cell] = c
}

func (b Board) IsEmpty(cell int) bool {
	return b.cells[cell] == Empty
}

// Copy returns a board that shares nothing with b.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Play returns a copy of b with cell set to c.
func (b Board) Play(cell int, c Cell) Board {
	next := b.Copy()
	next.cells[cell] = c
	return next
}

// EmptyCells lists empty cells in ascending order.
func (b Board) EmptyCells() []int {
	empties := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c == Empty {
			empties = append(empties, i)
		}
	}
	return empties
}

// String renders each row followed by a '|', e.g. "W..|.B.|...|".
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.size)
	for i, c := range b.cells {
		sb.WriteString(c.String())
		if (i+1)%b.size == 0 {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}
