package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func place(t *testing.T, board Board, colour Cell, moves ...string) {
	t.Helper()
	for _, move := range moves {
		cell, err := Decode(move, board.Size())
		require.NoError(t, err)
		board.Set(cell, colour)
	}
}

// playout fills the board with alternating stones in random order.
func playout(rng *rand.Rand, size int) Board {
	board := NewBoard(size)
	cells := board.EmptyCells()
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	colour := White
	for _, cell := range cells {
		board.Set(cell, colour)
		colour = Opponent(colour)
	}
	return board
}

func TestIsWin(t *testing.T) {
	t.Run("empty board has no winner", func(t *testing.T) {
		board := NewBoard(5)
		require.Equal(t, 0, IsWin(board, Neighbors(5), White))
		require.Equal(t, 0, IsWin(board, Neighbors(5), Black))
	})

	t.Run("white connecting left to right wins", func(t *testing.T) {
		board := NewBoard(3)
		place(t, board, White, "a1", "a2")
		require.Equal(t, 0, IsWin(board, Neighbors(3), White), "Two stones do not reach the right edge")

		place(t, board, White, "a3")
		require.Equal(t, 1, IsWin(board, Neighbors(3), White))
		require.Equal(t, -1, IsWin(board, Neighbors(3), Black))
	})

	t.Run("black connecting top to bottom wins", func(t *testing.T) {
		board := NewBoard(3)
		place(t, board, Black, "a1", "b1", "c1")

		require.Equal(t, 1, IsWin(board, Neighbors(3), Black))
		require.Equal(t, -1, IsWin(board, Neighbors(3), White))
	})

	t.Run("following the hex diagonal", func(t *testing.T) {
		// a3 -> b2 -> c1 is connected, a1 -> b2 -> c3 is not
		board := NewBoard(3)
		place(t, board, Black, "a3", "b2", "c1")
		require.Equal(t, 1, IsWin(board, Neighbors(3), Black))

		board = NewBoard(3)
		place(t, board, Black, "a1", "b2", "c3")
		require.Equal(t, 0, IsWin(board, Neighbors(3), Black))
	})

	t.Run("winding path", func(t *testing.T) {
		board := NewBoard(4)
		place(t, board, White, "a1", "a2", "b2", "c2", "c3", "c4")
		require.Equal(t, 1, IsWin(board, Neighbors(4), White))
		require.Equal(t, White, Winner(board, Neighbors(4)))
	})

	t.Run("single cell board", func(t *testing.T) {
		board := NewBoard(1)
		board.Set(0, White)
		require.Equal(t, 1, IsWin(board, Neighbors(1), White))
	})

	t.Run("full boards have exactly one winner", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for size := 2; size <= 9; size++ {
			neighbors := Neighbors(size)
			for i := 0; i < 25; i++ {
				board := playout(rng, size)

				white := connects(board, neighbors, White)
				black := connects(board, neighbors, Black)
				require.NotEqual(t, white, black, "size %d board %s", size, board)
				require.NotEqual(t, 0, IsWin(board, neighbors, White))
			}
		}
	})
}

func TestTracker(t *testing.T) {
	t.Run("agreeing with the oracle after every stone", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for size := 1; size <= 8; size++ {
			neighbors := Neighbors(size)
			for i := 0; i < 10; i++ {
				board := NewBoard(size)
				tracker := NewTracker(size)
				cells := board.EmptyCells()
				rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
				colour := Black
				for _, cell := range cells {
					board.Set(cell, colour)
					tracker.Place(cell, colour)
					require.Equal(t, IsWin(board, neighbors, White), tracker.Outcome(White), board.String())
					require.Equal(t, Winner(board, neighbors), tracker.Winner(), board.String())
					colour = Opponent(colour)
				}
			}
		}
	})

	t.Run("resetting replays a board", func(t *testing.T) {
		board := NewBoard(3)
		place(t, board, White, "b1", "b2", "b3")
		tracker := TrackBoard(board)
		require.Equal(t, White, tracker.Winner())

		board.Set(4, Empty)
		tracker.Reset(board)
		require.Equal(t, Empty, tracker.Winner())
		require.Equal(t, 0, tracker.Outcome(Black))
	})

	t.Run("ignoring occupied cells", func(t *testing.T) {
		tracker := NewTracker(2)
		tracker.Place(0, Black)
		tracker.Place(0, White)
		tracker.Place(2, Black)

		require.Equal(t, Black, tracker.Winner())
	})
}
