package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("copying detaches the cells", func(t *testing.T) {
		board := NewBoard(3)
		snapshot := board.Copy()
		board.Set(4, White)

		require.Equal(t, White, board.At(4))
		require.Equal(t, Empty, snapshot.At(4), "Snapshot should not see later writes")
	})

	t.Run("playing leaves the original untouched", func(t *testing.T) {
		board := NewBoard(2)
		next := board.Play(1, Black)

		require.Equal(t, Empty, board.At(1))
		require.Equal(t, Black, next.At(1))
	})

	t.Run("listing empty cells in order", func(t *testing.T) {
		board := NewBoard(2)
		board.Set(0, White)
		board.Set(2, Black)

		require.Equal(t, []int{1, 3}, board.EmptyCells())
	})

	t.Run("rendering rows with separators", func(t *testing.T) {
		board := NewBoard(3)
		board.Set(0, White)
		board.Set(4, Black)

		require.Equal(t, "W..|.B.|...|", board.String())
	})
}

func TestOpponent(t *testing.T) {
	require.Equal(t, Black, Opponent(White))
	require.Equal(t, White, Opponent(Black))
	require.Equal(t, Empty, Opponent(Empty))
}

func TestParseColour(t *testing.T) {
	for input, want := range map[string]Cell{"white": White, "W": White, "black": Black, "b": Black} {
		got, ok := ParseColour(input)
		require.True(t, ok, input)
		require.Equal(t, want, got, input)
	}

	_, ok := ParseColour("red")
	require.False(t, ok)
}
