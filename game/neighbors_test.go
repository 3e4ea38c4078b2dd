package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	t.Run("adjacency is symmetric", func(t *testing.T) {
		for size := 1; size <= 11; size++ {
			table := Neighbors(size)
			for a := 0; a < size*size; a++ {
				for _, b := range table.Of(a) {
					require.Contains(t, table.Of(b), a, "size %d: %d -> %d has no way back", size, a, b)
				}
			}
		}
	})

	t.Run("interior cells have six neighbors", func(t *testing.T) {
		table := Neighbors(5)
		require.ElementsMatch(t, []int{11, 13, 7, 17, 8, 16}, table.Of(12))
	})

	t.Run("edge cells drop wrapping offsets", func(t *testing.T) {
		table := Neighbors(3)

		require.ElementsMatch(t, []int{1, 3}, table.Of(0), "Top-left corner")
		require.ElementsMatch(t, []int{1, 4, 5}, table.Of(2), "Top-right corner")
		require.ElementsMatch(t, []int{0, 1, 4, 6}, table.Of(3), "Left edge")
		require.ElementsMatch(t, []int{2, 4, 7, 8}, table.Of(5), "Right edge")
		require.ElementsMatch(t, []int{3, 4, 7}, table.Of(6), "Bottom-left corner")
		require.ElementsMatch(t, []int{5, 7}, table.Of(8), "Bottom-right corner")
	})

	t.Run("no neighbor crosses a row boundary", func(t *testing.T) {
		size := 7
		table := Neighbors(size)
		for cell := 0; cell < size*size; cell++ {
			for _, n := range table.Of(cell) {
				rowDiff := n/size - cell/size
				colDiff := n%size - cell%size
				require.LessOrEqual(t, rowDiff*rowDiff, 1)
				require.LessOrEqual(t, colDiff*colDiff, 1)
				require.NotEqual(t, rowDiff, colDiff, "(+1,+1) and (-1,-1) are not hex neighbors")
			}
		}
	})

	t.Run("a single cell has no neighbors", func(t *testing.T) {
		require.Empty(t, Neighbors(1).Of(0))
	})

	t.Run("tables are memoised per size", func(t *testing.T) {
		first := Neighbors(4)
		second := Neighbors(4)

		require.Equal(t, 4, first.Size())
		require.Same(t, &first.neighbors[0][0], &second.neighbors[0][0])
		require.Equal(t, 6, Neighbors(6).Size())
	})
}
