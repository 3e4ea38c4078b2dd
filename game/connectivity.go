package game

// IsWin reports the outcome from perspective's point of view: 1 if
// perspective connects its two edges, -1 if the other colour does, and 0 if
// neither does yet.
func IsWin(board Board, neighbors NeighborTable, perspective Cell) int {
	for _, colour := range []Cell{Black, White} {
		if connects(board, neighbors, colour) {
			if colour == perspective {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Winner returns the colour that connects its edges, or Empty.
func Winner(board Board, neighbors NeighborTable) Cell {
	for _, colour := range []Cell{Black, White} {
		if connects(board, neighbors, colour) {
			return colour
		}
	}
	return Empty
}

// connects runs a breadth-first search from every stone of colour on its
// starting edge until a stone on the opposite edge is reached.
func connects(board Board, neighbors NeighborTable, colour Cell) bool {
	size := board.Size()
	visited := make([]bool, board.Len())
	queue := make([]int, 0, size)

	for _, cell := range startingEdge(size, colour) {
		if board.At(cell) == colour {
			visited[cell] = true
			queue = append(queue, cell)
		}
	}

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		if onGoalEdge(size, colour, cell) {
			return true
		}
		for _, n := range neighbors.Of(cell) {
			if !visited[n] && board.At(n) == colour {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

func startingEdge(size int, colour Cell) []int {
	edge := make([]int, size)
	for i := range edge {
		if colour == White {
			edge[i] = i * size // column 0
		} else {
			edge[i] = i // row 0
		}
	}
	return edge
}

func onGoalEdge(size int, colour Cell, cell int) bool {
	if colour == White {
		return (cell+1)%size == 0
	}
	return cell >= size*(size-1)
}
