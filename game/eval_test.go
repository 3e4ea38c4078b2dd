package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluators(t *testing.T) {
	board := NewBoard(4)
	board.Set(0, White)
	board.Set(5, Black)
	board.Set(10, White)

	evaluators := map[string]Evaluator{
		"uniform":  Uniform(),
		"random":   Random(rand.New(rand.NewSource(1))),
		"distance": Distance(),
	}
	for name, evaluator := range evaluators {
		t.Run(name+" masks occupied cells", func(t *testing.T) {
			_, policy := evaluator.Predict(board, Black)

			require.Len(t, policy, board.Len())
			for cell, weight := range policy {
				if board.IsEmpty(cell) {
					require.Greater(t, weight, 0.0, "cell %d", cell)
					require.LessOrEqual(t, weight, 1.0, "cell %d", cell)
				} else {
					require.Zero(t, weight, "cell %d", cell)
				}
			}
		})
	}

	t.Run("uniform matches the reference dummy", func(t *testing.T) {
		value, policy := Uniform().Predict(board, White)
		require.Equal(t, 0.5, value)
		require.Equal(t, 0.5, policy[1])
	})

	t.Run("random is reproducible per seed", func(t *testing.T) {
		_, first := Random(rand.New(rand.NewSource(3))).Predict(board, White)
		_, second := Random(rand.New(rand.NewSource(3))).Predict(board, White)
		require.Equal(t, first, second)
	})

	t.Run("distance favours the shorter connection", func(t *testing.T) {
		board := NewBoard(3)
		board.Set(0, White)
		board.Set(1, White)

		value, _ := Distance().Predict(board, White)
		require.Greater(t, value, 0.0)

		value, _ = Distance().Predict(board, Black)
		require.Less(t, value, 0.0)
	})

	t.Run("distance counts empty cells to fill", func(t *testing.T) {
		board := NewBoard(3)
		board.Set(3, White)
		neighbors := Neighbors(3)

		require.Equal(t, 2, shortestConnection(board, neighbors, White))
		require.Equal(t, 3, shortestConnection(board, neighbors, Black))

		board.Set(4, White)
		board.Set(5, White)
		require.Equal(t, 0, shortestConnection(board, neighbors, White))
		require.Equal(t, board.Len()+1, shortestConnection(board, neighbors, Black), "Black is walled off")
	})
}

func TestShortestConnection(t *testing.T) {
	t.Run("crossing the largest board", func(t *testing.T) {
		board := NewBoard(MaxSize)
		neighbors := Neighbors(MaxSize)
		require.Equal(t, MaxSize, shortestConnection(board, neighbors, White))
		require.Equal(t, MaxSize, shortestConnection(board, neighbors, Black))

		for col := 0; col < MaxSize-1; col++ {
			board.Set(5*MaxSize+col, White)
		}
		require.Equal(t, 1, shortestConnection(board, neighbors, White))
		require.Equal(t, MaxSize, shortestConnection(board, neighbors, Black), "Black runs down the open last column")
	})
}

func TestDeque(t *testing.T) {
	var q deque
	require.True(t, q.empty())

	q.push(1, false)
	q.push(2, false)
	q.push(3, true)
	q.push(4, true)

	got := []int{}
	for !q.empty() {
		got = append(got, q.pop())
	}
	require.Equal(t, []int{4, 3, 1, 2}, got)

	q.push(5, false)
	require.Equal(t, 5, q.pop(), "Reusing a drained deque")
	require.True(t, q.empty())
}

func TestNewEvaluator(t *testing.T) {
	for _, name := range EvaluatorNames() {
		evaluator, err := NewEvaluator(name, 1)
		require.NoError(t, err)
		require.NotNil(t, evaluator)
	}

	_, err := NewEvaluator("alphazero", 1)
	require.ErrorIs(t, err, ErrUnknownEvaluator)
}

func TestEvaluatorFunc(t *testing.T) {
	var calls int
	evaluator := EvaluatorFunc(func(board Board, toMove Cell) (float64, []float64) {
		calls++
		return 1, make([]float64, board.Len())
	})

	value, policy := evaluator.Predict(NewBoard(2), White)
	require.Equal(t, 1.0, value)
	require.Len(t, policy, 4)
	require.Equal(t, 1, calls)
}
