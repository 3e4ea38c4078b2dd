package agent

import (
	"testing"

	"hex/game"
	"hex/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFindMax(t *testing.T) {
	t.Run("picking the greatest accumulated value", func(t *testing.T) {
		policy := []searcher.Candidate{
			{Move: 0, Value: 1, Visits: 10},
			{Move: 3, Value: 4, Visits: 20},
			{Move: 5, Value: 2, Visits: 90},
		}
		require.Equal(t, 3, findMax(policy), "Value is not normalised by visits")
	})

	t.Run("breaking ties by move order", func(t *testing.T) {
		policy := []searcher.Candidate{
			{Move: 2, Value: -1},
			{Move: 4, Value: 3},
			{Move: 7, Value: 3},
		}
		require.Equal(t, 4, findMax(policy))
	})
}

func TestAdjustTemperature(t *testing.T) {
	policy := []searcher.Candidate{{Move: 0, Visits: 1}, {Move: 1, Visits: 3}}

	t.Run("normalising visits", func(t *testing.T) {
		probs := adjustTemperature(policy, 1.0)
		require.InDeltaSlice(t, []float64{0.25, 0.75}, probs, 1e-9)
	})

	t.Run("sharpening with low temperature", func(t *testing.T) {
		probs := adjustTemperature(policy, 0.5)
		require.InDeltaSlice(t, []float64{0.1, 0.9}, probs, 1e-9)
	})

	t.Run("no visits", func(t *testing.T) {
		require.Nil(t, adjustTemperature([]searcher.Candidate{{Move: 0}}, 1.0))
	})
}

func TestSample(t *testing.T) {
	policy := []searcher.Candidate{{Move: 2}, {Move: 6}, {Move: 8}}
	probs := []float64{0.25, 0, 0.75}

	require.Equal(t, 2, sample(policy, probs, 0.1))
	require.Equal(t, 8, sample(policy, probs, 0.25))
	require.Equal(t, 8, sample(policy, probs, 0.99))
	require.Equal(t, 8, sample(policy, probs, 1.0), "Rounding fallback")
}

func TestAgents(t *testing.T) {
	board := game.NewBoard(4)
	board.Set(5, game.Black)

	agents := map[string]Agent{
		"evaluation": NewEvaluationAgent(searcher.NewMCTS()),
		"training":   NewTrainingAgent(searcher.NewMCTS(), 1.0, rand.New(rand.NewSource(5))),
	}
	for name, a := range agents {
		t.Run(name+" agent plays an empty cell", func(t *testing.T) {
			move, _, err := a.FindMove(board, game.White)

			require.NoError(t, err)
			require.True(t, board.IsEmpty(move))
		})
	}

	t.Run("propagating search errors", func(t *testing.T) {
		full := game.NewBoard(1)
		full.Set(0, game.White)

		_, _, err := NewEvaluationAgent(searcher.NewMCTS()).FindMove(full, game.Black)
		require.ErrorIs(t, err, searcher.ErrNoMoves)
	})
}
