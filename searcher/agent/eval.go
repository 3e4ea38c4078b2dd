package agent

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board, turn game.Cell) (int, metrics.SearchMetric, error) {
	policy, metric, err := a.mcts.Simulate(board, turn)
	if err != nil {
		return 0, metric, err
	}
	return findMax(policy), metric, nil
}

// findMax picks the candidate with the greatest accumulated value. The
// first candidate in move order wins ties.
func findMax(policy []searcher.Candidate) int {
	best := policy[0]
	for _, c := range policy[1:] {
		if c.Value > best.Value {
			best = c
		}
	}
	return best.Move
}
