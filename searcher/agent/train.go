package agent

import (
	"math"

	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play. It samples moves in
// proportion to visits^(1/temperature) so games vary between runs with
// different seeds.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = meta.TEMPERATURE
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindMove(board game.Board, turn game.Cell) (int, metrics.SearchMetric, error) {
	policy, metric, err := a.mcts.Simulate(board, turn)
	if err != nil {
		return 0, metric, err
	}
	probs := adjustTemperature(policy, a.temperature)
	if probs == nil { // No visits to sample from
		return findMax(policy), metric, nil
	}
	return sample(policy, probs, a.rng.Float64()), metric, nil
}

func adjustTemperature(policy []searcher.Candidate, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(policy))
	for i, c := range policy {
		prob := math.Pow(float64(c.Visits), exponent)
		sum += prob
		adjusted[i] = prob
	}
	if sum == 0 {
		return nil
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(policy []searcher.Candidate, probs []float64, sampled float64) int {
	cumulative := 0.0
	last := policy[len(policy)-1].Move
	for i, prob := range probs {
		if prob == 0 {
			continue
		}
		last = policy[i].Move
		cumulative += prob
		if sampled < cumulative {
			return policy[i].Move
		}
	}
	return last // Fallback in case of rounding errors
}
