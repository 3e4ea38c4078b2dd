package searcher

import "math"

// puct scores children of one parent. The exploration numerator is shared by
// every child so it is computed once per selection.
type puct struct {
	sqrtN float64
}

func newPUCT(N int) *puct {
	if N < 0 {
		panic("N cannot be negative")
	}
	return &puct{sqrtN: math.Sqrt(float64(N))}
}

func (u puct) evaluate(prior, value float64, n int) float64 {
	// PUCT = P*sqrt(N)/(n+1) + W/n
	score := prior * u.sqrtN / float64(n+1)
	if n > 0 {
		score += value / float64(n)
	}
	return score
}
