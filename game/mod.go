package game

// Evaluator scores a position for the side to move. It returns a value
// estimating the expected outcome from toMove's perspective and one weight per
// cell. Weights are nonnegative, zero for occupied cells, and need not sum to 1.
type Evaluator interface {
	Predict(board Board, toMove Cell) (value float64, policy []float64)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(board Board, toMove Cell) (float64, []float64)

func (f EvaluatorFunc) Predict(board Board, toMove Cell) (float64, []float64) {
	return f(board, toMove)
}
