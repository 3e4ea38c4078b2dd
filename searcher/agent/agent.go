package agent

import (
	"hex/experiments/metrics"
	"hex/game"
)

type Agent interface {
	// FindMove searches board with turn to move and returns the chosen cell and
	// the search metrics (if collected)
	FindMove(board game.Board, turn game.Cell) (int, metrics.SearchMetric, error)
}
