package engine

import (
	"time"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Match plays two engines against each other on their own boards, relaying
// each chosen move to the other side.
type Match struct {
	engines map[game.Cell]*Engine
	first   game.Cell
	opening []string
}

// LocalMatch pairs a white and a black engine. first is the colour to move
// first; opening moves are played alternately before the engines search.
func LocalMatch(white, black *Engine, first game.Cell, opening ...string) (*Match, error) {
	if white.Colour() != game.White || black.Colour() != game.Black {
		return nil, errors.Wrap(ErrInvalidColour, "match needs one white and one black engine")
	}
	if white.Size() != black.Size() {
		return nil, errors.Errorf("board sizes differ: %d vs %d", white.Size(), black.Size())
	}
	if first != game.White && first != game.Black {
		return nil, errors.Wrapf(ErrInvalidColour, "first player %v", first)
	}
	return &Match{
		engines: map[game.Cell]*Engine{game.White: white, game.Black: black},
		first:   first,
		opening: opening,
	}, nil
}

// Run plays until one side connects and returns the winner with game and
// per-move metrics.
func (m *Match) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: m.first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", m.first)

	current := m.first
	size := m.engines[current].Size()
	winner := game.Empty
	for step := 1; step <= size*size && winner == game.Empty; step++ {
		mover, other := m.engines[current], m.engines[game.Opponent(current)]

		var move string
		var search metrics.SearchMetric // Stays zero for opening moves
		var err error
		if step <= len(m.opening) {
			move = m.opening[step-1]
			var placed bool
			placed, err = mover.ApplyOwnMove(move)
			if err == nil && !placed {
				err = errors.Errorf("opening move %s is already occupied", move)
			}
		} else {
			move, err = mover.ChooseMove()
			search = mover.LastSearch()
		}
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, errors.Wrapf(err, "step %d", step)
		}
		if _, err := other.ApplyOpponentMove(move); err != nil {
			return game.Empty, gameMetric, moveMetrics, errors.Wrapf(err, "relaying %s", move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current.String(),
			Move:         move,
			SearchMetric: search,
		})

		if mover.CheckOutcome() == 1 {
			winner = current
		}
		current = game.Opponent(current)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = winner.String()

	log.Info().Msgf("game over after %d moves, winner %s", len(moveMetrics), winner)
	return winner, gameMetric, moveMetrics, nil
}
