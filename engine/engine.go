package engine

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/searcher"
	"hex/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidColour = errors.New("engine colour must be white or black")
	ErrIllegalMove   = errors.New("agent chose an occupied cell")
)

type Option func(e *Engine)

// Engine is one side of a game: it tracks the live board and chooses moves
// for its own colour.
type Engine struct {
	colour     game.Cell
	opponent   game.Cell
	size       int
	board      game.Board
	tracker    *game.Tracker
	moveCount  int
	agent      agent.Agent
	lastSearch metrics.SearchMetric
}

func WithAgent(a agent.Agent) Option {
	return func(e *Engine) {
		if a != nil {
			e.agent = a
		}
	}
}

func WithBoardSize(size int) Option {
	return func(e *Engine) {
		e.size = size
	}
}

// New returns an engine playing colour on an empty board.
func New(colour game.Cell, options ...Option) (*Engine, error) {
	if colour != game.White && colour != game.Black {
		return nil, errors.Wrapf(ErrInvalidColour, "got %v", colour)
	}
	e := &Engine{ // Default values
		colour:   colour,
		opponent: game.Opponent(colour),
		size:     meta.DEFAULT_BOARD_SIZE,
		agent:    agent.NewEvaluationAgent(searcher.NewMCTS()),
	}
	for _, option := range options {
		option(e)
	}
	if err := e.InitBoard(e.size); err != nil {
		return nil, err
	}
	return e, nil
}

// InitBoard resets the game to an empty board with the given side length.
func (e *Engine) InitBoard(size int) error {
	if err := game.ValidateSize(size); err != nil {
		return err
	}
	e.size = size
	e.board = game.NewBoard(size)
	e.tracker = game.NewTracker(size)
	e.moveCount = 0
	return nil
}

// ApplyOpponentMove places an opponent stone. It reports false without error
// when the cell is already occupied.
func (e *Engine) ApplyOpponentMove(move string) (bool, error) {
	return e.place(move, e.opponent)
}

// ApplyOwnMove places a stone of the engine's own colour. It reports false
// without error when the cell is already occupied.
func (e *Engine) ApplyOwnMove(move string) (bool, error) {
	return e.place(move, e.colour)
}

func (e *Engine) place(move string, colour game.Cell) (bool, error) {
	cell, err := game.Decode(move, e.size)
	if err != nil {
		return false, err
	}
	if !e.board.IsEmpty(cell) {
		log.Debug().Msgf("ignoring %s on %s: cell holds %s", colour, move, e.board.At(cell))
		return false, nil
	}
	e.setStone(cell, colour)
	return true, nil
}

func (e *Engine) setStone(cell int, colour game.Cell) {
	e.board.Set(cell, colour)
	e.tracker.Place(cell, colour)
	e.moveCount++
}

// ClearCell empties a cell whatever it holds.
func (e *Engine) ClearCell(move string) error {
	cell, err := game.Decode(move, e.size)
	if err != nil {
		return err
	}
	if e.board.IsEmpty(cell) {
		return nil
	}
	e.board.Set(cell, game.Empty)
	e.tracker.Reset(e.board)
	return nil
}

// ChooseMove searches the live board, plays the chosen cell for the engine's
// own colour and returns it in text form.
func (e *Engine) ChooseMove() (string, error) {
	if winner := e.tracker.Winner(); winner != game.Empty {
		log.Warn().Msgf("searching a finished game won by %s", winner)
	}

	cell, metric, err := e.agent.FindMove(e.board.Copy(), e.colour)
	if err != nil {
		return "", errors.Wrap(err, "failed to choose a move")
	}
	if !e.board.IsEmpty(cell) {
		return "", errors.Wrapf(ErrIllegalMove, "%s", game.Encode(cell, e.size))
	}

	e.setStone(cell, e.colour)
	e.lastSearch = metric
	return game.Encode(cell, e.size), nil
}

// CheckOutcome returns 1 if the engine has won, -1 if its opponent has, and 0
// while the game is still open.
func (e *Engine) CheckOutcome() int {
	return e.tracker.Outcome(e.colour)
}

// Board returns a copy of the live board.
func (e *Engine) Board() game.Board {
	return e.board.Copy()
}

func (e *Engine) Size() int {
	return e.size
}

func (e *Engine) MoveCount() int {
	return e.moveCount
}

func (e *Engine) Colour() game.Cell {
	return e.colour
}

// LastSearch returns the metrics of the most recent ChooseMove.
func (e *Engine) LastSearch() metrics.SearchMetric {
	return e.lastSearch
}
