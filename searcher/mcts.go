package searcher

import (
	"hex/experiments/metrics"
	"hex/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNoMoves = errors.New("no legal moves")

type Option func(mcts *MCTS)

// Candidate summarises one root child after a search.
type Candidate struct {
	Move   int
	Prior  float64
	Value  float64 // Accumulated, not normalised by visits
	Visits int
}

type MCTS struct {
	episodes  int
	evaluator game.Evaluator
	backup    Backup
	root      *decision
	metrics   metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(m *MCTS) {
		if evaluator != nil {
			m.evaluator = evaluator
		}
	}
}

func WithBackup(backup Backup) Option {
	return func(m *MCTS) {
		m.backup = backup
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		episodes:  DefaultEpisodes,
		evaluator: game.Uniform(),
		backup:    Negamax,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) Episodes() int {
	return m.episodes
}

// Simulate searches from board with turn to move and returns the root's
// children statistics in move order. The board is copied, never modified.
func (m *MCTS) Simulate(board game.Board, turn game.Cell) ([]Candidate, metrics.SearchMetric, error) {
	m.metrics.Start(m.backup.String())

	m.root = newDecision(board.Copy(), turn, 0)
	_, policy := m.evaluator.Predict(m.root.board, turn)
	m.root.expand(policy)
	if m.root.isLeaf() {
		return nil, m.metrics.Complete(1), errors.Wrapf(ErrNoMoves, "board %s", board)
	}

	neighbors := game.Neighbors(board.Size())
	for i := 0; i < m.episodes; i++ {
		m.simulate(neighbors)
		m.metrics.AddEpisode()
	}
	metric := m.metrics.Complete(m.root.size())

	log.Debug().
		Int("episodes", m.episodes).
		Int("children", len(m.root.children)).
		Str("backup", m.backup.String()).
		Msg("search complete")

	return m.root.Policy(), metric, nil
}

func (m *MCTS) simulate(neighbors game.NeighborTable) {
	path := selectPath(m.root)
	leaf := path[len(path)-1]

	// A connected board means the previous move ended the game
	value := float64(game.IsWin(leaf.board, neighbors, leaf.turn))
	if value != 0 {
		m.metrics.AddTerminal()
	} else {
		var policy []float64
		value, policy = m.evaluator.Predict(leaf.board, leaf.turn)
		leaf.expand(policy)
		m.metrics.AddExpansion()
	}

	backup(path, leaf.turn, value, m.backup)
}

// selectPath descends by PUCT until it reaches a node without children.
func selectPath(root *decision) []*decision {
	path := []*decision{root}
	node := root
	for !node.isLeaf() {
		node = node.children[node.pickChild()]
		path = append(path, node)
	}
	return path
}

// backup adds value, computed from leafTurn's perspective, to every node on
// the path.
func backup(path []*decision, leafTurn game.Cell, value float64, mode Backup) {
	for _, node := range path {
		switch {
		case mode == Reference:
			node.update(value)
		case node.turn == leafTurn:
			// The player who moved into this node is leafTurn's opponent
			node.update(-value)
		default:
			node.update(value)
		}
	}
}
