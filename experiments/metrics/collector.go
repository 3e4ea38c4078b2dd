package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Episodes   int
	Terminals  int // Simulations that ended on a connected board
	Expansions int // Simulations that called the evaluator
	TreeSize   int
	Backup     string
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(backup string)
	AddEpisode()
	AddTerminal()
	AddExpansion()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	backup     string
	startTime  time.Time
	episodes   atomic.Int32
	terminals  atomic.Int32
	expansions atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(backup string) {
	m.startTime = time.Now()
	m.backup = backup
	m.episodes.Store(0)
	m.terminals.Store(0)
	m.expansions.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Episodes:   int(m.episodes.Load()),
		Terminals:  int(m.terminals.Load()),
		Expansions: int(m.expansions.Load()),
		TreeSize:   treeSize,
		Backup:     m.backup,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(backup string)                {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) AddTerminal()                       {}
func (m *dummyCollector) AddExpansion()                      {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{} }
