package game

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

type uniform struct{}

// Uniform weights every empty cell 0.5 and values every position 0.5.
func Uniform() Evaluator {
	return uniform{}
}

func (uniform) Predict(board Board, _ Cell) (float64, []float64) {
	policy := make([]float64, board.Len())
	for i := range policy {
		if board.IsEmpty(i) {
			policy[i] = 0.5
		}
	}
	return 0.5, policy
}

type random struct {
	rng *rand.Rand
}

// Random draws weights in (0, 1] from rng and values every position 0. It is
// not safe for concurrent use because rng is not.
func Random(rng *rand.Rand) Evaluator {
	return random{rng: rng}
}

func (r random) Predict(board Board, _ Cell) (float64, []float64) {
	policy := make([]float64, board.Len())
	for i := range policy {
		if board.IsEmpty(i) {
			policy[i] = 1 - r.rng.Float64()
		}
	}
	return 0, policy
}

type distance struct{}

// Distance values a position by comparing how many empty cells each colour
// still needs to connect its edges, and prefers empty cells touching stones.
func Distance() Evaluator {
	return distance{}
}

func (distance) Predict(board Board, toMove Cell) (float64, []float64) {
	neighbors := Neighbors(board.Size())

	mine := shortestConnection(board, neighbors, toMove)
	theirs := shortestConnection(board, neighbors, Opponent(toMove))
	value := 0.0
	if total := mine + theirs; total > 0 {
		value = float64(theirs-mine) / float64(total)
	}

	policy := make([]float64, board.Len())
	for i := range policy {
		if !board.IsEmpty(i) {
			continue
		}
		touching := 0
		for _, n := range neighbors.Of(i) {
			if !board.IsEmpty(n) {
				touching++
			}
		}
		policy[i] = float64(1+touching) / 7
	}
	return value, policy
}

// shortestConnection counts the fewest empty cells colour must fill to connect
// its edges, using a 0-1 breadth-first search where own stones are free and
// opposing stones are walls. Unreachable returns size²+1.
func shortestConnection(board Board, neighbors NeighborTable, colour Cell) int {
	size := board.Size()
	unreachable := board.Len() + 1
	dist := make([]int, board.Len())
	for i := range dist {
		dist[i] = math.MaxInt
	}

	cost := func(cell int) (int, bool) {
		switch board.At(cell) {
		case colour:
			return 0, true
		case Empty:
			return 1, true
		default:
			return 0, false
		}
	}

	// Zero-cost steps go to the front
	var queue deque
	for _, cell := range startingEdge(size, colour) {
		c, ok := cost(cell)
		if !ok || c >= dist[cell] {
			continue
		}
		dist[cell] = c
		queue.push(cell, c == 0)
	}

	best := unreachable
	for !queue.empty() {
		cell := queue.pop()
		if onGoalEdge(size, colour, cell) && dist[cell] < best {
			best = dist[cell]
		}
		for _, n := range neighbors.Of(cell) {
			c, ok := cost(n)
			if !ok {
				continue
			}
			if d := dist[cell] + c; d < dist[n] {
				dist[n] = d
				queue.push(n, c == 0)
			}
		}
	}
	return best
}

// deque is a double-ended queue of cells. Front pushes stack up in front,
// back pushes queue up behind; both are amortised O(1).
type deque struct {
	front []int // Top is the last element
	back  []int
	head  int // Next unread index of back
}

func (q *deque) push(cell int, toFront bool) {
	if toFront {
		q.front = append(q.front, cell)
		return
	}
	q.back = append(q.back, cell)
}

func (q *deque) empty() bool {
	return len(q.front) == 0 && q.head == len(q.back)
}

// pop removes the first cell. The deque must not be empty.
func (q *deque) pop() int {
	if n := len(q.front); n > 0 {
		cell := q.front[n-1]
		q.front = q.front[:n-1]
		return cell
	}
	cell := q.back[q.head]
	q.head++
	if q.head == len(q.back) {
		q.back, q.head = q.back[:0], 0
	}
	return cell
}

// EvaluatorNames lists the names accepted by NewEvaluator.
func EvaluatorNames() []string {
	names := []string{"uniform", "random", "distance"}
	sort.Strings(names)
	return names
}

// NewEvaluator builds an evaluator by name. Seed feeds evaluators that need
// a random source.
func NewEvaluator(name string, seed uint64) (Evaluator, error) {
	switch name {
	case "uniform", "":
		return Uniform(), nil
	case "random":
		return Random(rand.New(rand.NewSource(seed))), nil
	case "distance":
		return Distance(), nil
	}
	return nil, errors.Wrapf(ErrUnknownEvaluator, "%q (want one of %v)", name, EvaluatorNames())
}
