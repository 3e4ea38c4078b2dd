package searcher

import (
	"math"

	"hex/game"
)

// decision is a search tree node. It owns a private board snapshot with
// turn to move, and its children ordered by ascending move.
type decision struct {
	board    game.Board
	turn     game.Cell
	prior    float64
	moves    []int
	children []*decision
	value    float64
	visits   int
}

func newDecision(board game.Board, turn game.Cell, prior float64) *decision {
	return &decision{
		board: board,
		turn:  turn,
		prior: prior,
	}
}

// expand adds one child per cell with a positive weight. Each child's board
// is a copy with the move played by this node's side.
func (d *decision) expand(policy []float64) {
	for move, prob := range policy {
		if prob <= 0 {
			continue
		}
		child := newDecision(d.board.Play(move, d.turn), game.Opponent(d.turn), prob)
		d.moves = append(d.moves, move)
		d.children = append(d.children, child)
	}
}

func (d *decision) isLeaf() bool {
	return len(d.children) == 0
}

// pickChild returns the index of the child with the highest PUCT score. The
// first child wins ties.
func (d *decision) pickChild() int {
	if d.isLeaf() {
		panic("node has no children")
	}

	policy := newPUCT(d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := policy.evaluate(child.prior, child.value, child.visits)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) update(value float64) {
	d.value += value
	d.visits++
}

// Policy lists the root's children statistics in move order.
func (d *decision) Policy() []Candidate {
	candidates := make([]Candidate, len(d.children))
	for i, child := range d.children {
		candidates[i] = Candidate{
			Move:   d.moves[i],
			Prior:  child.prior,
			Value:  child.value,
			Visits: child.visits,
		}
	}
	return candidates
}

func (d *decision) size() int {
	total := 1
	for _, child := range d.children {
		total += child.size()
	}
	return total
}
