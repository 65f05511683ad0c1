package search

import "fmt"

// Default action weights.
const (
	DefaultMoveCost = 1
	DefaultTurnCost = 1000
)

// CostModel maps an action kind to its weight. Both rotations share Turn.
type CostModel struct {
	Move int
	Turn int
}

// DefaultCostModel returns Move=1, Turn=1000.
func DefaultCostModel() CostModel {
	return CostModel{Move: DefaultMoveCost, Turn: DefaultTurnCost}
}

// Cost returns the weight of a single action.
func (m CostModel) Cost(a Action) int {
	if a.IsTurn() {
		return m.Turn
	}
	return m.Move
}

// Total returns the sum of the weights of actions.
func (m CostModel) Total(actions []Action) int {
	total := 0
	for _, a := range actions {
		total += m.Cost(a)
	}
	return total
}

// Validate rejects negative weights; uniform-cost search is only optimal
// when every edge weight is non-negative.
func (m CostModel) Validate() error {
	if m.Move < 0 || m.Turn < 0 {
		return fmt.Errorf("search: negative action cost (move=%d, turn=%d)", m.Move, m.Turn)
	}
	return nil
}
