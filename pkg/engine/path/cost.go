package path

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeCost   = errors.New("cost model weight is negative")
	ErrNegativeBudget = errors.New("movement budget is negative")
	ErrSegments       = errors.New("segment count must be at least 1")
	ErrNoTile         = errors.New("source has no tile")
)

// CostModel holds the price of each kind of move. All weights must be
// non-negative.
type CostModel struct {
	Orthogonal float64
	Diagonal   float64
	// CoverStep replaces the base cost of a move over low cover
	CoverStep float64
	Climb     float64
	Drop      float64
}

// DefaultCostModel is the model used for unit movement
func DefaultCostModel() CostModel {
	return CostModel{
		Orthogonal: 1,
		Diagonal:   1.5,
		CoverStep:  2,
		Climb:      2,
		Drop:       1,
	}
}

func (m CostModel) weights() []struct {
	name string
	v    float64
} {
	return []struct {
		name string
		v    float64
	}{
		{"orthogonal", m.Orthogonal},
		{"diagonal", m.Diagonal},
		{"cover step", m.CoverStep},
		{"climb", m.Climb},
		{"drop", m.Drop},
	}
}

// Validate rejects negative or NaN weights
func (m CostModel) Validate() error {
	for _, w := range m.weights() {
		if w.v < 0 || math.IsNaN(w.v) {
			return fmt.Errorf("%w: %s = %v", ErrNegativeCost, w.name, w.v)
		}
	}
	return nil
}

// minWeight returns the cheapest move, 0 if any move is free
func (m CostModel) minWeight() float64 {
	least := math.Inf(1)
	for _, w := range m.weights() {
		least = min(least, w.v)
	}
	return least
}
