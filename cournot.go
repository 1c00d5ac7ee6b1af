// Package cournot computes Nash equilibria of a discretized two-firm
// Cournot quantity-setting game. Both firms simultaneously choose an
// output level on an integer grid, the market price is a decreasing
// function of total output, and each firm pays a constant marginal cost
// per unit produced.
package cournot

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/econgames/cournot/matrixgame"
)

const (
	// DemandIntercept is the maximum willingness to pay: the market
	// price is DemandIntercept - q1 - q2.
	DemandIntercept = 30
	// NumQuantities is the size of the discretized strategy space.
	// Each firm chooses an output level in [0, NumQuantities-1].
	NumQuantities = 21
	// MaxMarginalCost is the largest cost value covered by the
	// reference sweep. At this cost producing anything is unprofitable.
	MaxMarginalCost = 30
)

// Game fixes the parameters of one Cournot duopoly instance. Both firms
// face the same marginal cost and the same inverse demand curve.
type Game struct {
	// Intercept of the inverse demand curve.
	Intercept float64
	// MarginalCost per unit of output, identical for both firms.
	MarginalCost float64
	// NumQuantities is the number of output levels available to each firm.
	NumQuantities int
}

// NewGame creates a Game with the reference demand curve and strategy
// grid for the given marginal cost.
func NewGame(marginalCost float64) Game {
	return Game{
		Intercept:     DemandIntercept,
		MarginalCost:  marginalCost,
		NumQuantities: NumQuantities,
	}
}

// Validate sanity checks the game parameters.
func (g Game) Validate() error {
	if g.NumQuantities <= 0 {
		return errors.Errorf("game must have at least one quantity, got %d", g.NumQuantities)
	}

	if g.Intercept <= 0 {
		return errors.Errorf("demand intercept must be positive, got %v", g.Intercept)
	}

	if g.MarginalCost < 0 {
		return errors.Errorf("marginal cost must be non-negative, got %v", g.MarginalCost)
	}

	return nil
}

// Profit is the profit of a firm producing own units while the other
// firm produces other units: market price times quantity sold, less the
// cost of production.
func (g Game) Profit(own, other int) float64 {
	price := g.Intercept - float64(own) - float64(other)
	return price*float64(own) - g.MarginalCost*float64(own)
}

// PayoffMatrices builds fresh profit tables for both firms.
// A[q1][q2] is firm 1's profit and B[q2][q1] is firm 2's profit:
// each table is indexed with the owning firm's quantity first.
func (g Game) PayoffMatrices() (A, B [][]float64) {
	n := g.NumQuantities
	A = make([][]float64, n)
	B = make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
		B[i] = make([]float64, n)
	}

	for q1 := 0; q1 < n; q1++ {
		for q2 := 0; q2 < n; q2++ {
			A[q1][q2] = g.Profit(q1, q2)
			B[q2][q1] = g.Profit(q2, q1)
		}
	}

	return A, B
}

// Profile is a pure strategy profile: one output quantity per firm.
type Profile struct {
	Q1, Q2 int
}

// String implements Stringer.
func (p Profile) String() string {
	return fmt.Sprintf("(q1=%d, q2=%d)", p.Q1, p.Q2)
}

// Equilibria returns all pure-strategy Nash equilibria of the game in
// lexicographic (q1, q2) order. The result is empty if no quantity pair
// is a mutual best response.
func (g Game) Equilibria() ([]Profile, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	A, B := g.PayoffMatrices()
	pairs, err := matrixgame.PureEquilibria(A, B)
	if err != nil {
		return nil, errors.Wrap(err, "equilibrium search")
	}

	profiles := make([]Profile, len(pairs))
	for i, pair := range pairs {
		profiles[i] = Profile{Q1: pair[0], Q2: pair[1]}
	}

	return profiles, nil
}
