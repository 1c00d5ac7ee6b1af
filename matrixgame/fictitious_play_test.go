package matrixgame

import (
	"testing"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	// Rock, paper, scissors: the unique equilibrium mixes uniformly.
	A := [][]float64{
		{0, -1, 1}, // Row player plays rock.
		{1, 0, -1}, // Row player plays paper.
		{-1, 1, 0}, // Row player plays scissors.
	}
	// Zero-sum and antisymmetric, so the column player's payoffs are the
	// same matrix.
	B := [][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	}

	p0, p1 := FictitiousPlay(A, B, 30000, 0.1)
	t.Logf("Row player equilibrium policy: %v", p0)
	t.Logf("Column player equilibrium policy: %v", p1)

	for _, weights := range [][]float32{p0, p1} {
		for i, w := range weights {
			if w < 0.15 || w > 0.55 {
				t.Errorf("strategy %d has play frequency %v, expected roughly uniform", i, w)
			}
		}
	}
}

func TestFictitiousPlay_DominantStrategy(t *testing.T) {
	// Prisoner's dilemma: defection (strategy 1) is strictly dominant,
	// so fictitious play without mixing must lock onto it after at most
	// one exploratory step.
	A := [][]float64{
		{-1, -3},
		{0, -2},
	}
	B := [][]float64{
		{-1, -3},
		{0, -2},
	}

	p0, p1 := FictitiousPlay(A, B, 10000, 0)
	if p0[1] < 0.99 {
		t.Errorf("row player defects with frequency %v, expected > 0.99", p0[1])
	}
	if p1[1] < 0.99 {
		t.Errorf("column player defects with frequency %v, expected > 0.99", p1[1])
	}
}
