// Package matrixgame implements equilibrium algorithms for two-player
// games in normal form. The row player's payoffs are given as A[i][j]
// and the column player's as B[j][i]: both matrices are indexed with the
// owning player's strategy first.
package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

// PureEquilibria returns all pure-strategy Nash equilibria of the
// bimatrix game (A, B) as (row, column) strategy pairs in lexicographic
// order. A pair qualifies iff each player's payoff equals the maximum
// achievable against the other's fixed strategy; ties keep every
// maximizer. The scan is a plain dense iteration over all pairs.
func PureEquilibria(A, B [][]float64) ([][2]int, error) {
	if err := validateShapes(A, B); err != nil {
		return nil, err
	}

	var result [][2]int
	for i := range A {
		for j := range A[i] {
			rowBestResponse := A[i][j] >= columnMax(A, j)
			colBestResponse := B[j][i] >= columnMax(B, i)
			if rowBestResponse && colBestResponse {
				result = append(result, [2]int{i, j})
			}
		}
	}

	return result, nil
}

// columnMax is the largest payoff in column j, i.e. the best the owning
// player can do against the opponent's fixed strategy j.
func columnMax(m [][]float64, j int) float64 {
	best := math.Inf(-1)
	for i := range m {
		if m[i][j] > best {
			best = m[i][j]
		}
	}

	return best
}

func validateShapes(A, B [][]float64) error {
	if len(A) == 0 || len(A[0]) == 0 {
		return errors.New("row player payoff matrix is empty")
	}

	nRows, nCols := len(A), len(A[0])
	for i, row := range A {
		if len(row) != nCols {
			return errors.Errorf("row player payoff matrix is ragged: row %d has %d entries, expected %d",
				i, len(row), nCols)
		}
	}

	if len(B) != nCols {
		return errors.Errorf("column player has %d strategies, expected %d", len(B), nCols)
	}

	for j, row := range B {
		if len(row) != nRows {
			return errors.Errorf("column player payoff matrix is ragged: row %d has %d entries, expected %d",
				j, len(row), nRows)
		}
	}

	return nil
}
