package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates a mixed-strategy equilibrium of the
// bimatrix game (A, B) by iterated empirical best response. On each
// iteration every player best-responds to the opponent's historical play
// counts, playing a uniform random strategy with probability
// mixingLambda instead. Returns each player's normalized play
// frequencies after nIter iterations.
func FictitiousPlay(A, B [][]float64, nIter int, mixingLambda float64) ([]float32, []float32) {
	rowPlayCounts := make([]int, len(A))
	colPlayCounts := make([]int, len(A[0]))
	for i := 1; i <= nIter; i++ {
		var rowSelected int
		if rand.Float64() < mixingLambda {
			rowSelected = rand.Intn(len(rowPlayCounts))
		} else {
			rowSelected = getRowBestResponse(A, colPlayCounts)
		}

		var colSelected int
		if rand.Float64() < mixingLambda {
			colSelected = rand.Intn(len(colPlayCounts))
		} else {
			colSelected = getColBestResponse(B, rowPlayCounts)
		}
		rowPlayCounts[rowSelected] += 1
		colPlayCounts[colSelected] += 1

		if nIter >= 10 && i%(nIter/10) == 0 {
			glog.Infof("After %d iterations, row player weights: %v", i, normalize(rowPlayCounts))
			glog.Infof("After %d iterations, column player weights: %v", i, normalize(colPlayCounts))
		}
	}

	return normalize(rowPlayCounts), normalize(colPlayCounts)
}

func getRowBestResponse(A [][]float64, colPlayCounts []int) int {
	utilities := make([]float64, len(A))
	for j, c := range colPlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * A[i][j]
		}
	}

	_, br := argMax(utilities)
	return br
}

func getColBestResponse(B [][]float64, rowPlayCounts []int) int {
	utilities := make([]float64, len(B))
	for i, c := range rowPlayCounts {
		for j := range utilities {
			utilities[j] += float64(c) * B[j][i]
		}
	}

	_, br := argMax(utilities)
	return br
}

func normalize(counts []int) []float32 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float32, len(counts))
	for i, v := range counts {
		result[i] = float32(v) / float32(total)
	}
	return result
}

func argMax(vs []float64) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && rand.Intn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}
