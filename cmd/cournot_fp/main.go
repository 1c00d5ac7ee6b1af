// Approximate a mixed-strategy equilibrium of the Cournot duopoly at a
// single marginal cost value with fictitious play.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"

	"github.com/econgames/cournot"
	"github.com/econgames/cournot/matrixgame"
)

func main() {
	cost := flag.Float64("cost", 0, "Marginal cost of production for both firms")
	nIter := flag.Int("iter", 100000, "Number of fictitious play iterations")
	mixingLambda := flag.Float64("mixing_lambda", 0.05, "Probability of playing a uniform random quantity")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	rand.Seed(*seed)

	game := cournot.NewGame(*cost)
	if err := game.Validate(); err != nil {
		glog.Fatal(err)
	}

	A, B := game.PayoffMatrices()
	glog.Infof("Running %d iterations of fictitious play for marginal cost c = %v", *nIter, *cost)
	p1, p2 := matrixgame.FictitiousPlay(A, B, *nIter, *mixingLambda)
	glog.Infof("Firm 1 play frequencies: %v", p1)
	glog.Infof("Firm 2 play frequencies: %v", p2)
	glog.Infof("Firm 1 modal quantity: %d", argMax(p1))
	glog.Infof("Firm 2 modal quantity: %d", argMax(p2))
}

func argMax(vs []float32) int {
	best := 0
	for i := range vs {
		if vs[i] > vs[best] {
			best = i
		}
	}

	return best
}
