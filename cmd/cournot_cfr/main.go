// Run vanilla CFR over the one-shot Cournot game tree at a single
// marginal cost value, and optionally save the expected value trace.
package main

import (
	"encoding/gob"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/econgames/cournot"
)

// result is the gob-encoded output of one CFR run.
type result struct {
	MarginalCost   float64
	Iterations     int
	ExpectedValues []float64
}

func main() {
	cost := flag.Float64("cost", 0, "Marginal cost of production for both firms")
	nIter := flag.Int("iter", 1000, "Number of CFR iterations")
	output := flag.String("output", "", "File to save the expected value trace to (optional)")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	game := cournot.NewGame(*cost)
	root, err := cournot.NewGameTree(game)
	if err != nil {
		glog.Fatal(err)
	}

	total := 0
	terminal := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		total++
		if node.Type() == cfr.TerminalNodeType {
			terminal++
		}
	})
	glog.Infof("Game tree has %d nodes (%d terminal)", total, terminal)

	vanillaCFR := cfr.NewVanilla()
	res := result{MarginalCost: *cost, Iterations: *nIter}
	for i := 1; i <= *nIter; i++ {
		expectedValue := vanillaCFR.Run(root)
		res.ExpectedValues = append(res.ExpectedValues, expectedValue)
		if *nIter >= 10 && i%(*nIter/10) == 0 {
			glog.Infof("After %d iterations, expected value is %v", i, expectedValue)
		}
	}

	if *output != "" {
		if err := saveResult(*output, res); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Saved expected value trace to: %v", *output)
	}
}

func saveResult(filename string, res result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	defer w.Close()

	enc := gob.NewEncoder(w)
	return enc.Encode(res)
}
