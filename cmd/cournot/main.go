// Sweep marginal cost values and report the pure-strategy Nash
// equilibria of the Cournot duopoly at each one.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/profile"

	"github.com/econgames/cournot"
)

func main() {
	minCost := flag.Int("min_cost", 0, "Lowest marginal cost in the sweep")
	maxCost := flag.Int("max_cost", cournot.MaxMarginalCost, "Highest marginal cost in the sweep")
	profileCPU := flag.Bool("profile", false, "Collect a CPU profile of the sweep")
	flag.Parse()

	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	w := bufio.NewWriter(os.Stdout)
	if err := cournot.Sweep(w, *minCost, *maxCost); err != nil {
		glog.Fatal(err)
	}

	if err := w.Flush(); err != nil {
		glog.Fatal(err)
	}
}
