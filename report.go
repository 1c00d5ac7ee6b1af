package cournot

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Width of the horizontal rules separating report blocks.
const ruleWidth = 30

// WriteReport writes the report block for a single marginal cost value:
// a cost header, one line per equilibrium profile (or a single absence
// line if there are none), and a closing separator.
func WriteReport(w io.Writer, c float64, equilibria []Profile) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Marginal cost c = %v\n", c)
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')

	if len(equilibria) == 0 {
		fmt.Fprintf(&b, "For marginal cost c = %v, no pure strategy Nash equilibrium exists.\n", c)
	} else {
		for _, p := range equilibria {
			fmt.Fprintf(&b, "For marginal cost c = %v, the strategy profile %v is a Nash equilibrium.\n", c, p)
		}
	}

	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Sweep solves the reference game for every integer marginal cost in
// [minCost, maxCost] and writes one report block per cost value. Each
// iteration allocates fresh payoff tables; nothing is shared across
// cost values.
func Sweep(w io.Writer, minCost, maxCost int) error {
	for c := minCost; c <= maxCost; c++ {
		game := NewGame(float64(c))
		equilibria, err := game.Equilibria()
		if err != nil {
			return errors.Wrapf(err, "marginal cost %d", c)
		}

		if err := WriteReport(w, game.MarginalCost, equilibria); err != nil {
			return errors.Wrapf(err, "marginal cost %d", c)
		}
	}

	return nil
}
