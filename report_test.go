package cournot

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReportMaxCost(t *testing.T) {
	game := NewGame(MaxMarginalCost)
	equilibria, err := game.Equilibria()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, game.MarginalCost, equilibria); err != nil {
		t.Fatal(err)
	}

	expected := "Marginal cost c = 30\n" +
		strings.Repeat("-", 30) + "\n" +
		"For marginal cost c = 30, the strategy profile (q1=0, q2=0) is a Nash equilibrium.\n" +
		"\n" +
		strings.Repeat("=", 30) + "\n\n"
	if buf.String() != expected {
		t.Errorf("got report:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWriteReportNoEquilibrium(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, 5, nil); err != nil {
		t.Fatal(err)
	}

	expected := "Marginal cost c = 5\n" +
		strings.Repeat("-", 30) + "\n" +
		"For marginal cost c = 5, no pure strategy Nash equilibrium exists.\n" +
		"\n" +
		strings.Repeat("=", 30) + "\n\n"
	if buf.String() != expected {
		t.Errorf("got report:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestSweep(t *testing.T) {
	var buf bytes.Buffer
	if err := Sweep(&buf, 0, MaxMarginalCost); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if n := strings.Count(out, "Marginal cost c = "); n != 31 {
		t.Errorf("found %d cost headers, expected 31", n)
	}

	// 3 equilibria per cost in [0, 29], 1 at c = 30.
	if n := strings.Count(out, "is a Nash equilibrium."); n != 91 {
		t.Errorf("found %d equilibrium lines, expected 91", n)
	}

	if strings.Contains(out, "no pure strategy Nash equilibrium exists.") {
		t.Error("sweep reported a missing equilibrium; every cost value has at least one")
	}

	if !strings.HasPrefix(out, "Marginal cost c = 0\n"+strings.Repeat("-", 30)+"\n") {
		t.Error("sweep does not start with the c = 0 block")
	}

	if !strings.Contains(out, "For marginal cost c = 0, the strategy profile (q1=9, q2=11) is a Nash equilibrium.") {
		t.Error("c = 0 block is missing the (q1=9, q2=11) equilibrium")
	}
}

func TestSweepInvalidCost(t *testing.T) {
	var buf bytes.Buffer
	if err := Sweep(&buf, -3, 0); err == nil {
		t.Error("expected an error for a negative cost range")
	}
}
