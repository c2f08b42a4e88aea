// Command bench times how long the solver takes on one or more puzzles,
// either file arguments or a deterministic sample drawn from the bundled
// set by seed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gifnksm/slither-link-solver/internal/clihelp"
	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/gifnksm/slither-link-solver/internal/puzzles"
	"github.com/gifnksm/slither-link-solver/internal/solver"
	"github.com/gifnksm/slither-link-solver/pkg/config"
	"github.com/gifnksm/slither-link-solver/pkg/constants"
)

func main() {
	seed := flag.String("seed", "", "pick one bundled sample puzzle deterministically by seed instead of reading files")
	repeat := flag.Int("repeat", 1, "how many times to solve each puzzle")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(constants.ExitError)
	}

	theorems, err := clihelp.LoadTheorems(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(constants.ExitError)
	}

	cases, err := collectTargets(*seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(constants.ExitError)
	}

	status := constants.ExitOK
	for _, c := range cases {
		if err := benchOne(c.name, c.pz, theorems, *repeat); err != nil {
			fmt.Fprintf(os.Stderr, "bench: %s: %v\n", c.name, err)
			status = constants.ExitError
		}
	}
	os.Exit(status)
}

type target struct {
	name string
	pz   *core.Puzzle
}

func collectTargets(seed string) ([]target, error) {
	if seed != "" {
		pz, index, err := puzzles.Bundled().GetBySeed(seed)
		if err != nil {
			return nil, err
		}
		return []target{{name: fmt.Sprintf("seed=%s (#%d)", seed, index), pz: pz}}, nil
	}

	if flag.NArg() == 0 {
		bundle := puzzles.Bundled()
		targets := make([]target, 0, bundle.Count())
		for i, name := range bundle.Names() {
			pz, err := bundle.Get(i)
			if err != nil {
				return nil, err
			}
			targets = append(targets, target{name: name, pz: pz})
		}
		return targets, nil
	}

	targets := make([]target, 0, flag.NArg())
	for _, path := range flag.Args() {
		pz, err := clihelp.ReadPuzzle(path)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target{name: path, pz: pz})
	}
	return targets, nil
}

func benchOne(name string, pz *core.Puzzle, theorems []*solver.Theorem, repeat int) error {
	if repeat < 1 {
		repeat = 1
	}

	var total time.Duration
	for i := 0; i < repeat; i++ {
		start := time.Now()
		if _, err := solver.SolveWithTheorems(pz, theorems); err != nil {
			return err
		}
		total += time.Since(start)
	}

	fmt.Printf("%s: %dx%d, sum_of_hint=%d, %v/solve (%d runs)\n",
		name, pz.Row(), pz.Column(), pz.SumOfHint(), total/time.Duration(repeat), repeat)
	return nil
}
