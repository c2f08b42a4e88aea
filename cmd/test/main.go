// Command test solves a batch of puzzles — either file arguments or, with
// none given, the bundled sample set — and reports which ones solved
// cleanly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gifnksm/slither-link-solver/internal/clihelp"
	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/gifnksm/slither-link-solver/internal/pprint"
	"github.com/gifnksm/slither-link-solver/internal/puzzles"
	"github.com/gifnksm/slither-link-solver/internal/solver"
	"github.com/gifnksm/slither-link-solver/pkg/config"
	"github.com/gifnksm/slither-link-solver/pkg/constants"
)

func main() {
	verbose := flag.Bool("v", false, "print the solved grid and hint diff for every puzzle")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "test:", err)
		os.Exit(constants.ExitError)
	}

	theorems, err := clihelp.LoadTheorems(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "test:", err)
		os.Exit(constants.ExitError)
	}

	names, puzzleFns, err := collectCases()
	if err != nil {
		fmt.Fprintln(os.Stderr, "test:", err)
		os.Exit(constants.ExitError)
	}

	pass := 0
	for i, name := range names {
		pz, err := puzzleFns(i)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", name, err)
			continue
		}
		if runCase(name, pz, theorems, *verbose) {
			pass++
		}
	}

	fmt.Printf("%d/%d puzzles solved\n", pass, len(names))
	if pass != len(names) {
		os.Exit(constants.ExitError)
	}
	os.Exit(constants.ExitOK)
}

// collectCases returns the case names and a lazy accessor over them: either
// one per file argument, or one per bundled sample puzzle when no files were
// given.
func collectCases() ([]string, func(int) (*core.Puzzle, error), error) {
	if flag.NArg() > 0 {
		paths := flag.Args()
		return paths, func(i int) (*core.Puzzle, error) {
			return clihelp.ReadPuzzle(paths[i])
		}, nil
	}

	bundle := puzzles.Bundled()
	names := bundle.Names()
	return names, func(i int) (*core.Puzzle, error) {
		return bundle.Get(i)
	}, nil
}

func runCase(name string, pz *core.Puzzle, theorems []*solver.Theorem, verbose bool) bool {
	solved, err := solver.SolveWithTheorems(pz, theorems)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", name, err)
		return false
	}

	if verbose {
		pprint.FprintSummary(os.Stdout, name, solved)
		pprint.Fprint(os.Stdout, solved)
		pprint.FprintDiff(os.Stdout, solved)
	}
	fmt.Printf("ok   %s\n", name)
	return true
}
