// Command solve reads one or more Slither Link puzzle files and prints
// their solutions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gifnksm/slither-link-solver/internal/clihelp"
	"github.com/gifnksm/slither-link-solver/internal/pprint"
	"github.com/gifnksm/slither-link-solver/internal/solver"
	"github.com/gifnksm/slither-link-solver/pkg/config"
	"github.com/gifnksm/slither-link-solver/pkg/constants"
)

func main() {
	all := flag.Bool("all", false, "enumerate every solution instead of just the first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(constants.ExitError)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: solve [--all] FILE...")
		os.Exit(constants.ExitError)
	}

	theorems, err := clihelp.LoadTheorems(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(constants.ExitError)
	}

	status := constants.ExitOK
	for _, path := range flag.Args() {
		if err := solveFile(path, theorems, *all, cfg.MaxSolutions); err != nil {
			fmt.Fprintf(os.Stderr, "solve: %s: %v\n", path, err)
			status = constants.ExitError
		}
	}
	os.Exit(status)
}

func solveFile(path string, theorems []*solver.Theorem, all bool, maxSolutions int) error {
	pz, err := clihelp.ReadPuzzle(path)
	if err != nil {
		return err
	}

	if !all {
		solved, err := solver.SolveWithTheorems(pz, theorems)
		if err != nil {
			return err
		}
		return pprint.Fprint(os.Stdout, solved)
	}

	it, err := solver.NewSolutions(pz, theorems)
	if err != nil {
		return err
	}
	count := 0
	for it.Next() {
		if err := pprint.Fprint(os.Stdout, it.Puzzle()); err != nil {
			return err
		}
		fmt.Println()
		count++
		if maxSolutions > 0 && count >= maxSolutions {
			break
		}
	}
	if count == 0 {
		return fmt.Errorf("no solution found")
	}
	return nil
}
