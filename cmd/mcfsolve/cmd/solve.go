package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LiveRamp/flowsolve/pkg/dimacs"
	"github.com/LiveRamp/flowsolve/pkg/graph"
	"github.com/LiveRamp/flowsolve/pkg/mincostflow"
)

var skipFeasibilityCheck bool

var solveCmd = &cobra.Command{
	Use:   "solve <file.min>",
	Short: "Solve a DIMACS minimum-cost-flow instance and print the solution",
	Long: `solve parses a DIMACS "min" problem file, runs the cost-scaling
push-relabel solver, and writes a DIMACS solution block (an "s" cost line
followed by one "f" flow line per arc, in declaration order) to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Usage()
			log.Fatal("expected exactly one DIMACS input file")
		}

		var inst = mustReadInstance(args[0])
		var solver = newSolver(inst)

		var status mincostflow.Status
		if skipFeasibilityCheck || !cfg.Solver.CheckFeasibility {
			status = solver.SolveWithoutFeasibilityCheck()
		} else {
			status = solver.Solve()
		}

		fmt.Fprintf(os.Stdout, "c status %s\n", status)
		if status != mincostflow.Optimal {
			os.Exit(1)
		}

		var sol = dimacs.SolutionFromSolver(solver.OptimalCost(), len(inst.Arcs),
			func(i int) int64 { return solver.Flow(graph.ArcIndex(i)) })
		if err := dimacs.WriteSolution(os.Stdout, inst, sol); err != nil {
			log.WithField("err", err).Fatal("writing solution")
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&skipFeasibilityCheck, "skip-feasibility-check", false,
		"run Optimize directly, skipping the feasibility preflight")
}
