package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.min>",
	Short: "Run only the feasibility preflight and report per-node shortfalls",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Usage()
			log.Fatal("expected exactly one DIMACS input file")
		}

		var inst = mustReadInstance(args[0])
		var solver = newSolver(inst)

		ok, infeasibleSupply, infeasibleDemand := solver.CheckFeasibility()
		if ok {
			fmt.Fprintln(os.Stdout, "c feasible")
			return
		}

		fmt.Fprintln(os.Stdout, "c infeasible")
		for _, v := range infeasibleSupply {
			fmt.Fprintf(os.Stdout, "c supply node %d short: wanted %d, feasible %d\n",
				int(v)+1, solver.InitialSupply(v), solver.FeasibleSupply(v))
		}
		for _, v := range infeasibleDemand {
			fmt.Fprintf(os.Stdout, "c demand node %d short: wanted %d, feasible %d\n",
				int(v)+1, solver.InitialSupply(v), solver.FeasibleSupply(v))
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
