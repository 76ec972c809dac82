// Package cmd implements the mcfsolve command-line interface: a thin
// cobra/viper front end over pkg/mincostflow and pkg/dimacs, with a root.go
// carrying persistent flags and cobra.OnInitialize, and one subcommand per
// sibling file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LiveRamp/flowsolve/pkg/dimacs"
	"github.com/LiveRamp/flowsolve/pkg/graph"
	"github.com/LiveRamp/flowsolve/pkg/mainboilerplate"
	"github.com/LiveRamp/flowsolve/pkg/mincostflow"
)

var configFile string
var logLevel string
var metricsAddr string

// Execute evaluates provided arguments against the rootCmd hierarchy. This
// is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

// rootCmd parents every mcfsolve subcommand.
var rootCmd = &cobra.Command{
	Use:   "mcfsolve",
	Short: "mcfsolve solves DIMACS minimum-cost-flow instances",
}

func init() {
	cobra.OnInitialize(initConfig)
	flag.Parse()

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "",
		"optional config file tuning solver knobs (alpha, price-update threshold)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "",
		"if set, serve prometheus metrics on this address (e.g. :2112)")
}

// solverConfig is the shape read from -f, if given. mcfsolve has
// reasonable defaults for all of these and only parses a config file when
// one is explicitly provided.
type solverConfig struct {
	Solver struct {
		Alpha                int64
		PriceUpdateThreshold int
		CheckFeasibility     bool
	}
}

func (cfg solverConfig) Validate() error {
	if cfg.Solver.Alpha != 0 && cfg.Solver.Alpha <= 1 {
		return fmt.Errorf("invalid Solver.Alpha (%d; expected > 1)", cfg.Solver.Alpha)
	}
	return nil
}

var cfg = solverConfig{}

func initConfig() {
	cfg.Solver.Alpha = 5
	cfg.Solver.CheckFeasibility = true

	if configFile != "" {
		mainboilerplate.MustParseConfig(&configFile, "mcfsolve-config", &cfg)
	}

	mainboilerplate.InitLog(logLevel)

	if metricsAddr != "" {
		prometheus.MustRegister(mincostflow.Collectors()...)
		mainboilerplate.InitMetrics(metricsAddr, "/metrics")
	}
}

// newSolver builds a Solver from a parsed DIMACS instance, applying the
// tuning knobs from solverConfig.
func newSolver(inst *dimacs.Instance) *mincostflow.Solver {
	var builder, capacity, cost = inst.Build()
	var g = builder.Build()
	var solver = mincostflow.New(g, capacity)

	for i, c := range cost {
		solver.SetArcUnitCost(graph.ArcIndex(i), c)
	}
	for node, supply := range inst.Supply {
		solver.SetNodeSupply(node, supply)
	}
	if cfg.Solver.Alpha > 1 {
		solver.SetAlpha(cfg.Solver.Alpha)
	}
	if cfg.Solver.PriceUpdateThreshold > 0 {
		solver.SetPriceUpdateThreshold(cfg.Solver.PriceUpdateThreshold)
	}
	return solver
}

func mustReadInstance(path string) *dimacs.Instance {
	f, err := os.Open(path)
	if err != nil {
		log.WithField("err", err).Fatal("opening input file")
	}
	defer f.Close()

	inst, err := dimacs.Read(f)
	if err != nil {
		log.WithField("err", err).Fatal("parsing DIMACS input")
	}
	return inst
}
