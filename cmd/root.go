package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/synthwatch/telegen/common/logging"
	"github.com/synthwatch/telegen/internal/config"
)

var (
	cfgFile  string
	seedFlag int64
	cfg      *config.Config
	logger   *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "telegen",
	Short: "Synthetic operational telemetry generators",
	Long: `telegen produces synthetic authentication logs and network traffic
metrics so detection and dashboarding pipelines can be exercised
without live infrastructure.

Each subcommand runs one generator: authlogs streams actor-classified
authentication events as NDJSON, metrics pushes a sparse label-rich
traffic surface to a Pushgateway, and rates serves a mock currency
exchange endpoint.`,
	Version: "0.1.0",
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional YAML)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "RNG seed for deterministic runs (0 = time-based)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if seedFlag != 0 {
		cfg.Seed = seedFlag
	}

	logger = logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	logging.SetDefault(logger)
}

// newRand returns the explicitly owned random source for a generator.
func newRand() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
