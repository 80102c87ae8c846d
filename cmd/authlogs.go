package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/synthwatch/telegen/common/logging"
	"github.com/synthwatch/telegen/internal/authgen"
	"github.com/synthwatch/telegen/internal/scheduler"
	"github.com/synthwatch/telegen/internal/sink"
)

var authlogsCmd = &cobra.Command{
	Use:   "authlogs",
	Short: "Run the authentication event generator",
	Long: `Stream synthetic authentication attempt events to stdout as NDJSON.

Each batch mixes attacker, legitimate and corporate actor classes with
class-specific success rates and vocabularies. Tenants come from the
TENANTS environment variable (comma-separated) or the config file.

Examples:
  # Two tenants, default 2s batch interval
  TENANTS=acme,globex telegen authlogs

  # Deterministic run for pipeline tests
  TENANTS=acme telegen authlogs --seed 42`,
	RunE: runAuthlogs,
}

func init() {
	rootCmd.AddCommand(authlogsCmd)
}

func runAuthlogs(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := newRand()

	pools := authgen.DefaultPools(cfg.Tenants)
	if n := cfg.Events.FakeIdentities; n > 0 {
		faker := gofakeit.New(rng.Int63())
		pools = pools.WithFakeIdentities(n, faker)
	}

	gen, err := authgen.New(pools, rng)
	if err != nil {
		return err
	}

	log := logger.With(logging.Service("auth-log-generator"))
	log.Info("starting auth log generator",
		"tenants", strings.Join(cfg.Tenants, ","),
		"attacker_ips", len(pools.AttackerIPs),
		"legitimate_users", len(pools.LegitimateUsers),
	)

	task := authgen.NewTask(gen, sink.NewNDJSON(os.Stdout))
	scheduler.Run(ctx, cfg.Events.Interval, task, log)
	return nil
}
