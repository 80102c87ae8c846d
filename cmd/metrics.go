package cmd

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synthwatch/telegen/common/logging"
	"github.com/synthwatch/telegen/internal/metricgen"
	"github.com/synthwatch/telegen/internal/scheduler"
	"github.com/synthwatch/telegen/internal/sink"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Run the traffic metric generator",
	Long: `Push a sparse synthetic traffic surface to a Prometheus Pushgateway.

Every cycle materializes correlated 5m/1h/1d rate gauges per interface
plus per-node connection and packet-loss gauges across the configured
tenant/provider/connection-type/node topology, thinned at two levels to
mimic a realistic partial deployment.

Examples:
  TENANTS=acme,globex telegen metrics
  TENANTS=acme METRICS_PUSHGATEWAY_URL=http://localhost:9091 telegen metrics`,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	topo := metricgen.DefaultTopology(cfg.Tenants)
	if cfg.Metrics.TopologyFile != "" {
		var err error
		topo, err = metricgen.LoadTopologyFile(cfg.Metrics.TopologyFile, cfg.Tenants)
		if err != nil {
			return err
		}
	}

	opts := metricgen.Options{
		CombinationSkipProbability: cfg.Metrics.CombinationSkipProbability,
		NodeSkipProbability:        cfg.Metrics.NodeSkipProbability,
		MaxSamplesPerCycle:         cfg.Metrics.MaxSamplesPerCycle,
	}

	gen, err := metricgen.New(topo, opts, newRand())
	if err != nil {
		return err
	}

	log := logger.With(logging.Service("metric-generator"))
	log.Info("starting metric generator",
		"tenants", strings.Join(cfg.Tenants, ","),
		"pushgateway_url", cfg.Metrics.PushgatewayURL,
		logging.Job(cfg.Metrics.Job),
	)

	pusher := sink.NewGatewayPusher(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job)
	task := metricgen.NewTask(gen, pusher, log)
	scheduler.Run(ctx, cfg.Metrics.Interval, task, log)
	return nil
}
