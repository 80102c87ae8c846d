package sink

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/synthwatch/telegen/internal/metricgen"
)

// Label names on the pushed gauges. connectionType is camel-cased to
// match the recording rules the dashboard queries.
var (
	interfaceLabels = []string{"tenant", "provider", "connectionType", "interface", "nodetype", "node"}
	nodeLabels      = []string{"tenant", "provider", "connectionType", "nodetype", "node"}
)

var metricHelp = map[string]string{
	metricgen.MetricTrafficRate5m:     "Network traffic RX bytes rate over 5 minutes",
	metricgen.MetricTrafficRate1h:     "Network traffic RX bytes rate over 1 hour",
	metricgen.MetricTrafficRate1d:     "Network traffic RX bytes rate over 1 day",
	metricgen.MetricActiveConnections: "Total active connections",
	metricgen.MetricPacketLoss:        "Packet loss rate percentage",
}

// GatewayPusher pushes one cycle's samples to a Prometheus Pushgateway
// as a single grouped job. The push replaces the previous cycle's
// series and is all-or-nothing; a rejected push discards the batch.
type GatewayPusher struct {
	url string
	job string
}

// NewGatewayPusher returns a pusher targeting the given Pushgateway URL
// under one job label.
func NewGatewayPusher(url, job string) *GatewayPusher {
	return &GatewayPusher{url: url, job: job}
}

// Push registers a fresh registry for the batch and pushes it. Building
// the registry per push keeps dropped label combinations from previous
// cycles out of the gateway's grouped state.
func (p *GatewayPusher) Push(samples []metricgen.Sample) error {
	registry := prometheus.NewRegistry()
	gauges := make(map[string]*prometheus.GaugeVec)

	for _, s := range samples {
		vec, ok := gauges[s.Metric]
		if !ok {
			labels := nodeLabels
			if s.Labels.Interface != "" {
				labels = interfaceLabels
			}
			vec = prometheus.NewGaugeVec(
				prometheus.GaugeOpts{Name: s.Metric, Help: metricHelp[s.Metric]},
				labels,
			)
			if err := registry.Register(vec); err != nil {
				return fmt.Errorf("failed to register gauge %s: %w", s.Metric, err)
			}
			gauges[s.Metric] = vec
		}

		labelValues := prometheus.Labels{
			"tenant":         s.Labels.Tenant,
			"provider":       s.Labels.Provider,
			"connectionType": s.Labels.ConnectionType,
			"nodetype":       s.Labels.NodeType,
			"node":           s.Labels.Node,
		}
		if s.Labels.Interface != "" {
			labelValues["interface"] = s.Labels.Interface
		}
		vec.With(labelValues).Set(s.Value)
	}

	if err := push.New(p.url, p.job).Gatherer(registry).Push(); err != nil {
		return fmt.Errorf("failed to push to gateway: %w", err)
	}
	return nil
}
