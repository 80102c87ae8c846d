// Package metricgen materializes a sparse multi-dimensional network
// traffic surface each cycle: correlated rate gauges per interface plus
// per-node connection and quality gauges, thinned at two levels to
// emulate a realistic partial topology.
package metricgen

import (
	"math/rand"
)

// Value ranges for the generated gauges.
const (
	minRate5m = 1e6
	maxRate5m = 1e8

	// The longer windows are scaled views of the 5m rate, not
	// independent draws: 1h within +-20% of 5m, 1d within +-10% of 1h.
	rate1hJitter = 0.2
	rate1dJitter = 0.1

	minConnections = 10
	maxConnections = 1000

	maxPacketLossPct = 2.5
)

// Options tunes the sparsification and cardinality bound.
type Options struct {
	// CombinationSkipProbability drops a whole (tenant, provider,
	// connection type) combination; NodeSkipProbability then drops
	// individual nodes within retained combinations. The two stages use
	// independent draws so a node is either present for a combination
	// or absent from all of its interfaces.
	CombinationSkipProbability float64
	NodeSkipProbability        float64

	// MaxSamplesPerCycle truncates the batch once reached; 0 disables
	// the cap. Guards against cardinality explosion at large tenant
	// counts.
	MaxSamplesPerCycle int
}

// DefaultOptions mirrors the sparsity the downstream dashboard is tuned
// against.
func DefaultOptions() Options {
	return Options{
		CombinationSkipProbability: 0.30,
		NodeSkipProbability:        0.40,
		MaxSamplesPerCycle:         50000,
	}
}

// Generator produces one sparse sample batch per cycle. It holds no
// state between cycles beyond the cycle counter.
type Generator struct {
	topo  Topology
	opts  Options
	rng   *rand.Rand
	cycle int
}

// New validates the topology and returns a Generator drawing from the
// given random source.
func New(topo Topology, opts Options, rng *rand.Rand) (*Generator, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	return &Generator{topo: topo, opts: opts, rng: rng}, nil
}

// Cycle returns the number of batches generated so far.
func (g *Generator) Cycle() int {
	return g.cycle
}

// Topology returns the generator's validated topology.
func (g *Generator) Topology() Topology {
	return g.topo
}

// Batch generates one cycle's samples in a fixed traversal order
// (tenant, provider, connection type, node, interface). The returned
// flag reports whether the batch hit MaxSamplesPerCycle and was
// truncated. Consumers must key on labels, not position.
func (g *Generator) Batch() ([]Sample, bool) {
	g.cycle++

	var samples []Sample
	for _, tenant := range g.topo.Tenants {
		for _, provider := range g.topo.Providers {
			for _, connType := range g.topo.ConnectionTypes {
				if g.rng.Float64() < g.opts.CombinationSkipProbability {
					continue
				}
				ifaces := g.topo.Interfaces[provider][connType]
				for _, nodeType := range g.topo.NodeTypes {
					for _, node := range g.topo.Nodes {
						if g.rng.Float64() < g.opts.NodeSkipProbability {
							continue
						}
						group := g.nodeSamples(tenant, provider, connType, nodeType, node, ifaces)
						if g.opts.MaxSamplesPerCycle > 0 && len(samples)+len(group) > g.opts.MaxSamplesPerCycle {
							return samples, true
						}
						samples = append(samples, group...)
					}
				}
			}
		}
	}
	return samples, false
}

// nodeSamples emits the per-node gauges followed by the three
// correlated traffic rates for each interface of the combination.
func (g *Generator) nodeSamples(tenant, provider, connType, nodeType, node string, ifaces []string) []Sample {
	nodeLabels := Labels{
		Tenant:         tenant,
		Provider:       provider,
		ConnectionType: connType,
		NodeType:       nodeType,
		Node:           node,
	}

	samples := make([]Sample, 0, 2+3*len(ifaces))
	samples = append(samples,
		Sample{
			Metric: MetricActiveConnections,
			Labels: nodeLabels,
			Value:  float64(minConnections + g.rng.Intn(maxConnections-minConnections+1)),
		},
		Sample{
			Metric: MetricPacketLoss,
			Labels: nodeLabels,
			Value:  g.rng.Float64() * maxPacketLossPct,
		},
	)

	for _, iface := range ifaces {
		labels := nodeLabels
		labels.Interface = iface

		rate5m := minRate5m + g.rng.Float64()*(maxRate5m-minRate5m)
		rate1h := rate5m * g.jitter(rate1hJitter)
		rate1d := rate1h * g.jitter(rate1dJitter)

		samples = append(samples,
			Sample{Metric: MetricTrafficRate5m, Labels: labels, Value: rate5m},
			Sample{Metric: MetricTrafficRate1h, Labels: labels, Value: rate1h},
			Sample{Metric: MetricTrafficRate1d, Labels: labels, Value: rate1d},
		)
	}
	return samples
}

// jitter returns a multiplier uniform in [1-spread, 1+spread].
func (g *Generator) jitter(spread float64) float64 {
	return 1 + (g.rng.Float64()*2-1)*spread
}
