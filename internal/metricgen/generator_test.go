package metricgen

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthwatch/telegen/internal/config"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func denseOptions() Options {
	return Options{CombinationSkipProbability: 0, NodeSkipProbability: 0}
}

func miniTopology() Topology {
	return Topology{
		Tenants:         []string{"t1"},
		Providers:       []string{"AWS"},
		ConnectionTypes: []string{"Direct"},
		NodeTypes:       []string{"router"},
		Nodes:           []string{"n1"},
		Interfaces: map[string]map[string][]string{
			"AWS": {"Direct": {"eth0"}},
		},
	}
}

func TestTopologyValidate_Defaults(t *testing.T) {
	topo := DefaultTopology([]string{"acme"})
	require.NoError(t, topo.Validate())
}

func TestTopologyValidate_EmptyTenants(t *testing.T) {
	topo := DefaultTopology(nil)
	err := topo.Validate()
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestTopologyValidate_MissingInterfacePair(t *testing.T) {
	topo := miniTopology()
	topo.ConnectionTypes = append(topo.ConnectionTypes, "VPN")

	err := topo.Validate()
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "VPN")
}

func TestNew_InvalidTopologyFailsAtStartup(t *testing.T) {
	topo := miniTopology()
	topo.Interfaces = nil
	_, err := New(topo, DefaultOptions(), testRand(1))
	require.Error(t, err)
}

func TestBatch_DenseMiniTopology(t *testing.T) {
	gen, err := New(miniTopology(), denseOptions(), testRand(1))
	require.NoError(t, err)

	samples, truncated := gen.Batch()
	require.False(t, truncated)

	// One node group: active connections + packet loss + 3 rates for eth0.
	require.Len(t, samples, 5)

	byMetric := map[string][]Sample{}
	for _, s := range samples {
		byMetric[s.Metric] = append(byMetric[s.Metric], s)
	}

	require.Len(t, byMetric[MetricActiveConnections], 1)
	require.Len(t, byMetric[MetricPacketLoss], 1)
	require.Len(t, byMetric[MetricTrafficRate5m], 1)
	require.Len(t, byMetric[MetricTrafficRate1h], 1)
	require.Len(t, byMetric[MetricTrafficRate1d], 1)

	conns := byMetric[MetricActiveConnections][0]
	assert.Equal(t, Labels{Tenant: "t1", Provider: "AWS", ConnectionType: "Direct", NodeType: "router", Node: "n1"}, conns.Labels)
	assert.GreaterOrEqual(t, conns.Value, 10.0)
	assert.LessOrEqual(t, conns.Value, 1000.0)

	loss := byMetric[MetricPacketLoss][0]
	assert.GreaterOrEqual(t, loss.Value, 0.0)
	assert.LessOrEqual(t, loss.Value, 2.5)

	rate5m := byMetric[MetricTrafficRate5m][0]
	assert.Equal(t, "eth0", rate5m.Labels.Interface)
	assert.GreaterOrEqual(t, rate5m.Value, 1e6)
	assert.LessOrEqual(t, rate5m.Value, 1e8)

	rate1h := byMetric[MetricTrafficRate1h][0].Value
	rate1d := byMetric[MetricTrafficRate1d][0].Value
	assert.GreaterOrEqual(t, rate1h, 0.8*rate5m.Value)
	assert.LessOrEqual(t, rate1h, 1.2*rate5m.Value)
	assert.GreaterOrEqual(t, rate1d, 0.9*rate1h)
	assert.LessOrEqual(t, rate1d, 1.1*rate1h)
}

func TestBatch_WindowCorrelationAcrossFullTopology(t *testing.T) {
	gen, err := New(DefaultTopology([]string{"acme", "globex"}), denseOptions(), testRand(21))
	require.NoError(t, err)

	samples, truncated := gen.Batch()
	require.False(t, truncated)
	require.NotEmpty(t, samples)

	rates := map[string]map[Labels]float64{
		MetricTrafficRate5m: {},
		MetricTrafficRate1h: {},
		MetricTrafficRate1d: {},
	}
	for _, s := range samples {
		if m, ok := rates[s.Metric]; ok {
			m[s.Labels] = s.Value
		}
	}

	require.NotEmpty(t, rates[MetricTrafficRate5m])
	for labels, rate5m := range rates[MetricTrafficRate5m] {
		rate1h, ok := rates[MetricTrafficRate1h][labels]
		require.True(t, ok, "missing 1h sample for %+v", labels)
		rate1d, ok := rates[MetricTrafficRate1d][labels]
		require.True(t, ok, "missing 1d sample for %+v", labels)

		assert.GreaterOrEqual(t, rate1h, 0.8*rate5m)
		assert.LessOrEqual(t, rate1h, 1.2*rate5m)
		assert.GreaterOrEqual(t, rate1d, 0.9*rate1h)
		assert.LessOrEqual(t, rate1d, 1.1*rate1h)
	}
}

func TestBatch_LabelsStayWithinConfiguredSets(t *testing.T) {
	topo := DefaultTopology([]string{"acme"})
	gen, err := New(topo, DefaultOptions(), testRand(8))
	require.NoError(t, err)

	providers := stringSet(topo.Providers)
	connTypes := stringSet(topo.ConnectionTypes)
	nodes := stringSet(topo.Nodes)

	for i := 0; i < 20; i++ {
		samples, _ := gen.Batch()
		for _, s := range samples {
			assert.Equal(t, "acme", s.Labels.Tenant)
			assert.True(t, providers[s.Labels.Provider])
			assert.True(t, connTypes[s.Labels.ConnectionType])
			assert.Equal(t, "router", s.Labels.NodeType)
			assert.True(t, nodes[s.Labels.Node])
			if s.Labels.Interface != "" {
				assert.Contains(t, topo.Interfaces[s.Labels.Provider][s.Labels.ConnectionType], s.Labels.Interface)
			}
		}
	}
}

func TestBatch_NodeLevelThinningKeepsGroupsWhole(t *testing.T) {
	// A retained node must emit its full group: both aux gauges and all
	// three windows for every interface of the combination.
	gen, err := New(DefaultTopology([]string{"acme"}), DefaultOptions(), testRand(13))
	require.NoError(t, err)

	samples, _ := gen.Batch()

	type combo struct {
		tenant, provider, connType, node string
	}
	groups := map[combo][]Sample{}
	for _, s := range samples {
		key := combo{s.Labels.Tenant, s.Labels.Provider, s.Labels.ConnectionType, s.Labels.Node}
		groups[key] = append(groups[key], s)
	}

	for key, group := range groups {
		// 2 aux + 3 windows x 3 interfaces.
		assert.Len(t, group, 11, "incomplete group for %+v", key)
	}
}

func TestBatch_FullSkipYieldsEmptyBatch(t *testing.T) {
	opts := Options{CombinationSkipProbability: 1.0}
	gen, err := New(miniTopology(), opts, testRand(2))
	require.NoError(t, err)

	samples, truncated := gen.Batch()
	assert.Empty(t, samples)
	assert.False(t, truncated)
}

func TestBatch_TruncatesAtSampleCap(t *testing.T) {
	opts := denseOptions()
	opts.MaxSamplesPerCycle = 20

	gen, err := New(DefaultTopology([]string{"acme"}), opts, testRand(4))
	require.NoError(t, err)

	samples, truncated := gen.Batch()
	assert.True(t, truncated)
	assert.LessOrEqual(t, len(samples), 20)
	assert.NotEmpty(t, samples)
}

func TestLoadTopologyFile(t *testing.T) {
	data := `
providers: ["AWS"]
connection_types: ["Direct"]
node_types: ["router"]
nodes: ["n1", "n2"]
interfaces:
  AWS:
    Direct: ["eth0", "eth1"]
`
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	topo, err := LoadTopologyFile(path, []string{"acme"})
	require.NoError(t, err)
	require.NoError(t, topo.Validate())

	assert.Equal(t, []string{"acme"}, topo.Tenants)
	assert.Equal(t, []string{"n1", "n2"}, topo.Nodes)
	assert.Equal(t, []string{"eth0", "eth1"}, topo.Interfaces["AWS"]["Direct"])
}

func TestLoadTopologyFile_Missing(t *testing.T) {
	_, err := LoadTopologyFile(filepath.Join(t.TempDir(), "absent.yaml"), []string{"acme"})
	require.Error(t, err)
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
