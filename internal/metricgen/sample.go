package metricgen

// Gauge metric names pushed each cycle. The traffic-rate names mirror
// the recording rules the downstream operational API queries.
const (
	MetricTrafficRate5m = "sum:cnstraffic_interface_rx_bytes:rate5m"
	MetricTrafficRate1h = "sum:cnstraffic_interface_rx_bytes:rate1h"
	MetricTrafficRate1d = "sum:cnstraffic_interface_rx_bytes:rate1d"

	MetricActiveConnections = "active_connections_total"
	MetricPacketLoss        = "packet_loss_rate_percent"
)

// Labels identifies one time series. Interface is empty for the
// node-granularity gauges (active connections, packet loss).
type Labels struct {
	Tenant         string
	Provider       string
	ConnectionType string
	Interface      string
	NodeType       string
	Node           string
}

// Sample is one (metric, label set, value) observation. Samples carry
// no identity beyond their labels; every cycle regenerates all values.
type Sample struct {
	Metric string
	Labels Labels
	Value  float64
}
