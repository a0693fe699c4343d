package hiduart

import "github.com/prometheus/client_golang/prometheus"

// StatsCollector exposes a session's Stats as Prometheus metrics. It is a
// plain prometheus.Collector so applications register it in a registry of
// their choosing; the package registers nothing globally.
//
//	reg.MustRegister(hiduart.NewStatsCollector(bridge.Stats()))
type StatsCollector struct {
	stats *Stats

	bytesWritten    *prometheus.Desc
	bytesRead       *prometheus.Desc
	framesSent      *prometheus.Desc
	framesReceived  *prometheus.Desc
	featureSent     *prometheus.Desc
	featureFetched  *prometheus.Desc
	writeTimeouts   *prometheus.Desc
	transportErrors *prometheus.Desc
	protocolErrors  *prometheus.Desc
}

// NewStatsCollector builds a collector over the given Stats.
func NewStatsCollector(stats *Stats) *StatsCollector {
	return &StatsCollector{
		stats: stats,
		bytesWritten: prometheus.NewDesc("hiduart_tx_bytes_total",
			"Total payload bytes accepted by Write.", nil, nil),
		bytesRead: prometheus.NewDesc("hiduart_rx_bytes_total",
			"Total payload bytes delivered by Read.", nil, nil),
		framesSent: prometheus.NewDesc("hiduart_tx_frames_total",
			"Total output reports transmitted.", nil, nil),
		framesReceived: prometheus.NewDesc("hiduart_rx_frames_total",
			"Total input reports parsed.", nil, nil),
		featureSent: prometheus.NewDesc("hiduart_feature_reports_sent_total",
			"Total feature reports sent (config, enable, purge).", nil, nil),
		featureFetched: prometheus.NewDesc("hiduart_feature_reports_fetched_total",
			"Total feature reports fetched (device queries).", nil, nil),
		writeTimeouts: prometheus.NewDesc("hiduart_write_timeouts_total",
			"Total Write calls cut short by the write timeout.", nil, nil),
		transportErrors: prometheus.NewDesc("hiduart_transport_errors_total",
			"Total failures reported by the HID transport.", nil, nil),
		protocolErrors: prometheus.NewDesc("hiduart_protocol_errors_total",
			"Total malformed reports received from the device.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesWritten
	ch <- c.bytesRead
	ch <- c.framesSent
	ch <- c.framesReceived
	ch <- c.featureSent
	ch <- c.featureFetched
	ch <- c.writeTimeouts
	ch <- c.transportErrors
	ch <- c.protocolErrors
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.Snap()
	counter := func(desc *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v))
	}
	counter(c.bytesWritten, snap.BytesWritten)
	counter(c.bytesRead, snap.BytesRead)
	counter(c.framesSent, snap.FramesSent)
	counter(c.framesReceived, snap.FramesReceived)
	counter(c.featureSent, snap.FeatureSent)
	counter(c.featureFetched, snap.FeatureFetched)
	counter(c.writeTimeouts, snap.WriteTimeouts)
	counter(c.transportErrors, snap.TransportErrors)
	counter(c.protocolErrors, snap.ProtocolErrors)
}
