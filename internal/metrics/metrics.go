package metrics

import (
	"cryptopulse-dashboard/internal/database"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
)

// DashboardMetrics tracks the lifetime activity of the refresh loop. The
// counters survive restarts via sqlite snapshots.
type DashboardMetrics struct {
	RefreshCycles   prometheus.Counter
	FetchFailures   prometheus.Counter
	FallbacksServed prometheus.Counter
	AlertsGenerated prometheus.Counter
	AssetsTracked   prometheus.Gauge
	AlertsPerAsset  *prometheus.CounterVec
}

var Default = NewDashboardMetrics()

func NewDashboardMetrics() *DashboardMetrics {
	m := &DashboardMetrics{
		RefreshCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cryptopulse",
			Subsystem: "dashboard",
			Name:      "refresh_cycles_total",
			Help:      "The total number of completed refresh cycles",
		}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cryptopulse",
			Subsystem: "dashboard",
			Name:      "fetch_failures_total",
			Help:      "The total number of failed market-data fetches",
		}),
		FallbacksServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cryptopulse",
			Subsystem: "dashboard",
			Name:      "fallbacks_served_total",
			Help:      "The total number of cycles that served the static fallback dataset",
		}),
		AlertsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cryptopulse",
			Subsystem: "dashboard",
			Name:      "alerts_generated_total",
			Help:      "The total number of derived price alerts",
		}),
		AssetsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cryptopulse",
			Subsystem: "dashboard",
			Name:      "assets_tracked",
			Help:      "The number of assets in the current snapshot",
		}),
		AlertsPerAsset: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cryptopulse",
				Subsystem: "dashboard",
				Name:      "alerts_per_asset",
				Help:      "The total number of alerts derived per asset",
			},
			[]string{"asset_id", "asset_name"},
		),
	}

	prometheus.MustRegister(m.RefreshCycles)
	prometheus.MustRegister(m.FetchFailures)
	prometheus.MustRegister(m.FallbacksServed)
	prometheus.MustRegister(m.AlertsGenerated)
	prometheus.MustRegister(m.AssetsTracked)
	prometheus.MustRegister(m.AlertsPerAsset)

	return m
}

// LoadFromDB restores counter values saved by a previous run.
func (m *DashboardMetrics) LoadFromDB() {
	refreshCycles, _ := database.GetMetric("refresh_cycles")
	fetchFailures, _ := database.GetMetric("fetch_failures")
	fallbacksServed, _ := database.GetMetric("fallbacks_served")
	alertsGenerated, _ := database.GetMetric("alerts_generated")

	m.RefreshCycles.Add(refreshCycles)
	m.FetchFailures.Add(fetchFailures)
	m.FallbacksServed.Add(fallbacksServed)
	m.AlertsGenerated.Add(alertsGenerated)

	perAsset, _ := database.GetMetricsWithLabels("alerts_per_asset")
	for assetID, names := range perAsset {
		for assetName, value := range names {
			m.AlertsPerAsset.WithLabelValues(assetID, assetName).Add(value)
		}
	}

	log.Debug("Metrics loaded from database.")
}

// SaveToDB snapshots the current counter values.
func (m *DashboardMetrics) SaveToDB() {
	database.SaveMetric("refresh_cycles", "", "", CollectorValue(m.RefreshCycles))
	database.SaveMetric("fetch_failures", "", "", CollectorValue(m.FetchFailures))
	database.SaveMetric("fallbacks_served", "", "", CollectorValue(m.FallbacksServed))
	database.SaveMetric("alerts_generated", "", "", CollectorValue(m.AlertsGenerated))

	metricChan := make(chan prometheus.Metric, 64)
	go func() {
		m.AlertsPerAsset.Collect(metricChan)
		close(metricChan)
	}()

	for metric := range metricChan {
		metricProto := &dto.Metric{}
		if err := metric.Write(metricProto); err != nil {
			log.Errorf("Failed to read alerts_per_asset metric: %v", err)
			continue
		}
		var assetID, assetName string
		for _, label := range metricProto.Label {
			if label.GetName() == "asset_id" {
				assetID = label.GetValue()
			}
			if label.GetName() == "asset_name" {
				assetName = label.GetValue()
			}
		}
		database.SaveMetricWithLabels("alerts_per_asset", assetID, assetName, metricProto.Counter.GetValue())
	}

	log.Debug("Metrics saved to database.")
}

// CollectorValue extracts the current value of a single counter or gauge.
func CollectorValue(metric prometheus.Collector) float64 {
	metricChan := make(chan prometheus.Metric, 1)
	metric.Collect(metricChan)
	close(metricChan)

	metricProto := &dto.Metric{}
	if err := (<-metricChan).Write(metricProto); err != nil {
		log.Errorf("Failed to read metric value: %v", err)
		return 0
	}

	if metricProto.Counter != nil {
		return metricProto.Counter.GetValue()
	}
	if metricProto.Gauge != nil {
		return metricProto.Gauge.GetValue()
	}
	return 0
}
