package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on the metrics listener. Besides the
// runtime collectors it carries a constant liftlog_version_info gauge labelled with
// the running version, plus any extra collectors (pgxpool stats, for example).
func SetupPrometheus(versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	versionGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "liftlog",
		Name:        "version_info",
		Help:        "Always 1, labelled with the running backend version",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	versionGauge.Set(1)
	promRegistry.MustRegister(versionGauge)

	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}
