package collector

import (
	"github.com/prometheus/client_golang/prometheus"

	"idm_exporter/internal/mapper"
)

// MetricSet holds all Prometheus metric descriptors for the iDM exporter.
type MetricSet struct {
	// Values read from the device
	sensorValue *prometheus.Desc
	sensorState *prometheus.Desc

	// Device status
	up              *prometheus.Desc
	lastSuccessUnix *prometheus.Desc

	// Poll metrics
	cycles        prometheus.Counter
	cycleErrors   prometheus.Counter
	cycleDuration prometheus.Histogram
}

// newMetricSet creates all metric descriptors.
func newMetricSet(device string) *MetricSet {
	constLabels := prometheus.Labels{mapper.LabelDevice: device}

	return &MetricSet{
		sensorValue: prometheus.NewDesc(
			"idm_sensor_value",
			"Numeric value reported by the heat pump",
			[]string{mapper.LabelSensor, mapper.LabelUnit}, constLabels,
		),
		sensorState: prometheus.NewDesc(
			"idm_sensor_state",
			"Textual state reported by the heat pump (1 = current state)",
			[]string{mapper.LabelSensor, mapper.LabelState}, constLabels,
		),
		up: prometheus.NewDesc(
			"idm_up",
			"Whether the last poll cycle succeeded (1 = yes, 0 = no)",
			nil, constLabels,
		),
		lastSuccessUnix: prometheus.NewDesc(
			"idm_last_success_timestamp_seconds",
			"Unix timestamp of the last successful poll cycle",
			nil, constLabels,
		),

		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "idm_poll_cycles_total",
			Help:        "Total number of poll cycles",
			ConstLabels: constLabels,
		}),
		cycleErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "idm_poll_errors_total",
			Help:        "Total number of failed poll cycles",
			ConstLabels: constLabels,
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "idm_poll_duration_seconds",
			Help:        "Duration of poll cycles",
			ConstLabels: constLabels,
			Buckets:     []float64{0.5, 1, 2, 3, 5, 8, 13, 20},
		}),
	}
}
