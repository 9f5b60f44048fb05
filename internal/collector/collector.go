// Package collector implements the Prometheus collector interface for iDM heat pumps.
package collector

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"idm_exporter/internal/catalog"
	"idm_exporter/internal/mapper"
	"idm_exporter/internal/poller"
	"idm_exporter/internal/types"
)

const defaultDevice = "iDMwb"

// IDMCollector implements prometheus.Collector over the results of the poll loop.
//
// Values are merged across cycles, so statistics that are only fetched every
// few cycles stay exposed in between.
type IDMCollector struct {
	logger  *slog.Logger
	metrics *MetricSet

	mu          sync.RWMutex
	catalog     *catalog.Catalog
	values      map[string]string
	last        types.Values
	up          bool
	lastSuccess time.Time
}

// NewIDMCollector creates a collector for the device named device.
func NewIDMCollector(device string, logger *slog.Logger) *IDMCollector {
	return &IDMCollector{
		logger:  logger,
		metrics: newMetricSet(mapper.Safe(device, defaultDevice)),
		catalog: catalog.English,
		values:  make(map[string]string),
	}
}

// Record stores the outcome of a poll cycle. It is the poller's record callback.
func (c *IDMCollector) Record(cycle poller.Cycle) {
	c.metrics.cycles.Inc()
	c.metrics.cycleDuration.Observe(cycle.Duration.Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()

	// a dropped cycle never reached the device
	if cycle.Err != nil || cycle.Dropped {
		c.metrics.cycleErrors.Inc()
		c.up = false
		return
	}

	c.up = true
	c.lastSuccess = cycle.Started.Add(cycle.Duration)
	if cycle.Catalog != nil {
		c.catalog = cycle.Catalog
	}
	if len(cycle.Values) == 0 {
		return
	}
	c.logger.Debug("Recording cycle", "values", len(cycle.Values), "catalog", c.catalog.Language)
	c.last = append(types.Values(nil), cycle.Values...)
	for k, v := range cycle.Values.Latest() {
		c.values[k] = v
	}
}

// Latest returns the values of the last cycle that produced any.
func (c *IDMCollector) Latest() types.Values {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(types.Values(nil), c.last...)
}

// Describe implements prometheus.Collector.
func (c *IDMCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.metrics.sensorValue
	ch <- c.metrics.sensorState
	ch <- c.metrics.up
	ch <- c.metrics.lastSuccessUnix

	c.metrics.cycles.Describe(ch)
	c.metrics.cycleErrors.Describe(ch)
	c.metrics.cycleDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
// It exposes the stored values; Prometheus scrapes never reach the device.
func (c *IDMCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	up := 0.0
	if c.up {
		up = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.metrics.up, prometheus.GaugeValue, up)
	if !c.lastSuccess.IsZero() {
		ch <- prometheus.MustNewConstMetric(c.metrics.lastSuccessUnix, prometheus.GaugeValue, float64(c.lastSuccess.Unix()))
	}

	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.emitValue(ch, mapper.Convert(c.catalog, k, c.values[k]))
	}

	c.metrics.cycles.Collect(ch)
	c.metrics.cycleErrors.Collect(ch)
	c.metrics.cycleDuration.Collect(ch)
}

// emitValue emits a value as a gauge when it is numeric and as a one-hot state
// set when it is text.
func (c *IDMCollector) emitValue(ch chan<- prometheus.Metric, v mapper.Value) {
	if v.Numeric {
		ch <- prometheus.MustNewConstMetric(c.metrics.sensorValue, prometheus.GaugeValue, v.Number, v.Key, string(v.Unit))
	}
	if v.State == "" {
		return
	}

	states := v.States
	if !contains(states, v.State) {
		// unknown to the decode tables, e.g. a raw hcmode digit
		states = append(append([]string(nil), states...), v.State)
	}
	for _, s := range states {
		value := 0.0
		if s == v.State {
			value = 1.0
		}
		ch <- prometheus.MustNewConstMetric(c.metrics.sensorState, prometheus.GaugeValue, value, v.Key, s)
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
