package collector

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"idm_exporter/internal/api"
	"idm_exporter/internal/auth"
	"idm_exporter/internal/catalog"
	"idm_exporter/internal/parser"
	"idm_exporter/internal/poller"
	"idm_exporter/internal/types"
)

func newTestCollector() *IDMCollector {
	return NewIDMCollector("iDMwb", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func cycleOf(pairs ...string) poller.Cycle {
	var vals types.Values
	for i := 0; i+1 < len(pairs); i += 2 {
		vals.Add(pairs[i], pairs[i+1])
	}
	return poller.Cycle{
		Values:   vals,
		Started:  time.Unix(1760000000, 0),
		Duration: 2 * time.Second,
		Catalog:  catalog.English,
	}
}

func TestCollectValues(t *testing.T) {
	c := newTestCollector()
	c.Record(cycleOf(
		"B32", "5.2",
		"external_request", "on",
		"system_mode", "heating",
	))

	expected := `
# HELP idm_sensor_state Textual state reported by the heat pump (1 = current state)
# TYPE idm_sensor_state gauge
idm_sensor_state{device="iDMwb",sensor="external_request",state="off"} 0
idm_sensor_state{device="iDMwb",sensor="external_request",state="on"} 1
idm_sensor_state{device="iDMwb",sensor="system_mode",state="cooling"} 0
idm_sensor_state{device="iDMwb",sensor="system_mode",state="defrost"} 0
idm_sensor_state{device="iDMwb",sensor="system_mode",state="heating"} 1
idm_sensor_state{device="iDMwb",sensor="system_mode",state="hotwater"} 0
idm_sensor_state{device="iDMwb",sensor="system_mode",state="off"} 0
# HELP idm_sensor_value Numeric value reported by the heat pump
# TYPE idm_sensor_value gauge
idm_sensor_value{device="iDMwb",sensor="B32",unit="celsius"} 5.2
idm_sensor_value{device="iDMwb",sensor="external_request",unit=""} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "idm_sensor_value", "idm_sensor_state"); err != nil {
		t.Error(err)
	}
}

func TestCollectUnknownState(t *testing.T) {
	c := newTestCollector()
	c.Record(cycleOf("software_version", "1.2.3"))

	expected := `
# HELP idm_sensor_state Textual state reported by the heat pump (1 = current state)
# TYPE idm_sensor_state gauge
idm_sensor_state{device="iDMwb",sensor="software_version",state="1.2.3"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "idm_sensor_state"); err != nil {
		t.Error(err)
	}
	if n := testutil.CollectAndCount(c, "idm_sensor_value"); n != 0 {
		t.Errorf("idm_sensor_value series = %d, want 0", n)
	}
}

func TestRecordMergesCycles(t *testing.T) {
	c := newTestCollector()
	c.Record(cycleOf("B32", "5.2", "stat_runtime_total_heating", "1200"))
	c.Record(cycleOf("B32", "6.0"))

	expected := `
# HELP idm_sensor_value Numeric value reported by the heat pump
# TYPE idm_sensor_value gauge
idm_sensor_value{device="iDMwb",sensor="B32",unit="celsius"} 6
idm_sensor_value{device="iDMwb",sensor="stat_runtime_total_heating",unit="hours"} 1200
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "idm_sensor_value"); err != nil {
		t.Error(err)
	}

	latest := c.Latest()
	if len(latest) != 1 || latest[0] != (types.ResponseValue{Key: "B32", Value: "6.0"}) {
		t.Errorf("Latest() = %v", latest)
	}
}

func TestRecordFailedCycle(t *testing.T) {
	c := newTestCollector()
	c.Record(cycleOf("B32", "5.2"))
	c.Record(poller.Cycle{Err: errors.New("poll cycle timed out"), Duration: 8 * time.Second})

	expected := `
# HELP idm_poll_cycles_total Total number of poll cycles
# TYPE idm_poll_cycles_total counter
idm_poll_cycles_total{device="iDMwb"} 2
# HELP idm_poll_errors_total Total number of failed poll cycles
# TYPE idm_poll_errors_total counter
idm_poll_errors_total{device="iDMwb"} 1
# HELP idm_up Whether the last poll cycle succeeded (1 = yes, 0 = no)
# TYPE idm_up gauge
idm_up{device="iDMwb"} 0
# HELP idm_last_success_timestamp_seconds Unix timestamp of the last successful poll cycle
# TYPE idm_last_success_timestamp_seconds gauge
idm_last_success_timestamp_seconds{device="iDMwb"} 1.760000002e+09
`
	names := []string{"idm_poll_cycles_total", "idm_poll_errors_total", "idm_up", "idm_last_success_timestamp_seconds"}
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), names...); err != nil {
		t.Error(err)
	}

	// the last good values stay exposed
	if n := testutil.CollectAndCount(c, "idm_sensor_value"); n != 1 {
		t.Errorf("idm_sensor_value series = %d, want 1", n)
	}
}

func TestRecordUnreachableDevice(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	session := auth.NewSession(srv.URL, "4444", 100*time.Millisecond, logger)
	p := poller.New(session, api.NewAPIClient(session, logger), parser.New(logger),
		parser.SettingsState{Catalog: catalog.English}, poller.Options{Timeout: 100 * time.Millisecond}, logger)

	c := newTestCollector()
	// the second cycle falls into the transport backoff
	c.Record(p.Poll(context.Background()))
	c.Record(p.Poll(context.Background()))

	expected := `
# HELP idm_poll_errors_total Total number of failed poll cycles
# TYPE idm_poll_errors_total counter
idm_poll_errors_total{device="iDMwb"} 2
# HELP idm_up Whether the last poll cycle succeeded (1 = yes, 0 = no)
# TYPE idm_up gauge
idm_up{device="iDMwb"} 0
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "idm_poll_errors_total", "idm_up"); err != nil {
		t.Error(err)
	}
	if n := testutil.CollectAndCount(c, "idm_last_success_timestamp_seconds"); n != 0 {
		t.Errorf("last success reported for an unreachable device")
	}
}

func TestCollectBeforeFirstCycle(t *testing.T) {
	c := newTestCollector()

	if n := testutil.CollectAndCount(c, "idm_last_success_timestamp_seconds"); n != 0 {
		t.Errorf("last success reported before any cycle")
	}
	if n := testutil.CollectAndCount(c, "idm_up"); n != 1 {
		t.Errorf("idm_up series = %d, want 1", n)
	}
	if n := testutil.CollectAndCount(c, "idm_poll_duration_seconds"); n != 1 {
		t.Errorf("idm_poll_duration_seconds series = %d, want 1", n)
	}
}
