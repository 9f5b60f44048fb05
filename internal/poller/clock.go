package poller

import (
	"context"
	"time"

	"idm_exporter/internal/parser"
)

const (
	// larger drifts point at a misconfigured zone and are not corrected
	clockMaxCorrection = 35 * time.Minute
	clockTolerance     = 500 * time.Millisecond
	// the device applies a new time about this late
	clockSetOffset = 2 * time.Second
)

// clockCheckDue reports whether the clock check runs in this cycle. The check
// runs once while the local hour equals the check hour.
func (p *Poller) clockCheckDue() bool {
	if p.opts.ClockMaxDeviation <= 0 {
		return false
	}
	if p.now().In(p.loc).Hour() != p.opts.ClockCheckHour {
		p.state.ClockCheckedToday = false
		return false
	}
	return !p.state.ClockCheckedToday
}

// checkClock compares the device clock with the local clock and sets the
// device clock when it drifted too far. Failed requests are handled like any
// other cycle request.
func (p *Poller) checkClock(ctx context.Context) (bool, error) {
	p.state.ClockCheckedToday = true

	txt, err := p.client.GetInfo(ctx)
	if err != nil {
		return p.fetchFailed(ctx, "info", err)
	}
	local := p.now().In(p.loc)

	device, err := parser.DeviceTime(txt, p.loc)
	if err != nil {
		p.logger.Warn("Cannot read device time", "error", err)
		return false, nil
	}

	delta := local.Sub(device)
	if delta < 0 {
		delta = -delta
	}

	switch {
	case delta > clockMaxCorrection:
		p.logger.Warn("Device clock far off, not correcting it; check the device time zone",
			"device_time", device, "local_time", local, "delta", delta)
	case delta > p.opts.ClockMaxDeviation+clockTolerance:
		p.logger.Warn("Device clock drifted, setting it", "delta", delta, "max_deviation", p.opts.ClockMaxDeviation)
		p.setClock(ctx)
	default:
		p.logger.Info("Device clock within tolerance", "delta", delta)
	}
	return false, nil
}

func (p *Poller) setClock(ctx context.Context) {
	if err := p.sleep(ctx, requestPacing); err != nil {
		p.logger.Warn("No time left to set the device clock", "error", err)
		return
	}

	payload := parser.SetTimePayload(p.state.Settings.Catalog, p.now().In(p.loc).Add(clockSetOffset))
	txt, err := p.client.SetTime(ctx, payload)
	if err != nil {
		p.logger.Warn("Setting device clock failed", "error", err)
		return
	}
	if !parser.SetTimeAccepted(txt) {
		p.logger.Warn("Device did not accept the new time", "response", truncate(txt, 200))
		return
	}
	p.logger.Info("Device clock set", "payload", payload)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
