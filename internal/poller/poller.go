// Package poller sequences the requests of one poll cycle against the heat
// pump and keeps the state that carries over between cycles.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"idm_exporter/internal/api"
	"idm_exporter/internal/auth"
	"idm_exporter/internal/catalog"
	"idm_exporter/internal/parser"
	"idm_exporter/internal/types"
)

const (
	// pause between two requests of the same cycle; the device web server is slow
	requestPacing = 400 * time.Millisecond

	csrfBackoff      = time.Second
	transportBackoff = 10 * time.Second

	// added to the request timeout to bound a whole cycle
	cycleSlack = 5 * time.Second
)

// ErrCycleTimeout is returned when a cycle does not finish within its deadline.
var ErrCycleTimeout = errors.New("poll cycle timed out")

// Options configures the cycle policies.
type Options struct {
	// Timeout is the per request timeout. A cycle may take Timeout plus a fixed slack.
	Timeout time.Duration
	// CycleTime is the interval of Run.
	CycleTime time.Duration
	// StatDivisor enables the statistics rotation when >= 3.
	StatDivisor uint64
	// ClockMaxDeviation enables the clock check when non-zero.
	ClockMaxDeviation time.Duration
	// ClockCheckHour is the local hour the clock check runs in.
	ClockCheckHour int
}

// PollState is the state carried from one cycle to the next.
type PollState struct {
	Counter           uint64
	HeatSeen          bool
	ClockCheckedToday bool
	Settings          parser.SettingsState

	// PendingRelogin is set after a failed request until a login succeeds.
	PendingRelogin bool
	// reloginAfter delays a pending login until the transport backoff elapsed.
	reloginAfter time.Time
}

// Cycle is the outcome of one poll cycle.
type Cycle struct {
	Values   types.Values
	Started  time.Time
	Duration time.Duration
	Err      error
	// Dropped is set when the device could not be reached and the cycle was
	// abandoned or skipped for the transport backoff.
	Dropped bool
	// Catalog is the catalog the settings page was read with.
	Catalog *catalog.Catalog
}

// Poller runs poll cycles against one device. Cycles are serialized.
type Poller struct {
	session *auth.Session
	client  *api.APIClient
	parser  *parser.Parser
	opts    Options
	logger  *slog.Logger

	mu    sync.Mutex
	state PollState

	// replaceable in tests
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
	loc   *time.Location
	slack time.Duration
}

// New creates a poller. initial is the catalog state to start from.
func New(session *auth.Session, client *api.APIClient, p *parser.Parser, initial parser.SettingsState, opts Options, logger *slog.Logger) *Poller {
	return &Poller{
		session: session,
		client:  client,
		parser:  p,
		opts:    opts,
		logger:  logger,
		state:   PollState{Settings: initial},
		sleep:   sleepContext,
		now:     time.Now,
		loc:     time.Local,
		slack:   cycleSlack,
	}
}

// State returns a copy of the current poll state.
func (p *Poller) State() PollState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Login logs in to the device. A failed login is retried at the start of the next cycle.
func (p *Poller) Login(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.login(ctx)
}

func (p *Poller) login(ctx context.Context) error {
	if err := p.session.Login(ctx); err != nil {
		p.state.PendingRelogin = true
		return err
	}
	p.state.PendingRelogin = false
	p.state.reloginAfter = time.Time{}
	return nil
}

// FetchCycle runs one poll cycle and returns the values read. Missing values
// and failed requests reduce the result; only a failed login and a cycle
// timeout are returned as errors.
func (p *Poller) FetchCycle(ctx context.Context) (types.Values, error) {
	vals, _, err := p.fetchCycle(ctx)
	return vals, err
}

// Poll runs one poll cycle and reports its outcome, including whether the
// cycle was dropped without reaching the device.
func (p *Poller) Poll(ctx context.Context) Cycle {
	start := time.Now()
	vals, dropped, err := p.fetchCycle(ctx)
	return Cycle{
		Values:   vals,
		Started:  start,
		Duration: time.Since(start),
		Err:      err,
		Dropped:  dropped,
		Catalog:  p.State().Settings.Catalog,
	}
}

func (p *Poller) fetchCycle(ctx context.Context) (types.Values, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout+p.slack)
	defer cancel()

	if p.state.PendingRelogin {
		if p.now().Before(p.state.reloginAfter) {
			p.logger.Debug("Waiting for backoff before logging in again", "until", p.state.reloginAfter)
			return nil, true, nil
		}
		p.logger.Info("Logging in before cycle")
		if err := p.login(ctx); err != nil {
			return nil, false, fmt.Errorf("login: %w", err)
		}
	}

	counter := p.state.Counter
	p.state.Counter++

	var vals types.Values

	txt, err := p.client.GetSettings(ctx)
	if err != nil {
		if drop, err := p.fetchFailed(ctx, "settings", err); drop || err != nil {
			return nil, err == nil, err
		}
	} else {
		sv, st, _ := p.parser.Settings(txt, p.state.Settings)
		p.state.Settings = st
		vals.Append(sv)
	}

	if err := p.sleep(ctx, requestPacing); err != nil {
		return nil, false, p.timedOut(err)
	}

	txt, err = p.client.GetHeatpump(ctx)
	if err != nil {
		if drop, err := p.fetchFailed(ctx, "heatpump", err); drop || err != nil {
			return nil, err == nil, err
		}
	} else {
		hv, seen := p.parser.Heatpump(txt, p.state.HeatSeen)
		p.state.HeatSeen = seen
		vals.Append(hv)
	}

	if stat, ok := statisticsFor(counter, p.opts.StatDivisor); ok {
		if err := p.sleep(ctx, requestPacing); err != nil {
			return nil, false, p.timedOut(err)
		}
		txt, err := p.client.GetStatistics(ctx, stat.typ)
		if err != nil {
			if drop, err := p.fetchFailed(ctx, "statistics", err); drop || err != nil {
				return nil, err == nil, err
			}
		} else {
			vals.Append(p.parser.Statistics(txt, p.state.Settings.Catalog, stat.prefix, p.now().In(p.loc).Year()))
		}
	}

	if p.clockCheckDue() {
		if err := p.sleep(ctx, requestPacing); err != nil {
			return nil, false, p.timedOut(err)
		}
		if drop, err := p.checkClock(ctx); drop || err != nil {
			return nil, err == nil, err
		}
	}

	if ctx.Err() != nil {
		return nil, false, p.timedOut(ctx.Err())
	}
	return vals, false, nil
}

// fetchFailed handles a failed request. It reports whether the rest of the
// cycle is dropped, and returns an error only when the cycle ran out of time.
func (p *Poller) fetchFailed(ctx context.Context, endpoint string, err error) (bool, error) {
	if ctx.Err() != nil {
		return true, p.timedOut(ctx.Err())
	}

	switch {
	case errors.Is(err, api.ErrCSRFInvalid):
		p.logger.Warn("CSRF token rejected, logging in again", "endpoint", endpoint)
		p.state.PendingRelogin = true
		if err := p.sleep(ctx, csrfBackoff); err != nil {
			return true, p.timedOut(err)
		}
		if err := p.login(ctx); err != nil {
			p.logger.Warn("Login after CSRF rejection failed", "error", err)
		}
		return false, nil

	case errors.Is(err, api.ErrTransport):
		p.logger.Warn("Device request failed, backing off", "endpoint", endpoint, "backoff", transportBackoff, "error", err)
		p.state.PendingRelogin = true
		p.state.reloginAfter = p.now().Add(transportBackoff)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < transportBackoff {
			p.logger.Debug("Backoff outlasts cycle, login deferred to next cycle")
			return true, nil
		}
		if err := p.sleep(ctx, transportBackoff); err != nil {
			return true, nil
		}
		// best effort, a failure keeps the login pending
		_ = p.login(ctx)
		return true, nil
	}

	p.logger.Warn("Request failed", "endpoint", endpoint, "error", err)
	return false, nil
}

func (p *Poller) timedOut(err error) error {
	return fmt.Errorf("%w after %s: %v", ErrCycleTimeout, p.opts.Timeout+p.slack, err)
}

// Run logs in and then runs a cycle every CycleTime until ctx is done. Each
// finished cycle is passed to record.
func (p *Poller) Run(ctx context.Context, record func(Cycle)) {
	if err := p.Login(ctx); err != nil {
		p.logger.Error("Initial login failed, retrying with the next cycle", "error", err)
	}

	ticker := time.NewTicker(p.opts.CycleTime)
	defer ticker.Stop()

	for {
		c := p.Poll(ctx)

		switch {
		case c.Err != nil:
			p.logger.Error("Poll cycle failed", "error", c.Err, "duration", c.Duration)
		case c.Dropped:
			p.logger.Warn("Poll cycle dropped, device not reachable", "duration", c.Duration)
		case len(c.Values) == 0:
			p.logger.Warn("Poll cycle returned no values", "duration", c.Duration)
		default:
			p.logger.Debug("Poll cycle finished", "values", len(c.Values), "duration", c.Duration)
		}
		if record != nil {
			record(c)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
