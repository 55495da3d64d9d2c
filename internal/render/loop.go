// Package render drives the static and streaming table output of the CLI.
package render

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/accelstack/tpu-info/internal/device"
	"github.com/accelstack/tpu-info/internal/libtpu"
	"github.com/accelstack/tpu-info/internal/snapshot"
)

// MetricsClient is the slice of the libtpu client the loop depends on.
type MetricsClient interface {
	Probe(ctx context.Context) libtpu.Compatibility
	State() libtpu.Compatibility
	GetMetric(ctx context.Context, wireName string) ([]libtpu.Sample, error)
	RuntimeVersion() string
	Addr() string
	Close() error
}

// Options configures a Loop.
type Options struct {
	// Metrics selects the tables to render, in order.
	Metrics []snapshot.MetricID
	// IncludeChips prepends the device inventory table.
	IncludeChips bool
	// IncludeProcess prepends the per-device process table.
	IncludeProcess bool
}

// Loop re-enumerates devices, polls metrics, rebuilds the snapshot and
// hands it to the display, either once or on a fixed cadence. It owns the
// client connection and closes it when the loop ends.
type Loop struct {
	logger  zerolog.Logger
	enum    *device.Enumerator
	client  MetricsClient
	display Display
	opts    Options

	unavailableNoted bool
}

// NewLoop creates a render loop.
func NewLoop(logger zerolog.Logger, enum *device.Enumerator, client MetricsClient, display Display, opts Options) *Loop {
	if len(opts.Metrics) == 0 {
		opts.Metrics = snapshot.DefaultMetrics
	}
	return &Loop{
		logger:  logger,
		enum:    enum,
		client:  client,
		display: display,
		opts:    opts,
	}
}

// init runs the one-time startup sequence: one enumeration to confirm there
// is something to show, and the version probe that decides the
// compatibility state for every later metric call. An empty device list is
// fatal here, nothing else is.
func (l *Loop) init(ctx context.Context) error {
	if _, err := l.enum.Enumerate(); err != nil {
		return err
	}

	state := l.client.Probe(ctx)
	switch state {
	case libtpu.Compatible:
		l.display.Notef("Connected to libtpu at grpc://%s...", l.client.Addr())
	default:
		l.noteUnavailable()
	}
	return nil
}

// RunOnce performs a single render pass and returns.
func (l *Loop) RunOnce(ctx context.Context) error {
	defer l.client.Close()
	if err := l.init(ctx); err != nil {
		return err
	}
	return l.tick(ctx)
}

// Stream renders on a fixed cadence until ctx is cancelled. The inter-tick
// sleep is rate minus the time the tick took, so the observed cadence stays
// at the configured rate instead of drifting by the processing cost.
// Cancellation is the only graceful way out; losing the device list is the
// only error that ends the session.
func (l *Loop) Stream(ctx context.Context, rate time.Duration) error {
	defer l.client.Close()
	if err := l.init(ctx); err != nil {
		return err
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		start := time.Now()
		l.display.Clear()
		if err := l.tick(ctx); err != nil {
			return err
		}

		sleep := rate - time.Since(start)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)

		select {
		case <-ctx.Done():
			l.logger.Debug().Msg("Streaming cancelled")
			return nil
		case <-timer.C:
		}
	}
}

// tick is one full render pass: re-enumerate, poll, rebuild, display.
func (l *Loop) tick(ctx context.Context) error {
	devices, err := l.enum.Enumerate()
	if err != nil {
		return err
	}

	samples := l.collect(ctx)
	snap, err := snapshot.Build(devices, samples, l.opts.Metrics)
	if err != nil {
		return err
	}

	tables := make([]snapshot.Table, 0, len(snap.Tables)+2)
	if l.opts.IncludeChips {
		tables = append(tables, snapshot.ChipsTable(devices))
	}
	if l.opts.IncludeProcess {
		tables = append(tables, snapshot.ProcessTable(devices))
	}
	tables = append(tables, snap.Tables...)
	l.display.Render(tables...)
	return nil
}

// collect polls every wire metric the requested tables need, once each. A
// failed metric leaves its entry absent so the snapshot renders the N/A
// sentinel; per-metric failures never end the session.
func (l *Loop) collect(ctx context.Context) map[string][]libtpu.Sample {
	samples := make(map[string][]libtpu.Sample)
	if l.client.State() != libtpu.Compatible {
		return samples
	}

	for _, id := range l.opts.Metrics {
		entry, err := snapshot.Lookup(string(id))
		if err != nil {
			// Metric IDs are validated before the loop starts.
			continue
		}
		for _, wire := range entry.Wire {
			if _, ok := samples[wire]; ok {
				continue
			}
			got, err := l.client.GetMetric(ctx, wire)
			if err != nil {
				if errors.Is(err, libtpu.ErrUnavailable) {
					l.noteUnavailable()
				} else if !errors.Is(err, libtpu.ErrMetricUnavailable) {
					l.logger.Warn().Err(err).Str("metric", wire).Msg("Metric poll failed")
				}
				continue
			}
			samples[wire] = got
		}
	}
	return samples
}

// noteUnavailable prints the service-unavailable hint a single time, not on
// every tick.
func (l *Loop) noteUnavailable() {
	if l.unavailableNoted {
		return
	}
	l.unavailableNoted = true
	l.display.Notef("Libtpu metrics unavailable. Is there a framework using the TPU?")
}
