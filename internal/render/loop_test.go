package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelstack/tpu-info/internal/device"
	"github.com/accelstack/tpu-info/internal/libtpu"
	"github.com/accelstack/tpu-info/internal/snapshot"
)

// fakeClient is a canned MetricsClient.
type fakeClient struct {
	mu      sync.Mutex
	state   libtpu.Compatibility
	samples map[string][]libtpu.Sample
	calls   map[string]int
	closed  bool
}

func newFakeClient(state libtpu.Compatibility, samples map[string][]libtpu.Sample) *fakeClient {
	return &fakeClient{state: state, samples: samples, calls: make(map[string]int)}
}

func (f *fakeClient) Probe(ctx context.Context) libtpu.Compatibility { return f.state }
func (f *fakeClient) State() libtpu.Compatibility                    { return f.state }
func (f *fakeClient) RuntimeVersion() string                         { return "libtpu-test" }
func (f *fakeClient) Addr() string                                   { return "localhost:8431" }

func (f *fakeClient) GetMetric(ctx context.Context, wireName string) ([]libtpu.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[wireName]++
	got, ok := f.samples[wireName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", libtpu.ErrMetricUnavailable, wireName)
	}
	return got, nil
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeClient) metricCalls(wireName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[wireName]
}

// fakeDisplay records every render pass.
type fakeDisplay struct {
	mu      sync.Mutex
	renders [][]snapshot.Table
	notes   []string
	clears  int
}

func (d *fakeDisplay) Render(tables ...snapshot.Table) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renders = append(d.renders, tables)
}

func (d *fakeDisplay) Notef(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notes = append(d.notes, fmt.Sprintf(format, args...))
}

func (d *fakeDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
}

func (d *fakeDisplay) renderCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.renders)
}

func (d *fakeDisplay) lastRender() []snapshot.Table {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.renders) == 0 {
		return nil
	}
	return d.renders[len(d.renders)-1]
}

// fixtureEnumerator builds an Enumerator backed by a synthetic PCI tree with
// the given number of v4 chips.
func fixtureEnumerator(t *testing.T, chips int) *device.Enumerator {
	t.Helper()
	sysfs := t.TempDir()
	for i := 0; i < chips; i++ {
		dir := filepath.Join(sysfs, fmt.Sprintf("0000:00:0%d.0", i+1))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor"), []byte("0x1ae0\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "device"), []byte("0x005e\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "subsystem_device"), []byte("0x0000\n"), 0o644))
	}
	return &device.Enumerator{SysfsPCIRoot: sysfs, ProcRoot: t.TempDir(), DevRoot: t.TempDir()}
}

func defaultSamples() map[string][]libtpu.Sample {
	return map[string][]libtpu.Sample{
		libtpu.WireMemoryUsage:  {{DeviceID: 0, AsInt: 1 << 30}, {DeviceID: 1, AsInt: 2 << 30}},
		libtpu.WireTotalMemory:  {{DeviceID: 0, AsInt: 32 << 30}, {DeviceID: 1, AsInt: 32 << 30}},
		libtpu.WireDutyCyclePct: {{DeviceID: 0, AsDouble: 10}, {DeviceID: 1, AsDouble: 20}},
	}
}

func TestRunOnceDefaultView(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 2), client, display, Options{
		IncludeChips: true,
	})

	require.NoError(t, loop.RunOnce(context.Background()))

	require.Equal(t, 1, display.renderCount())
	tables := display.lastRender()
	require.Len(t, tables, 3)
	assert.Equal(t, "TPU Chips", tables[0].Title)
	assert.Equal(t, "TPU HBM Usage", tables[1].Title)
	assert.Equal(t, "TPU Duty Cycle", tables[2].Title)

	assert.True(t, client.closed)
	require.NotEmpty(t, display.notes)
	assert.Contains(t, display.notes[0], "Connected to libtpu at grpc://localhost:8431")
}

func TestRunOnceMetricFilter(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{
		Metrics: []snapshot.MetricID{snapshot.DutyCyclePercent, snapshot.HBMUsage},
	})

	require.NoError(t, loop.RunOnce(context.Background()))

	tables := display.lastRender()
	require.Len(t, tables, 2)
	assert.Equal(t, "TPU Duty Cycle", tables[0].Title)
	assert.Equal(t, "TPU HBM Usage", tables[1].Title)
}

func TestRunOnceProcessTable(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{
		IncludeProcess: true,
	})

	require.NoError(t, loop.RunOnce(context.Background()))

	tables := display.lastRender()
	require.NotEmpty(t, tables)
	assert.Equal(t, "TPU Processes", tables[0].Title)
}

func TestRunOnceNoDevices(t *testing.T) {
	enum := &device.Enumerator{
		SysfsPCIRoot: t.TempDir(),
		ProcRoot:     t.TempDir(),
		DevRoot:      t.TempDir(),
	}
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	loop := NewLoop(zerolog.Nop(), enum, client, &fakeDisplay{}, Options{})

	err := loop.RunOnce(context.Background())
	assert.ErrorIs(t, err, device.ErrNoDevices)
	assert.True(t, client.closed)
}

func TestRunOnceDegradedSkipsMetricCalls(t *testing.T) {
	client := newFakeClient(libtpu.ServiceUnavailable, nil)
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 2), client, display, Options{})

	require.NoError(t, loop.RunOnce(context.Background()))

	// No round trips in the degraded state, and every cell shows N/A.
	assert.Zero(t, client.metricCalls(libtpu.WireMemoryUsage))
	tables := display.lastRender()
	require.NotEmpty(t, tables)
	for _, row := range tables[0].Rows {
		assert.Equal(t, snapshot.NA, row[1])
	}
	require.Len(t, display.notes, 1)
	assert.Contains(t, display.notes[0], "Libtpu metrics unavailable")
}

func TestRunOnceMissingMetricLeavesNA(t *testing.T) {
	samples := defaultSamples()
	delete(samples, libtpu.WireDutyCyclePct)
	client := newFakeClient(libtpu.Compatible, samples)
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{})

	require.NoError(t, loop.RunOnce(context.Background()))

	tables := display.lastRender()
	require.Len(t, tables, 2)
	assert.Equal(t, "1.00 GiB / 32.00 GiB", tables[0].Rows[0][1])
	assert.Equal(t, snapshot.NA, tables[1].Rows[0][1])
}

func TestStreamCancellation(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 175*time.Millisecond)
	defer cancel()

	require.NoError(t, loop.Stream(ctx, 50*time.Millisecond))

	// One immediate pass plus roughly one per rate interval until cancel.
	renders := display.renderCount()
	assert.GreaterOrEqual(t, renders, 2)
	assert.LessOrEqual(t, renders, 6)
	assert.Equal(t, renders, func() int {
		display.mu.Lock()
		defer display.mu.Unlock()
		return display.clears
	}())
	assert.True(t, client.closed)
}

// slowDisplay records when each render pass starts, then burns a fixed
// amount of time to simulate per-tick processing cost.
type slowDisplay struct {
	mu     sync.Mutex
	delay  time.Duration
	starts []time.Time
}

func (d *slowDisplay) Render(tables ...snapshot.Table) {
	d.mu.Lock()
	d.starts = append(d.starts, time.Now())
	d.mu.Unlock()
	time.Sleep(d.delay)
}

func (d *slowDisplay) Notef(format string, args ...any) {}
func (d *slowDisplay) Clear()                           {}

func (d *slowDisplay) startTimes() []time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]time.Time(nil), d.starts...)
}

func TestStreamCadenceIndependentOfProcessingCost(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	// Each tick costs half the rate. If the loop slept the full rate after
	// processing, gaps would come out near rate plus delay.
	display := &slowDisplay{delay: 100 * time.Millisecond}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{})

	rate := 200 * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 700*time.Millisecond)
	defer cancel()
	require.NoError(t, loop.Stream(ctx, rate))

	starts := display.startTimes()
	require.GreaterOrEqual(t, len(starts), 3)
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		assert.InDelta(t, float64(rate), float64(gap), float64(80*time.Millisecond),
			"gap between tick starts should track the rate, not rate plus processing time")
	}
}

func TestStreamPollsEachWireOncePerTick(t *testing.T) {
	client := newFakeClient(libtpu.Compatible, defaultSamples())
	display := &fakeDisplay{}
	loop := NewLoop(zerolog.Nop(), fixtureEnumerator(t, 1), client, display, Options{})

	require.NoError(t, loop.RunOnce(context.Background()))

	assert.Equal(t, 1, client.metricCalls(libtpu.WireMemoryUsage))
	assert.Equal(t, 1, client.metricCalls(libtpu.WireTotalMemory))
	assert.Equal(t, 1, client.metricCalls(libtpu.WireDutyCyclePct))
}
