package uploader

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
)

// fakeBackend records everything the tailer sends.
type fakeBackend struct {
	mu         sync.Mutex
	ensureRuns int
	events     []Event
}

func (b *fakeBackend) EnsureRun(ctx context.Context, experimentName, runID string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureRuns++
	return fmt.Sprintf("%s/runs/%s", experimentName, runID), nil
}

func (b *fakeBackend) AppendRunData(ctx context.Context, runName string, events []Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
	return nil
}

func (b *fakeBackend) eventCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

func (b *fakeBackend) allEvents() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.events...)
}

func appendLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(line)
	require.NoError(t, err)
}

func TestStartMissingDirectory(t *testing.T) {
	u := NewUploader(zerolog.Nop(), &fakeBackend{}, Options{})
	_, err := u.Start(context.Background(), "exp", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to open log directory")
}

func TestStartLogdirNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	u := NewUploader(zerolog.Nop(), &fakeBackend{}, Options{})
	_, err := u.Start(context.Background(), "exp", path)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestUploadTailsNewEntries(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)
	defer up.Stop()

	logFile := filepath.Join(logdir, "metrics.log")
	appendLine(t, logFile, `{"tag":"loss","step":1,"value":0.5,"wall_time":1700000000.25}`+"\n")

	require.Eventually(t, func() bool {
		return backend.eventCount() == 1
	}, time.Second, 10*time.Millisecond)

	events := backend.allEvents()
	assert.Equal(t, "loss", events[0].Tag)
	assert.Equal(t, int64(1), events[0].Step)
	assert.Equal(t, 0.5, events[0].Value)
	assert.Equal(t, time.Unix(1700000000, 250000000).Unix(), events[0].WallTime.Unix())

	// Later entries are picked up incrementally, not re-uploaded from the
	// start of the file.
	appendLine(t, logFile, `{"tag":"loss","step":2,"value":0.4}`+"\n")
	require.Eventually(t, func() bool {
		return backend.eventCount() == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(2), backend.allEvents()[1].Step)
}

func TestUploadIgnoresPartialLine(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)
	defer up.Stop()

	logFile := filepath.Join(logdir, "metrics.log")
	appendLine(t, logFile, `{"tag":"loss","step":1,`)

	// A line without its newline stays buffered.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, backend.eventCount())

	appendLine(t, logFile, `"value":0.5}`+"\n")
	require.Eventually(t, func() bool {
		return backend.eventCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestUploadSkipsMalformedLines(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)
	defer up.Stop()

	logFile := filepath.Join(logdir, "metrics.jsonl")
	appendLine(t, logFile, "not json at all\n")
	appendLine(t, logFile, `{"tag":"loss","step":3,"value":0.3}`+"\n")

	require.Eventually(t, func() bool {
		return backend.eventCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(3), backend.allEvents()[0].Step)
}

func TestUploadIgnoresNonLogFiles(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)

	appendLine(t, filepath.Join(logdir, "checkpoint.bin"), `{"tag":"loss","step":1,"value":0.5}`+"\n")
	time.Sleep(50 * time.Millisecond)
	up.Stop()

	assert.Zero(t, backend.eventCount())
}

func TestStopFlushesPendingEntries(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	// A long interval so the only chance to see the entry is the final
	// drain pass.
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: time.Hour})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)

	appendLine(t, filepath.Join(logdir, "metrics.log"), `{"tag":"loss","step":1,"value":0.5}`+"\n")
	up.Stop()

	assert.Equal(t, 1, backend.eventCount())
}

func TestStopIsIdempotentAndLazy(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)

	// No data ever arrived: stopping is safe and the backend was never
	// touched, including run creation.
	up.Stop()
	up.Stop()
	assert.Zero(t, backend.ensureRuns)
	assert.Zero(t, backend.eventCount())
}

func TestRunCreatedOncePerUpload(t *testing.T) {
	logdir := t.TempDir()
	backend := &fakeBackend{}
	u := NewUploader(zerolog.Nop(), backend, Options{Interval: 10 * time.Millisecond})

	up, err := u.Start(context.Background(), "exp", logdir)
	require.NoError(t, err)
	defer up.Stop()

	logFile := filepath.Join(logdir, "metrics.log")
	appendLine(t, logFile, `{"tag":"loss","step":1,"value":0.5}`+"\n")
	require.Eventually(t, func() bool {
		return backend.eventCount() == 1
	}, time.Second, 10*time.Millisecond)

	appendLine(t, logFile, `{"tag":"loss","step":2,"value":0.4}`+"\n")
	require.Eventually(t, func() bool {
		return backend.eventCount() == 2
	}, time.Second, 10*time.Millisecond)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.ensureRuns)
	assert.NotEmpty(t, up.RunID())
}
