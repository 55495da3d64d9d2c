package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultInterval is how often the tailer rescans the log directory.
const defaultInterval = 1 * time.Second

// flushTimeout bounds the final drain performed when an upload is stopped.
const flushTimeout = 10 * time.Second

// Event is one scalar point read from a log file.
type Event struct {
	Tag      string
	Step     int64
	Value    float64
	WallTime time.Time
}

// Backend receives the tailed events. *VertexService is the production
// implementation.
type Backend interface {
	EnsureRun(ctx context.Context, experimentName, runID string) (string, error)
	AppendRunData(ctx context.Context, runName string, events []Event) error
}

// Options configures an Uploader.
type Options struct {
	// Interval between directory scans. Defaults to one second.
	Interval time.Duration
}

// Uploader tails log directories and forwards new entries to a backend.
type Uploader struct {
	logger   zerolog.Logger
	backend  Backend
	interval time.Duration
}

// NewUploader creates an uploader writing to the given backend.
func NewUploader(logger zerolog.Logger, backend Backend, opts Options) *Uploader {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Uploader{
		logger:   logger,
		backend:  backend,
		interval: interval,
	}
}

// Start begins tailing logdir in a background goroutine and uploading new
// entries to a fresh run under the given experiment. It returns immediately;
// the returned handle stops the goroutine. The run resource is only created
// once the first entry shows up, so a logdir that never produces data never
// touches the backend.
func (u *Uploader) Start(ctx context.Context, experimentName, logdir string) (*Upload, error) {
	info, err := os.Stat(logdir)
	if err != nil {
		return nil, fmt.Errorf("failed to open log directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log path %s is not a directory", logdir)
	}

	runCtx, cancel := context.WithCancel(ctx)
	up := &Upload{
		uploader:   u,
		experiment: experimentName,
		logdir:     logdir,
		runID:      "run-" + uuid.NewString()[:8],
		offsets:    make(map[string]int64),
		cancel:     cancel,
	}

	u.logger.Info().
		Str("experiment", experimentName).
		Str("logdir", logdir).
		Str("run", up.runID).
		Msg("Starting background log upload")

	up.wg.Add(1)
	go up.loop(runCtx)
	return up, nil
}

// Upload is a handle to one running background upload.
type Upload struct {
	uploader   *Uploader
	experiment string
	logdir     string
	runID      string

	// runName is set once the run resource exists. Only the loop goroutine
	// touches it.
	runName string

	mu      sync.Mutex
	offsets map[string]int64

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// RunID returns the generated run identifier for this upload session.
func (up *Upload) RunID() string {
	return up.runID
}

// Stop signals the background goroutine, waits for it to drain, and
// returns. Calling Stop again is a no-op, and stopping an upload that never
// saw any data is safe.
func (up *Upload) Stop() {
	up.stopOnce.Do(func() {
		up.cancel()
		up.wg.Wait()
	})
}

func (up *Upload) loop(ctx context.Context) {
	defer up.wg.Done()

	ticker := time.NewTicker(up.uploader.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// One last pass so entries written just before Stop still land.
			flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
			up.scan(flushCtx)
			cancel()
			return
		case <-ticker.C:
			up.scan(ctx)
		}
	}
}

// scan walks the log directory once and uploads whatever grew since the
// previous pass. Failures are logged and retried on the next pass, never
// propagated.
func (up *Upload) scan(ctx context.Context) {
	logger := up.uploader.logger

	err := filepath.WalkDir(up.logdir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isLogFile(path) {
			return err
		}
		if uerr := up.uploadNew(ctx, path); uerr != nil {
			logger.Warn().Err(uerr).Str("file", path).Msg("Upload pass failed")
		}
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("logdir", up.logdir).Msg("Log directory scan failed")
	}
}

// uploadNew reads complete lines appended to path since the recorded offset,
// parses them and sends them to the backend. The offset only advances after
// a successful upload, so a failed batch is retried whole.
func (up *Upload) uploadNew(ctx context.Context, path string) error {
	offset := up.offset(path)

	data, consumed, err := readCompleteLines(path, offset)
	if err != nil {
		return err
	}
	if consumed == 0 {
		return nil
	}

	events := up.parse(path, data)
	if len(events) > 0 {
		if up.runName == "" {
			name, err := up.uploader.backend.EnsureRun(ctx, up.experiment, up.runID)
			if err != nil {
				return fmt.Errorf("failed to ensure run: %w", err)
			}
			up.runName = name
		}
		if err := up.uploader.backend.AppendRunData(ctx, up.runName, events); err != nil {
			return fmt.Errorf("failed to append run data: %w", err)
		}
	}

	up.advance(path, offset+consumed)
	return nil
}

// parse decodes JSON-lines entries. Malformed lines are dropped with a
// warning rather than wedging the tail at a bad record.
func (up *Upload) parse(path string, data []byte) []Event {
	var events []Event
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var entry struct {
			Tag      string  `json:"tag"`
			Step     int64   `json:"step"`
			Value    float64 `json:"value"`
			WallTime float64 `json:"wall_time"`
		}
		if err := json.Unmarshal(line, &entry); err != nil {
			up.uploader.logger.Warn().Err(err).Str("file", path).Msg("Skipping malformed log entry")
			continue
		}
		if entry.Tag == "" {
			continue
		}
		wallTime := time.Now()
		if entry.WallTime > 0 {
			sec, frac := math.Modf(entry.WallTime)
			wallTime = time.Unix(int64(sec), int64(frac*float64(time.Second)))
		}
		events = append(events, Event{
			Tag:      entry.Tag,
			Step:     entry.Step,
			Value:    entry.Value,
			WallTime: wallTime,
		})
	}
	return events
}

func (up *Upload) offset(path string) int64 {
	up.mu.Lock()
	defer up.mu.Unlock()
	return up.offsets[path]
}

func (up *Upload) advance(path string, offset int64) {
	up.mu.Lock()
	defer up.mu.Unlock()
	up.offsets[path] = offset
}

func isLogFile(path string) bool {
	return strings.HasSuffix(path, ".log") || strings.HasSuffix(path, ".jsonl")
}

// readCompleteLines returns the bytes of every complete line in path past
// offset, plus how many bytes they span. A trailing partial line is left for
// the next pass.
func readCompleteLines(path string, offset int64) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, 0, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}

	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil, 0, nil
	}
	return data[:end+1], int64(end + 1), nil
}
