package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accelstack/tpu-info/internal/snapshot"
)

func TestTableDisplayRender(t *testing.T) {
	var buf bytes.Buffer
	display := NewTableDisplay(&buf, false)

	display.Render(snapshot.Table{
		Title:   "TPU Chips",
		Columns: []string{"Chip", "Type"},
		Rows:    [][]string{{"/dev/accel0", "TPU v4 chip"}},
	})

	out := buf.String()
	assert.Contains(t, out, "TPU Chips")
	// Headers keep their casing, no auto-formatting.
	assert.Contains(t, out, "Chip")
	assert.Contains(t, out, "/dev/accel0")
	assert.Contains(t, out, "TPU v4 chip")
}

func TestTableDisplayClear(t *testing.T) {
	var buf bytes.Buffer

	display := NewTableDisplay(&buf, false)
	display.Clear()
	assert.Empty(t, buf.String(), "static mode must not emit escape codes")

	streaming := NewTableDisplay(&buf, true)
	streaming.Clear()
	assert.Equal(t, "\033[2J\033[H", buf.String())
}

func TestTableDisplayNotef(t *testing.T) {
	var buf bytes.Buffer
	display := NewTableDisplay(&buf, false)

	display.Notef("Connected to libtpu at grpc://%s...", "localhost:8431")
	assert.Equal(t, "Connected to libtpu at grpc://localhost:8431...\n", buf.String())
}
