package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/accelstack/tpu-info/internal/snapshot"
)

// Display receives the assembled tables for one render pass. The refresh
// loop only ever talks to this interface; the tablewriter implementation
// below is the production collaborator.
type Display interface {
	// Render emits the given tables in order.
	Render(tables ...snapshot.Table)
	// Notef emits a free-form line outside any table.
	Notef(format string, args ...any)
	// Clear resets the output area before a streaming tick.
	Clear()
}

// TableDisplay renders tables to a writer with tablewriter.
type TableDisplay struct {
	out io.Writer
	// clearScreen enables the ANSI home-and-clear sequence between
	// streaming ticks.
	clearScreen bool
}

// NewTableDisplay creates a display writing to out. Streaming mode sets
// clearScreen so each tick redraws in place.
func NewTableDisplay(out io.Writer, clearScreen bool) *TableDisplay {
	return &TableDisplay{out: out, clearScreen: clearScreen}
}

func (d *TableDisplay) Render(tables ...snapshot.Table) {
	for _, t := range tables {
		fmt.Fprintln(d.out, t.Title)
		tw := tablewriter.NewWriter(d.out)
		tw.SetHeader(t.Columns)
		tw.SetAutoFormatHeaders(false)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		tw.AppendBulk(t.Rows)
		tw.Render()
		fmt.Fprintln(d.out)
	}
}

func (d *TableDisplay) Notef(format string, args ...any) {
	fmt.Fprintf(d.out, format+"\n", args...)
}

func (d *TableDisplay) Clear() {
	if d.clearScreen {
		fmt.Fprint(d.out, "\033[2J\033[H")
	}
}
