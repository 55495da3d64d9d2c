// Package snapshot merges enumerated devices with the latest metric poll
// into display tables. Nothing here talks to the network; it is a pure,
// deterministic transform so the refresh loop can rebuild it every tick.
package snapshot

import (
	"fmt"
	"strconv"

	"github.com/accelstack/tpu-info/internal/device"
	"github.com/accelstack/tpu-info/internal/libtpu"
)

// Table is one rendered metric table.
type Table struct {
	Metric  MetricID
	Title   string
	Columns []string
	Rows    [][]string
}

// Snapshot is the in-memory state for one render pass. It is rebuilt from
// scratch on every tick; no history is retained.
type Snapshot struct {
	Chip    device.ChipType
	Devices []device.Device
	Tables  []Table
}

// Build merges the enumerated devices with the sampled metrics. Row order
// always follows ascending core index derived from the device list, never
// sample arrival order, so the table layout is stable across ticks. A core
// with no matching sample gets the N/A sentinel.
func Build(devices []device.Device, samples map[string][]libtpu.Sample, metrics []MetricID) (*Snapshot, error) {
	if len(devices) == 0 {
		return nil, device.ErrNoDevices
	}
	chip := devices[0].Chip

	snap := &Snapshot{Chip: chip, Devices: devices}
	for _, id := range metrics {
		entry, err := Lookup(string(id))
		if err != nil {
			return nil, err
		}
		if entry.StringKeyed {
			snap.Tables = append(snap.Tables, buildKeyedTable(entry, samples))
			continue
		}
		snap.Tables = append(snap.Tables, buildDeviceTable(entry, chip, len(devices), samples))
	}
	return snap, nil
}

// buildDeviceTable renders a device-keyed metric: one row per core, in
// ascending core index order.
func buildDeviceTable(entry CatalogEntry, chip device.ChipType, chips int, samples map[string][]libtpu.Sample) Table {
	byID := make(map[string]map[int64]libtpu.Sample, len(entry.Wire))
	for _, wire := range entry.Wire {
		m := make(map[int64]libtpu.Sample, len(samples[wire]))
		for _, s := range samples[wire] {
			m[s.DeviceID] = s
		}
		byID[wire] = m
	}

	cores := chips * chip.DevicesPerChip
	table := Table{Metric: entry.ID, Title: entry.Title, Columns: entry.Columns}
	for core := 0; core < cores; core++ {
		key := int64(core)
		if entry.PerChip {
			key = int64(core / chip.DevicesPerChip)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(core),
			formatCell(entry, byID, key),
		})
	}
	return table
}

// buildKeyedTable renders a string-keyed metric (e.g. latency by buffer
// size). Rows follow the client's key order; there is no device axis.
func buildKeyedTable(entry CatalogEntry, samples map[string][]libtpu.Sample) Table {
	table := Table{Metric: entry.ID, Title: entry.Title, Columns: entry.Columns}
	for _, s := range samples[entry.Wire[0]] {
		row := []string{s.Key}
		for _, pct := range []float64{50, 90, 95, 99.9} {
			row = append(row, formatPercentile(s.Percentiles, pct))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func formatCell(entry CatalogEntry, byID map[string]map[int64]libtpu.Sample, key int64) string {
	switch entry.ID {
	case HBMUsage:
		usage, okU := byID[libtpu.WireMemoryUsage][key]
		total, okT := byID[libtpu.WireTotalMemory][key]
		if !okU || !okT {
			return NA
		}
		return fmt.Sprintf("%.2f GiB / %.2f GiB", bytesToGiB(usage.AsInt), bytesToGiB(total.AsInt))
	case DutyCyclePercent, TensorCoreUtilization:
		s, ok := byID[entry.Wire[0]][key]
		if !ok {
			return NA
		}
		return fmt.Sprintf("%.2f%%", s.AsDouble)
	case OutboundDataRate:
		s, ok := byID[entry.Wire[0]][key]
		if !ok {
			return NA
		}
		return fmt.Sprintf("%.2f Mbps", s.AsDouble)
	default:
		return NA
	}
}

func formatPercentile(percentiles []libtpu.Percentile, percent float64) string {
	for _, p := range percentiles {
		if p.Percent == percent {
			return fmt.Sprintf("%.2f us", p.Value)
		}
	}
	return NA
}

func bytesToGiB(size int64) float64 {
	return float64(size) / (1 << 30)
}

// ChipsTable renders the device inventory table shown by the default
// (no-flag) invocation.
func ChipsTable(devices []device.Device) Table {
	table := Table{
		Title:   "TPU Chips",
		Columns: []string{"Chip", "Type", "Devices", "PID"},
	}
	for _, d := range devices {
		table.Rows = append(table.Rows, []string{
			d.Path,
			d.Chip.String(),
			strconv.Itoa(d.Chip.DevicesPerChip),
			formatPID(d.PID),
		})
	}
	return table
}

// ProcessTable renders the per-device owning process table for --process.
func ProcessTable(devices []device.Device) Table {
	table := Table{
		Title:   "TPU Processes",
		Columns: []string{"Device", "PID"},
	}
	for _, d := range devices {
		table.Rows = append(table.Rows, []string{d.Path, formatPID(d.PID)})
	}
	return table
}

func formatPID(pid int) string {
	if pid == 0 {
		return "None"
	}
	return strconv.Itoa(pid)
}
