package snapshot

import (
	"fmt"
	"sort"

	"github.com/accelstack/tpu-info/internal/libtpu"
)

// MetricID is a metric name as accepted on the command line.
type MetricID string

const (
	DutyCyclePercent      MetricID = "duty_cycle_percent"
	HBMUsage              MetricID = "hbm_usage"
	TensorCoreUtilization MetricID = "tensorcore_utilization"
	BufferTransferLatency MetricID = "buffer_transfer_latency"
	OutboundDataRate      MetricID = "outbound_data_rate"
)

// NA is the sentinel rendered for a missing measurement. A zero is a valid
// measurement and is never used to stand in for missing data.
const NA = "N/A"

// CatalogEntry describes one supported metric: the table it renders into,
// the wire metrics it needs, and how its rows are keyed.
type CatalogEntry struct {
	ID          MetricID
	Title       string
	Description string
	Columns     []string
	Wire        []string
	// PerChip metrics are measured once per chip and fan out to every core
	// on that chip.
	PerChip bool
	// StringKeyed metrics are keyed by an attribute string (e.g. buffer
	// size) instead of a device ID.
	StringKeyed bool
}

var catalog = map[MetricID]CatalogEntry{
	DutyCyclePercent: {
		ID:          DutyCyclePercent,
		Title:       "TPU Duty Cycle",
		Description: "Percentage of time the TensorCore was actively computing",
		Columns:     []string{"Device", "Duty cycle"},
		Wire:        []string{libtpu.WireDutyCyclePct},
		PerChip:     true,
	},
	HBMUsage: {
		ID:          HBMUsage,
		Title:       "TPU HBM Usage",
		Description: "High-bandwidth memory used / total, per core",
		Columns:     []string{"Device", "HBM usage"},
		Wire:        []string{libtpu.WireMemoryUsage, libtpu.WireTotalMemory},
	},
	TensorCoreUtilization: {
		ID:          TensorCoreUtilization,
		Title:       "TensorCore Utilization",
		Description: "TensorCore utilization percentage, per core",
		Columns:     []string{"Device", "TensorCore utilization"},
		Wire:        []string{libtpu.WireTensorCoreUtil},
	},
	BufferTransferLatency: {
		ID:          BufferTransferLatency,
		Title:       "TPU Buffer Transfer Latency",
		Description: "Transfer latency percentiles by buffer size",
		Columns:     []string{"Buffer size", "P50", "P90", "P95", "P999"},
		Wire:        []string{libtpu.WireBufferTransferLatency},
		StringKeyed: true,
	},
	OutboundDataRate: {
		ID:          OutboundDataRate,
		Title:       "TPU Outbound Data Rate",
		Description: "Outbound interconnect data rate, per chip",
		Columns:     []string{"Device", "Outbound rate"},
		Wire:        []string{libtpu.WireOutboundDataRate},
		PerChip:     true,
	},
}

// DefaultMetrics is the table set rendered when no --metric filter is given.
var DefaultMetrics = []MetricID{HBMUsage, DutyCyclePercent}

// Lookup returns the catalog entry for name. Unknown names are an error,
// never silently rendered.
func Lookup(name string) (CatalogEntry, error) {
	entry, ok := catalog[MetricID(name)]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("invalid metric %q, use --list_metrics to view all supported metrics", name)
	}
	return entry, nil
}

// Catalog returns every supported metric, sorted by ID.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
