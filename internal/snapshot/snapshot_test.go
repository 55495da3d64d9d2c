package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelstack/tpu-info/internal/device"
	"github.com/accelstack/tpu-info/internal/libtpu"
)

func testDevices(chip device.ChipType, n int) []device.Device {
	devices := make([]device.Device, 0, n)
	for i := 0; i < n; i++ {
		devices = append(devices, device.Device{Path: "/dev/accel0", Index: i, Chip: chip})
	}
	return devices
}

func TestBuildNoDevices(t *testing.T) {
	_, err := Build(nil, nil, []MetricID{HBMUsage})
	assert.ErrorIs(t, err, device.ErrNoDevices)
}

func TestBuildUnknownMetric(t *testing.T) {
	_, err := Build(testDevices(device.V4, 1), nil, []MetricID{"bogus"})
	assert.ErrorContains(t, err, "invalid metric")
}

func TestBuildHBMUsage(t *testing.T) {
	samples := map[string][]libtpu.Sample{
		// Samples arrive out of order; rows must still follow core index.
		libtpu.WireMemoryUsage: {
			{DeviceID: 1, AsInt: 2 << 30},
			{DeviceID: 0, AsInt: 1 << 30},
		},
		libtpu.WireTotalMemory: {
			{DeviceID: 0, AsInt: 32 << 30},
			{DeviceID: 1, AsInt: 32 << 30},
		},
	}

	snap, err := Build(testDevices(device.V4, 2), samples, []MetricID{HBMUsage})
	require.NoError(t, err)
	require.Len(t, snap.Tables, 1)

	table := snap.Tables[0]
	assert.Equal(t, "TPU HBM Usage", table.Title)
	assert.Equal(t, []string{"Device", "HBM usage"}, table.Columns)
	assert.Equal(t, [][]string{
		{"0", "1.00 GiB / 32.00 GiB"},
		{"1", "2.00 GiB / 32.00 GiB"},
	}, table.Rows)
}

func TestBuildMissingSampleRendersNA(t *testing.T) {
	// Only core 0 reported; core 1 must show the sentinel, never a zero.
	samples := map[string][]libtpu.Sample{
		libtpu.WireMemoryUsage: {{DeviceID: 0, AsInt: 0}},
		libtpu.WireTotalMemory: {{DeviceID: 0, AsInt: 32 << 30}},
	}

	snap, err := Build(testDevices(device.V4, 2), samples, []MetricID{HBMUsage})
	require.NoError(t, err)

	rows := snap.Tables[0].Rows
	require.Len(t, rows, 2)
	// A reported zero is a real measurement and renders as one.
	assert.Equal(t, "0.00 GiB / 32.00 GiB", rows[0][1])
	assert.Equal(t, NA, rows[1][1])
}

func TestBuildNoSamplesAtAll(t *testing.T) {
	snap, err := Build(testDevices(device.V4, 2), nil, []MetricID{HBMUsage, DutyCyclePercent})
	require.NoError(t, err)
	require.Len(t, snap.Tables, 2)
	for _, table := range snap.Tables {
		require.Len(t, table.Rows, 2)
		for _, row := range table.Rows {
			assert.Equal(t, NA, row[1])
		}
	}
}

func TestBuildDutyCycleFansOutPerChip(t *testing.T) {
	// v2 has two cores per chip; one duty cycle sample per chip covers both.
	samples := map[string][]libtpu.Sample{
		libtpu.WireDutyCyclePct: {
			{DeviceID: 0, AsDouble: 25.5},
			{DeviceID: 1, AsDouble: 75.25},
		},
	}

	snap, err := Build(testDevices(device.V2, 2), samples, []MetricID{DutyCyclePercent})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"0", "25.50%"},
		{"1", "25.50%"},
		{"2", "75.25%"},
		{"3", "75.25%"},
	}, snap.Tables[0].Rows)
}

func TestBuildBufferTransferLatency(t *testing.T) {
	samples := map[string][]libtpu.Sample{
		libtpu.WireBufferTransferLatency: {
			{
				DeviceID: -1,
				Key:      "8MB+",
				Percentiles: []libtpu.Percentile{
					{Percent: 50, Value: 10},
					{Percent: 90, Value: 20},
					{Percent: 95, Value: 30},
					{Percent: 99.9, Value: 40},
				},
			},
			{
				DeviceID:    -1,
				Key:         "16MB+",
				Percentiles: []libtpu.Percentile{{Percent: 50, Value: 15}},
			},
		},
	}

	snap, err := Build(testDevices(device.V5E, 1), samples, []MetricID{BufferTransferLatency})
	require.NoError(t, err)

	table := snap.Tables[0]
	assert.Equal(t, []string{"Buffer size", "P50", "P90", "P95", "P999"}, table.Columns)
	assert.Equal(t, [][]string{
		{"8MB+", "10.00 us", "20.00 us", "30.00 us", "40.00 us"},
		{"16MB+", "15.00 us", NA, NA, NA},
	}, table.Rows)
}

func TestChipsTable(t *testing.T) {
	devices := []device.Device{
		{Path: "/dev/accel0", Index: 0, Chip: device.V4, PID: 1234},
		{Path: "/dev/accel1", Index: 1, Chip: device.V4},
	}

	table := ChipsTable(devices)
	assert.Equal(t, []string{"Chip", "Type", "Devices", "PID"}, table.Columns)
	assert.Equal(t, [][]string{
		{"/dev/accel0", "TPU v4 chip", "1", "1234"},
		{"/dev/accel1", "TPU v4 chip", "1", "None"},
	}, table.Rows)
}

func TestProcessTable(t *testing.T) {
	devices := []device.Device{
		{Path: "/dev/vfio/0", Chip: device.V5E, PID: 99},
		{Path: "/dev/vfio/1", Chip: device.V5E},
	}

	table := ProcessTable(devices)
	assert.Equal(t, [][]string{
		{"/dev/vfio/0", "99"},
		{"/dev/vfio/1", "None"},
	}, table.Rows)
}
