// Package device detects locally-attached TPU devices through the PCI
// sysfs tree and maps them to their /dev entries and owning processes.
package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// googlePCIVendorID is the PCI vendor ID assigned to Google TPUs.
const googlePCIVendorID = "0x1ae0"

// ErrNoDevices is returned when no TPU chips are visible on the PCI bus.
var ErrNoDevices = errors.New("no TPU devices found")

// ChipType describes a TPU chip generation and its basic specs.
type ChipType struct {
	Name           string
	HBMGiB         int
	DevicesPerChip int
}

var (
	V2  = ChipType{Name: "v2", HBMGiB: 8, DevicesPerChip: 2}
	V3  = ChipType{Name: "v3", HBMGiB: 16, DevicesPerChip: 2}
	V4  = ChipType{Name: "v4", HBMGiB: 32, DevicesPerChip: 1}
	V5E = ChipType{Name: "v5e", HBMGiB: 16, DevicesPerChip: 1}
	V5P = ChipType{Name: "v5p", HBMGiB: 95, DevicesPerChip: 1}
	V6E = ChipType{Name: "v6e", HBMGiB: 32, DevicesPerChip: 1}
	V7X = ChipType{Name: "7x", HBMGiB: 192, DevicesPerChip: 2}
)

// String returns the human-readable name of the chip type.
func (c ChipType) String() string {
	// TPU7x is branded without the "v" prefix
	if c.Name == "7x" {
		return "TPU7x chip"
	}
	return fmt.Sprintf("TPU %s chip", c.Name)
}

// IsZero reports whether c is the zero (unknown) chip type.
func (c ChipType) IsZero() bool {
	return c.Name == ""
}

// FromPCIDeviceID returns the chip type for the given PCI device and
// subsystem IDs, or false if the IDs do not identify a TPU.
func FromPCIDeviceID(deviceID, subsystemID string) (ChipType, bool) {
	// TPU v2 and v3 share a device ID
	if deviceID == "0x0027" {
		switch subsystemID {
		case "0x004e":
			return V2, true
		case "0x004f":
			return V3, true
		}
		return ChipType{}, false
	}

	switch deviceID {
	case "0x005e":
		return V4, true
	case "0x0063":
		return V5E, true
	case "0x0062":
		return V5P, true
	case "0x006f":
		return V6E, true
	case "0x0076":
		return V7X, true
	}
	return ChipType{}, false
}

// usesVFIO reports whether the chip generation is exposed through the vfio
// driver rather than the accel driver.
func (c ChipType) usesVFIO() bool {
	switch c.Name {
	case V5E.Name, V5P.Name, V6E.Name, V7X.Name:
		return true
	}
	return false
}

// Device is one local TPU device entry. PID is the owning process, or 0
// when no process has the device open.
type Device struct {
	Path  string
	Index int
	Chip  ChipType
	PID   int
}

// Enumerator lists local TPU devices. The root paths exist so tests can
// point it at a fixture tree; zero values mean the real /sys, /proc and /dev.
type Enumerator struct {
	SysfsPCIRoot string
	ProcRoot     string
	DevRoot      string
}

func (e *Enumerator) sysfsRoot() string {
	if e.SysfsPCIRoot != "" {
		return e.SysfsPCIRoot
	}
	return "/sys/bus/pci/devices"
}

func (e *Enumerator) procRoot() string {
	if e.ProcRoot != "" {
		return e.ProcRoot
	}
	return "/proc"
}

func (e *Enumerator) devRoot() string {
	if e.DevRoot != "" {
		return e.DevRoot
	}
	return "/dev"
}

// LocalChips returns the chip type and number of TPU chips on the PCI bus.
// A machine only ever carries one chip generation; mixed trees return an
// error rather than a partial answer.
func (e *Enumerator) LocalChips() (ChipType, int, error) {
	paths, err := filepath.Glob(filepath.Join(e.sysfsRoot(), "*"))
	if err != nil {
		return ChipType{}, 0, fmt.Errorf("failed to scan PCI devices: %w", err)
	}

	counts := make(map[ChipType]int)
	for _, pciPath := range paths {
		vendorID, err := readSysfsValue(filepath.Join(pciPath, "vendor"))
		if err != nil || vendorID != googlePCIVendorID {
			continue
		}
		deviceID, err := readSysfsValue(filepath.Join(pciPath, "device"))
		if err != nil {
			continue
		}
		subsystemID, err := readSysfsValue(filepath.Join(pciPath, "subsystem_device"))
		if err != nil {
			continue
		}
		if chip, ok := FromPCIDeviceID(deviceID, subsystemID); ok {
			counts[chip]++
		}
	}

	if len(counts) > 1 {
		return ChipType{}, 0, fmt.Errorf("expected one chip type, got %d", len(counts))
	}
	for chip, n := range counts {
		return chip, n, nil
	}
	return ChipType{}, 0, nil
}

// Enumerate returns the ordered list of local TPU devices, with owning PIDs
// attached where a process holds the device open. It never returns a partial
// list: either every discovered chip is present or ErrNoDevices.
func (e *Enumerator) Enumerate() ([]Device, error) {
	chip, count, err := e.LocalChips()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoDevices
	}

	// Owner scan is best-effort: a permissions problem on /proc should not
	// hide the device inventory.
	owners, _ := e.Owners()

	devices := make([]Device, 0, count)
	for i := 0; i < count; i++ {
		path := e.ChipPath(chip, i)
		devices = append(devices, Device{
			Path:  path,
			Index: i,
			Chip:  chip,
			PID:   owners[path],
		})
	}
	return devices, nil
}

// ChipPath returns the expected /dev path for a TPU device index.
func (e *Enumerator) ChipPath(chip ChipType, index int) string {
	if chip.usesVFIO() {
		return fmt.Sprintf("%s/vfio/%d", e.devRoot(), index)
	}
	return fmt.Sprintf("%s/accel%d", e.devRoot(), index)
}

var (
	tpuDevPattern   = regexp.MustCompile(`^/(?:accel|vfio/)\d+$`)
	procLinkPattern = regexp.MustCompile(`(\d+)/fd/[^/]+$`)
)

// Owners returns a mapping of TPU device paths to the PIDs of processes
// holding them open, found by walking /proc/*/fd.
func (e *Enumerator) Owners() (map[string]int, error) {
	links, err := filepath.Glob(filepath.Join(e.procRoot(), "*", "fd", "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan process fds: %w", err)
	}

	owners := make(map[string]int)
	for _, link := range links {
		target, err := os.Readlink(link)
		if err != nil {
			// Processes close fds while we iterate; a vanished link is
			// expected, anything else is not ours to diagnose here.
			continue
		}

		// Only /dev entries for TPU devices are of interest.
		rel, ok := strings.CutPrefix(target, e.devRoot())
		if !ok || !tpuDevPattern.MatchString(rel) {
			continue
		}

		m := procLinkPattern.FindStringSubmatch(link)
		if m == nil {
			return nil, fmt.Errorf("unknown link pattern: %s", link)
		}
		pid, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("invalid PID in link %s: %w", link, err)
		}
		owners[target] = pid
	}
	return owners, nil
}

func readSysfsValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
