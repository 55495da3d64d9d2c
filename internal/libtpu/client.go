// Package libtpu is a thin client for the runtime metric service that
// libtpu exposes on a local gRPC port.
package libtpu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/accelstack/tpu-info/api/v1/tpumetrics"
)

// Wire names of the runtime metrics this tool understands. The strings are
// dictated by libtpu.
const (
	WireTotalMemory           = "tpu.runtime.hbm.memory.total.bytes"
	WireMemoryUsage           = "tpu.runtime.hbm.memory.usage.bytes"
	WireDutyCyclePct          = "tpu.runtime.tensorcore.dutycycle.percent"
	WireTensorCoreUtil        = "tpu.runtime.tensorcore.utilization.percent"
	WireBufferTransferLatency = "megascale.dcn_transfer_latencies"
	WireOutboundDataRate      = "megascale.outbound_data.rate.mbps"
)

var (
	// ErrUnavailable means the metric service cannot be reached at all, or
	// the client is in a degraded state after a failed startup probe.
	ErrUnavailable = errors.New("libtpu metric service unavailable")

	// ErrMetricUnavailable means the runtime answered but does not support
	// the requested metric (typically an older libtpu).
	ErrMetricUnavailable = errors.New("metric not supported by runtime")
)

// Compatibility is the result of the startup version probe. It gates every
// subsequent metric call: anything other than Compatible short-circuits
// GetMetric without a network round trip.
type Compatibility int

const (
	CompatUnknown Compatibility = iota
	Compatible
	IncompatibleVersion
	ServiceUnavailable
)

func (c Compatibility) String() string {
	switch c {
	case Compatible:
		return "compatible"
	case IncompatibleVersion:
		return "incompatible-version"
	case ServiceUnavailable:
		return "service-unavailable"
	default:
		return "unknown"
	}
}

// Percentile is one quantile of a distribution metric.
type Percentile struct {
	Percent float64
	Value   float64
}

// Sample is one decoded measurement. Device-keyed metrics set DeviceID and
// leave Key empty; string-keyed metrics (e.g. latency by buffer size) do the
// opposite, with DeviceID set to -1.
type Sample struct {
	DeviceID    int64
	Key         string
	AsInt       int64
	AsDouble    float64
	Percentiles []Percentile
}

// Client talks to the libtpu runtime metric service.
type Client struct {
	logger      zerolog.Logger
	conn        *grpc.ClientConn
	client      pb.RuntimeMetricServiceClient
	addrs       []string
	dialTimeout time.Duration
	callTimeout time.Duration

	compat  Compatibility
	version string
	addr    string

	mu     sync.Mutex
	warned map[string]struct{}
}

// Options configures a Client.
type Options struct {
	Addrs       []string
	DialTimeout time.Duration
	CallTimeout time.Duration
}

// New creates a Client for the given candidate addresses. No connection is
// made until Probe runs.
func New(logger zerolog.Logger, opts Options) *Client {
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 2 * time.Second
	}
	if opts.CallTimeout == 0 {
		opts.CallTimeout = time.Second
	}
	return &Client{
		logger:      logger,
		addrs:       opts.Addrs,
		dialTimeout: opts.DialTimeout,
		callTimeout: opts.CallTimeout,
		compat:      CompatUnknown,
		warned:      make(map[string]struct{}),
	}
}

// Probe dials the candidate addresses in order and asks each for the runtime
// version. The first answer decides the compatibility state for the life of
// the process. Probe never returns an error: an unreachable or incompatible
// service is a degraded state, not a failure.
func (c *Client) Probe(ctx context.Context) Compatibility {
	for _, addr := range c.addrs {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			c.logger.Debug().Err(err).Str("addr", addr).Msg("Failed to create channel")
			continue
		}

		client := pb.NewRuntimeMetricServiceClient(conn)
		probeCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
		resp, err := client.GetRuntimeVersion(probeCtx, &pb.RuntimeVersionRequest{})
		cancel()

		switch {
		case err == nil:
			c.conn = conn
			c.client = client
			c.addr = addr
			c.version = resp.GetVersion()
			if c.version == "" {
				c.compat = IncompatibleVersion
			} else {
				c.compat = Compatible
			}
			c.logger.Debug().
				Str("addr", addr).
				Str("runtime_version", c.version).
				Stringer("compatibility", c.compat).
				Msg("Probed libtpu metric service")
			return c.compat
		case status.Code(err) == codes.Unimplemented:
			// The service answered but predates the version RPC. The
			// incompatible state gates off all metric calls; the connection
			// is kept only so Close has something to release.
			c.conn = conn
			c.client = client
			c.addr = addr
			c.compat = IncompatibleVersion
			c.logger.Debug().Str("addr", addr).Msg("Runtime does not implement version probe")
			return c.compat
		default:
			c.logger.Debug().Err(err).Str("addr", addr).Msg("Probe failed")
			_ = conn.Close()
		}
	}

	c.compat = ServiceUnavailable
	return c.compat
}

// State returns the compatibility state computed by Probe.
func (c *Client) State() Compatibility {
	return c.compat
}

// RuntimeVersion returns the version reported by the probe, or "" when the
// probe did not reach a compatible service.
func (c *Client) RuntimeVersion() string {
	return c.version
}

// Addr returns the address of the service the probe connected to.
func (c *Client) Addr() string {
	return c.addr
}

// GetMetric fetches and decodes one runtime metric. In a degraded state it
// returns ErrUnavailable immediately, avoiding a failing round trip on every
// refresh tick. Samples come back sorted by device ID, then key.
func (c *Client) GetMetric(ctx context.Context, wireName string) ([]Sample, error) {
	if c.compat != Compatible {
		return nil, ErrUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.GetRuntimeMetric(callCtx, &pb.MetricRequest{MetricName: wireName})
	if err != nil {
		switch status.Code(err) {
		case codes.Unimplemented, codes.NotFound:
			c.warnOnce(wireName)
			return nil, fmt.Errorf("%w: %s", ErrMetricUnavailable, wireName)
		case codes.Unavailable:
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, wireName)
		default:
			return nil, fmt.Errorf("failed to get metric %s: %w", wireName, err)
		}
	}

	samples := make([]Sample, 0, len(resp.GetMetric().GetMetrics()))
	for _, m := range resp.GetMetric().GetMetrics() {
		s := Sample{DeviceID: -1}
		switch attr := m.GetAttribute().GetValue().GetAttr().(type) {
		case *pb.AttrValue_IntAttr:
			s.DeviceID = attr.IntAttr
		case *pb.AttrValue_StringAttr:
			s.Key = attr.StringAttr
		}
		if g := m.GetGauge(); g != nil {
			s.AsInt = g.GetAsInt()
			s.AsDouble = g.GetAsDouble()
		}
		if d := m.GetDistribution(); d != nil {
			for _, p := range d.GetPercentiles() {
				s.Percentiles = append(s.Percentiles, Percentile{Percent: p.GetPercent(), Value: p.GetValue()})
			}
		}
		samples = append(samples, s)
	}

	// The runtime does not promise a stable order; impose one.
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].DeviceID != samples[j].DeviceID {
			return samples[i].DeviceID < samples[j].DeviceID
		}
		return samples[i].Key < samples[j].Key
	})
	return samples, nil
}

// warnOnce logs an unsupported metric a single time per process, so a
// streaming session does not spam the log every tick.
func (c *Client) warnOnce(wireName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.warned[wireName]; ok {
		return
	}
	c.warned[wireName] = struct{}{}
	c.logger.Warn().Str("metric", wireName).Msg("Metric not supported by this runtime, showing N/A")
}

// Close releases the connection. Safe to call when the probe never
// connected.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// WithClient overrides the gRPC client, for tests.
func (c *Client) WithClient(client pb.RuntimeMetricServiceClient, compat Compatibility) {
	c.client = client
	c.compat = compat
}
