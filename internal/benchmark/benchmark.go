package benchmark

import (
	"fmt"
	"hash"
	"io"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark/prng"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/statistics"
)

// Capability is the call contract an algorithm variant satisfies.
type Capability int

const (
	// CapabilityDigest consumes a byte buffer and produces a digest.
	CapabilityDigest Capability = iota
	// CapabilityStream produces pseudorandom integers or bytes from internal state.
	CapabilityStream
	// CapabilityIdentifier draws one 16-byte identifier from an entropy source.
	CapabilityIdentifier
)

func (c Capability) String() string {
	switch c {
	case CapabilityDigest:
		return "digest"
	case CapabilityStream:
		return "stream"
	case CapabilityIdentifier:
		return "identifier"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// Operation is what a benchmark group measures.
type Operation int

const (
	OpDigest Operation = iota
	OpUint64
	OpFill
	OpIdentifier
)

func (o Operation) String() string {
	switch o {
	case OpDigest:
		return "digest"
	case OpUint64:
		return "uint64"
	case OpFill:
		return "fill"
	case OpIdentifier:
		return "identifier"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Capability returns the capability a variant needs to take part in the operation.
func (o Operation) Capability() Capability {
	switch o {
	case OpUint64, OpFill:
		return CapabilityStream
	case OpIdentifier:
		return CapabilityIdentifier
	default:
		return CapabilityDigest
	}
}

// Sized reports whether the operation is parameterized by a byte size.
func (o Operation) Sized() bool {
	return o == OpDigest || o == OpFill
}

// Variant is one named, interchangeable algorithm under test. Exactly one of
// the constructors is set, matching Capability.
type Variant struct {
	Name       string
	Capability Capability

	// NewHash returns a fresh hasher. Used by CapabilityDigest.
	NewHash func() (hash.Hash, error)
	// NewStream returns a generator freshly seeded from seed. Used by CapabilityStream.
	NewStream func(seed uint64) prng.Stream
	// NewID draws one identifier from entropy. Used by CapabilityIdentifier.
	NewID func(entropy io.Reader) ([]byte, error)
}

// Group is a named set of variants sharing one operation and one list of
// configuration points.
type Group struct {
	Name       string
	Operation  Operation
	Variants   []Variant
	Sizes      []int // bytes; only for sized operations
	Samples    int
	SampleSize int // iterations per timed sample, 0 calibrates per case
	Warmup     int // untimed iterations before sampling
}

// Case is one cell of the benchmark matrix.
type Case struct {
	Group      string
	Operation  Operation
	Variant    Variant
	Size       int
	Samples    int
	SampleSize int // 0 until calibrated
	Warmup     int
}

// Name identifies the case as group/variant or group/variant@size.
func (c Case) Name() string {
	if !c.Operation.Sized() {
		return c.Group + "/" + c.Variant.Name
	}
	return fmt.Sprintf("%s/%s@%s", c.Group, c.Variant.Name, FormatBytes(int64(c.Size)))
}

// Result is the aggregated outcome of one case. Stats are nanoseconds per operation.
type Result struct {
	Case  Case
	Stats statistics.Stats
	// Throughput is bytes per second for sized cases and operations per second otherwise,
	// derived from the median.
	Throughput float64
}

// ThroughputUnit is the unit Throughput is expressed in.
func (r Result) ThroughputUnit() string {
	if r.Case.Operation.Sized() {
		return "B/s"
	}
	return "op/s"
}

// FormatBytes renders a byte count with binary units, omitting the fraction
// when the count is an exact multiple of the unit.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	if bytes%div == 0 {
		return fmt.Sprintf("%d %ciB", bytes/div, "KMGTPE"[exp])
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatRate renders a per-second rate with decimal prefixes.
func FormatRate(perSecond float64, unit string) string {
	const k = 1000.0
	prefixes := []string{"", "K", "M", "G", "T"}
	i := 0
	for perSecond >= k && i < len(prefixes)-1 {
		perSecond /= k
		i++
	}
	return fmt.Sprintf("%.2f %s%s", perSecond, prefixes[i], unit)
}
