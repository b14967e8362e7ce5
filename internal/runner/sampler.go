package runner

import (
	"hash"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/data"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/prng"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/statistics"
)

// sink absorbs every produced digest, integer, buffer and identifier so no
// measured call can be treated as dead code.
var sink uint64

func fold(b []byte) {
	sink += uint64(len(b))
	if len(b) > 0 {
		sink ^= uint64(b[0]) | uint64(b[len(b)-1])<<8
	}
}

// operation is one case's work split into untimed setup, the timed call and
// untimed consumption.
type operation interface {
	// prepare builds n fresh, independent inputs.
	prepare(n int)
	// run executes the algorithm on input i. This is the only timed code.
	run(i int) error
	// consume folds the outputs into the sink and drops the inputs.
	consume()
}

type digestOp struct {
	newHash func() (hash.Hash, error)
	size    int
	inputs  [][]byte
	outputs [][]byte
}

func (o *digestOp) prepare(n int) {
	o.inputs = make([][]byte, n)
	o.outputs = make([][]byte, n)
	for i := range o.inputs {
		o.inputs[i] = data.Generate(o.size)
	}
}

func (o *digestOp) run(i int) error {
	h, err := o.newHash()
	if err != nil {
		return err
	}
	if _, err := h.Write(o.inputs[i]); err != nil {
		return err
	}
	o.outputs[i] = h.Sum(nil)
	return nil
}

func (o *digestOp) consume() {
	for _, out := range o.outputs {
		fold(out)
	}
	o.inputs, o.outputs = nil, nil
}

type uint64Op struct {
	newStream func(seed uint64) prng.Stream
	streams   []prng.Stream
	acc       []uint64
}

func (o *uint64Op) prepare(n int) {
	o.streams = make([]prng.Stream, n)
	o.acc = make([]uint64, n)
	for i := range o.streams {
		o.streams[i] = o.newStream(data.Seed)
	}
}

func (o *uint64Op) run(i int) error {
	o.acc[i] ^= o.streams[i].Uint64()
	return nil
}

func (o *uint64Op) consume() {
	for _, v := range o.acc {
		sink ^= v
	}
	o.streams, o.acc = nil, nil
}

type fillOp struct {
	newStream func(seed uint64) prng.Stream
	size      int
	streams   []prng.Stream
	bufs      [][]byte
}

func (o *fillOp) prepare(n int) {
	o.streams = make([]prng.Stream, n)
	o.bufs = make([][]byte, n)
	for i := range o.streams {
		o.streams[i] = o.newStream(data.Seed)
		o.bufs[i] = make([]byte, o.size)
	}
}

func (o *fillOp) run(i int) error {
	o.streams[i].Fill(o.bufs[i])
	return nil
}

func (o *fillOp) consume() {
	for _, b := range o.bufs {
		fold(b)
	}
	o.streams, o.bufs = nil, nil
}

type identifierOp struct {
	newID   func(entropy io.Reader) ([]byte, error)
	entropy []io.Reader
	ids     [][]byte
}

func (o *identifierOp) prepare(n int) {
	o.entropy = make([]io.Reader, n)
	o.ids = make([][]byte, n)
	for i := range o.entropy {
		o.entropy[i] = prng.Reader(prng.NewXoshiro256PlusPlus(data.Seed))
	}
}

func (o *identifierOp) run(i int) error {
	id, err := o.newID(o.entropy[i])
	if err != nil {
		return err
	}
	o.ids[i] = id
	return nil
}

func (o *identifierOp) consume() {
	for _, id := range o.ids {
		fold(id)
	}
	o.entropy, o.ids = nil, nil
}

func newOperation(c benchmark.Case) (operation, error) {
	v := c.Variant
	if v.Capability != c.Operation.Capability() {
		return nil, benchmark.ConfigError("%s: variant %q cannot run %s", c.Name(), v.Name, c.Operation)
	}

	switch c.Operation {
	case benchmark.OpDigest:
		if v.NewHash == nil {
			return nil, benchmark.ConfigError("%s: no hash constructor", c.Name())
		}
		return &digestOp{newHash: v.NewHash, size: c.Size}, nil
	case benchmark.OpUint64:
		if v.NewStream == nil {
			return nil, benchmark.ConfigError("%s: no stream constructor", c.Name())
		}
		return &uint64Op{newStream: v.NewStream}, nil
	case benchmark.OpFill:
		if v.NewStream == nil {
			return nil, benchmark.ConfigError("%s: no stream constructor", c.Name())
		}
		return &fillOp{newStream: v.NewStream, size: c.Size}, nil
	case benchmark.OpIdentifier:
		if v.NewID == nil {
			return nil, benchmark.ConfigError("%s: no identifier constructor", c.Name())
		}
		return &identifierOp{newID: v.NewID}, nil
	}
	return nil, benchmark.ConfigError("%s: unknown operation %s", c.Name(), c.Operation)
}

const (
	// minSampleTime is the shortest timed region calibration accepts; below
	// it clock overhead dominates the measurement.
	minSampleTime = 10 * time.Microsecond
	// maxSampleSize bounds calibration for operations that cost next to nothing.
	maxSampleSize = 1 << 16
)

// timeSample prepares n fresh inputs, times n calls and consumes the outputs.
func timeSample(op operation, n int) (time.Duration, error) {
	op.prepare(n)

	start := time.Now()
	for i := 0; i < n; i++ {
		if err := op.run(i); err != nil {
			return 0, err
		}
	}
	elapsed := time.Since(start)

	op.consume()
	return elapsed, nil
}

// calibrate doubles the iteration count until one untimed trial sample takes
// at least minSampleTime, and returns that count.
func calibrate(op operation) (int, error) {
	n := 1
	for n < maxSampleSize {
		elapsed, err := timeSample(op, n)
		if err != nil {
			return 0, err
		}
		if elapsed >= minSampleTime {
			break
		}
		n *= 2
	}
	return n, nil
}

// Sample executes one case: Warmup untimed iterations, then Samples timed
// samples of SampleSize iterations each, every iteration on a freshly
// prepared input. A SampleSize of 0 is calibrated after warmup; the chosen
// value is recorded in the result's case. Each sample records the mean
// nanoseconds per iteration.
func Sample(c benchmark.Case) (benchmark.Result, error) {
	if c.Samples <= 0 {
		return benchmark.Result{}, benchmark.ConfigError("%s: sample count must be positive, got %d", c.Name(), c.Samples)
	}
	if c.SampleSize < 0 {
		return benchmark.Result{}, benchmark.ConfigError("%s: sample size must not be negative, got %d", c.Name(), c.SampleSize)
	}
	if c.Size < 0 {
		return benchmark.Result{}, benchmark.ConfigError("%s: negative size %d", c.Name(), c.Size)
	}

	op, err := newOperation(c)
	if err != nil {
		return benchmark.Result{}, err
	}

	for i := 0; i < c.Warmup; i++ {
		if _, err := timeSample(op, 1); err != nil {
			return benchmark.Result{}, errors.Wrapf(err, "%s: warmup", c.Name())
		}
	}

	if c.SampleSize == 0 {
		if c.SampleSize, err = calibrate(op); err != nil {
			return benchmark.Result{}, errors.Wrapf(err, "%s: calibrate", c.Name())
		}
	}

	samples := make([]float64, c.Samples)
	for s := range samples {
		elapsed, err := timeSample(op, c.SampleSize)
		if err != nil {
			return benchmark.Result{}, errors.Wrapf(err, "%s: sample %d", c.Name(), s+1)
		}
		samples[s] = float64(elapsed.Nanoseconds()) / float64(c.SampleSize)
	}

	stats, err := statistics.Calculate(samples)
	if err != nil {
		return benchmark.Result{}, errors.Wrap(err, c.Name())
	}

	return benchmark.Result{
		Case:       c,
		Stats:      stats,
		Throughput: throughput(c, stats.Median),
	}, nil
}

func throughput(c benchmark.Case, medianNs float64) float64 {
	if medianNs <= 0 {
		return 0
	}
	perSecond := float64(time.Second) / medianNs
	if c.Operation.Sized() {
		return perSecond * float64(c.Size)
	}
	return perSecond
}
