package tpmscore

import "sync/atomic"

// PulseSample is a single RF level transition with its held duration, as
// produced by the sub-GHz radio front end.
type PulseSample struct {
	Level      bool
	DurationUs uint32
}

// RawSamples is a bounded circular store of pulses written by a single RF
// interrupt producer (Append) and read by a single scanner consumer
// (CopyFrom) on a periodic tick. See the package-level concurrency note
// below for the lock-free publish discipline this relies on.
//
// Concurrency: exactly one producer calls Append, exactly one consumer
// calls CopyFrom; Get is safe from either side once it holds a buffer it
// owns (the producer's live buffer, or a consumer's snapshot). Append
// stores the sample before publishing headIndex with a release store;
// CopyFrom acquire-loads headIndex before copying, so the consumer never
// observes a slot whose sample write hasn't happened yet. No mutex is
// needed on the hot interrupt path.
type RawSamples struct {
	capacity uint32
	samples  []PulseSample

	headIndex atomic.Uint64 // free-running write cursor; reduced mod capacity for storage addressing.

	// ShortPulseDurUs is scratch space set by the scanner on its own
	// working copy: the estimated symbol period of the best candidate
	// currently identified in this buffer. It is never touched by the
	// producer.
	ShortPulseDurUs uint32
}

// NewRawSamples allocates a ring buffer with room for capacity pulses.
func NewRawSamples(capacity uint32) *RawSamples {
	Assert(capacity > 0)
	return &RawSamples{
		capacity: capacity,
		samples:  make([]PulseSample, capacity),
	}
}

// Cap returns the buffer's fixed capacity in samples.
func (r *RawSamples) Cap() uint32 { return r.capacity }

// Reset zeroes the buffer contents, the write cursor, and the scratch
// short-pulse estimate.
func (r *RawSamples) Reset() {
	for i := range r.samples {
		r.samples[i] = PulseSample{}
	}
	r.headIndex.Store(0)
	r.ShortPulseDurUs = 0
}

func (r *RawSamples) wrap(i int64) uint32 {
	m := int64(r.capacity)
	i %= m
	if i < 0 {
		i += m
	}
	return uint32(i)
}

// Append writes a new sample at the current head and advances it. Oldest
// samples are overwritten silently once the buffer has wrapped; that's by
// design — the consumer snapshots with CopyFrom before it starts
// analyzing, and tolerates the producer continuing to write underneath it.
func (r *RawSamples) Append(level bool, durationUs uint32) {
	slot := r.wrap(int64(r.headIndex.Load()))
	r.samples[slot] = PulseSample{Level: level, DurationUs: durationUs}
	r.headIndex.Add(1) // release: published after the sample store above.
}

// Get returns the sample at buffer-relative index i. i is interpreted
// modulo capacity — negative values and values far beyond head are legal
// and simply wrap, so Get(r.HeadIndex()-k) retrieves the kth most recently
// written sample for any k.
func (r *RawSamples) Get(i int64) (level bool, durationUs uint32) {
	s := r.samples[r.wrap(i)]
	return s.Level, s.DurationUs
}

// HeadIndex returns the write cursor: the index that will be written by
// the next Append. HeadIndex()-1 is always the most recently written slot.
func (r *RawSamples) HeadIndex() int64 {
	return int64(r.headIndex.Load()) //nolint:gosec // cursor never approaches 2^63.
}

// CopyFrom snapshots src into r, including its head cursor and scratch
// short-pulse estimate. The head is acquire-loaded first so that any
// samples the producer wrote before publishing that head are guaranteed
// visible in the copy that follows.
func (r *RawSamples) CopyFrom(src *RawSamples) {
	head := src.headIndex.Load() // acquire
	if r.capacity != src.capacity {
		r.capacity = src.capacity
		r.samples = make([]PulseSample, src.capacity)
	}
	copy(r.samples, src.samples)
	r.headIndex.Store(head)
	r.ShortPulseDurUs = src.ShortPulseDurUs
}

// centerLookback is the small slack the dispatcher gets for free when a
// candidate region is centered, on top of the wider -32/+100 padding
// DecodeSignal itself applies when it widens the bitmap window.
const centerLookback = 4

// Center repositions the buffer so that buffer-relative index 0 corresponds
// to the sample that was originally at index i, minus a small lookback.
// It exists purely so the dispatcher can position a candidate region
// conveniently before running the line-code conversion; it never touches
// stored samples, only the head cursor used as the reference point for
// subsequent head-relative reads (see convertSignalToBits).
func (r *RawSamples) Center(i int64) {
	r.headIndex.Store(uint64(i - centerLookback)) //nolint:gosec // caller-controlled, always small relative to capacity.
}
