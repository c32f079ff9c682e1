package tpmscore

// maxPulseRepeat bounds how many bit repetitions a single pulse can
// contribute to convertSignalToBits, guarding against a stray, absurdly
// long pulse blowing up the output.
const maxPulseRepeat = 1024

// convertSignalToBits reconstructs a level-rate bitstream (NRZ-by-rate)
// from raw pulses: each pulse contributes round(duration/unitUs)
// repetitions of its level, clipped at maxPulseRepeat. startSample is
// head-relative — it is added to buf.HeadIndex() before indexing, which is
// what lets DecodeSignal widen its window with a negative startSample to
// pick up bits just before the run the scanner centered the buffer on (see
// RawSamples.Center). Returns the number of bits written.
func convertSignalToBits(dst *Bitmap, buf *RawSamples, startSample int64, sampleCount int, unitUs uint32) int {
	if unitUs == 0 {
		return 0
	}
	base := buf.HeadIndex() + startSample
	bitPos := 0
	for j := 0; j < sampleCount; j++ {
		level, dur := buf.Get(base + int64(j))

		numBits := int(dur / unitUs)
		rest := dur % unitUs
		if rest > unitUs/2 {
			numBits++
		}
		if numBits > maxPulseRepeat {
			numBits = maxPulseRepeat
		}
		for ; numBits > 0; numBits-- {
			dst.Set(bitPos, level)
			bitPos++
		}
	}
	return bitPos
}

// convertFromLineCode walks src from off, emitting a 0 each time the
// cursor matches zeroPattern and a 1 each time it matches onePattern,
// advancing by the matched pattern's length each time. It stops the
// moment neither pattern matches (a CodecReject — no partial output is a
// failure signal here, callers check the returned count against what they
// need) or once dst is full.
func convertFromLineCode(dst *Bitmap, src *Bitmap, off int, zeroPattern, onePattern string) int {
	decoded := 0
	limit := src.Len() * 8
	for off < limit {
		var bit bool
		switch {
		case src.MatchBits(off, zeroPattern):
			bit = false
			off += len(zeroPattern)
		case src.MatchBits(off, onePattern):
			bit = true
			off += len(onePattern)
		default:
			return decoded
		}
		dst.Set(decoded, bit)
		decoded++
		if decoded/8 == dst.Len() {
			break
		}
	}
	return decoded
}

// diffManchesterDecode is the sliding-window differential Manchester
// decoder: it bootstraps with a single bit, then for each output bit
// consumes two more source bits. The first must differ from the carried
// state (the required mid-bit transition); if it doesn't, decoding stops.
// The second determines whether a transition occurred at the start of the
// next bit: no start transition decodes to 1, a start transition decodes
// to 0. This is the Biphase-Mark / diff-Manchester sense used by Toyota
// PMV-107J, BMW Gen2/3, and Porsche.
func diffManchesterDecode(dst *Bitmap, src *Bitmap, off int, maxBits int) int {
	decoded := 0
	limit := src.Len() * 8
	if off >= limit {
		return 0
	}
	bit := src.Get(off)
	off++

	for decoded < maxBits && off < limit {
		bit2 := src.Get(off)
		off++
		if bit == bit2 {
			break // No mid-bit transition: codec reject.
		}

		if off >= limit {
			break
		}
		bit3 := src.Get(off)
		off++

		dst.Set(decoded, bit2 == bit3) // no start transition -> 1, start transition -> 0.
		decoded++
		bit = bit3
	}
	return decoded
}

// convertFromDiffManchester is the pairwise differential Manchester form
// some decoders (Renault and relatives) rely on for its exact bit sense:
// each pair (b0, b1) decodes to b0==b1, and b1 carries forward as the
// "previous" bit for the next pair. This is not equivalent to
// diffManchesterDecode and must not be unified with it without
// re-verifying every caller's bit sense.
func convertFromDiffManchester(dst *Bitmap, src *Bitmap, off int, previous bool) int {
	decoded := 0
	limit := src.Len() * 8
	for j := off; j < limit; j += 2 {
		b0 := src.Get(j)
		b1 := src.Get(j + 1)
		if b0 == previous {
			break
		}
		dst.Set(decoded, b0 == b1)
		decoded++
		previous = b1
		if decoded/8 == dst.Len() {
			break
		}
	}
	return decoded
}
