package tpmscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCoherentSignalShortRunEmitsNoCandidate(t *testing.T) {
	buf := NewRawSamples(64)
	for i := 0; i < 10; i++ {
		buf.Append(i%2 == 0, 100)
	}

	runLen, _ := searchCoherentSignal(buf, 0, 50)
	assert.LessOrEqual(t, runLen, minCoherentLen)
}

func TestScanForSignalIgnoresRunsAtOrBelowMinCoherentLen(t *testing.T) {
	source := NewRawSamples(64)
	for i := 0; i < minCoherentLen; i++ {
		source.Append(i%2 == 0, 100)
	}

	sc := NewScanner(64, DefaultRegistry)
	sc.ScanForSignal(source, 50)

	assert.Equal(t, 0, sc.BestLen)
	assert.False(t, sc.Decoded)
}

func TestScanForSignalShortPulseDurWithinBounds(t *testing.T) {
	source := NewRawSamples(128)
	for i := 0; i < 40; i++ {
		level := i%2 == 0
		dur := uint32(100)
		if !level {
			dur = 120
		}
		source.Append(level, dur)
	}

	sc := NewScanner(128, DefaultRegistry)
	sc.ScanForSignal(source, 50)

	if sc.BestLen > minCoherentLen {
		assert.Greater(t, sc.MsgInfo.ShortPulseDurUs, uint32(50))
		assert.Less(t, sc.MsgInfo.ShortPulseDurUs, uint32(maxPulseDurationUs))
	}
}

func TestScanForSignalLeavesNoisyRunUndecoded(t *testing.T) {
	source := NewRawSamples(128)
	// A long but structurally noisy run: durations drift outside any one
	// class's 20% band every other pulse, so searchCoherentSignal keeps
	// matching (three classes is enough slack) but no registry decoder
	// will ever recognize it.
	for i := 0; i < 60; i++ {
		level := i%2 == 0
		dur := uint32(100)
		if i%4 == 0 {
			dur = 140
		}
		source.Append(level, dur)
	}

	sc := NewScanner(128, DefaultRegistry)
	sc.ScanForSignal(source, 50)

	assert.False(t, sc.Decoded)
}

func TestScannerResetClearsBestCandidate(t *testing.T) {
	source := NewRawSamples(64)
	for i := 0; i < 40; i++ {
		source.Append(i%2 == 0, 100)
	}

	sc := NewScanner(64, DefaultRegistry)
	sc.ScanForSignal(source, 50)
	sc.Reset()

	assert.Equal(t, 0, sc.BestLen)
	assert.False(t, sc.Decoded)
	assert.Equal(t, 0, sc.MsgInfo.Fields.Len())
}
