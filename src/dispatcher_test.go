package tpmscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendBitsAsPulses renders a bitstream as one pulse per bit, each held
// for durationUs, the pulse-train shape a real sub-GHz front end would
// hand the ring buffer for an NRZ-by-rate line at that symbol rate.
func appendBitsAsPulses(buf *RawSamples, bits []bool, durationUs uint32) {
	for _, b := range bits {
		buf.Append(b, durationUs)
	}
}

// TestScanForSignalDecodesPMV107JEndToEnd drives the full pipeline a real
// receiver would: raw pulses into a RawSamples ring, through the scanner's
// coherent-run search, into the dispatcher's line-code reconstruction and
// protocol registry, and out as extracted fields - without calling any
// protocol decoder directly.
func TestScanForSignalDecodesPMV107JEndToEnd(t *testing.T) {
	payload := []byte{0x00, 0x12, 0x34, 0x56, 0x78, 0xC8, 0x37, 0x5A}
	crc := CRC8(payload, 0x00, 0x13)

	decodedBits := []bool{false, false}
	decodedBits = append(decodedBits, bitsFromBytes(payload[1:])...)
	decodedBits = append(decodedBits, bitsFromBytes([]byte{crc})...)

	encoded := diffManchesterEncodeBits(decodedBits)
	encodedBitCount := len(decodedBits)*2 + 1

	var lineBits []bool
	for _, b := range "111110" {
		lineBits = append(lineBits, b == '1')
	}
	for i := 0; i < encodedBitCount; i++ {
		lineBits = append(lineBits, encoded.Get(i))
	}

	const symbolDurUs = 100
	source := NewRawSamples(1024)
	appendBitsAsPulses(source, lineBits, symbolDurUs)

	sc := NewScanner(1024, DefaultRegistry)
	sc.ScanForSignal(source, symbolDurUs/2)

	require.True(t, sc.Decoded)
	require.NotNil(t, sc.MsgInfo.Decoder)
	assert.Equal(t, "Toyota PMV-107J", sc.MsgInfo.Decoder.Name)

	idField, found := sc.MsgInfo.Fields.Find("Tire ID")
	require.True(t, found)
	assert.Len(t, idField.Bytes, 4)

	pf, found := sc.MsgInfo.Fields.Find("Pressure kpa")
	require.True(t, found)
	assert.InDelta(t, (float64(0xC8)-40)*2.48, pf.Float, 0.001)

	// Bits length is ceil(pulses_count/8), a faithful copy of the working
	// bitmap starting at the decoder's reported offset.
	require.NotNil(t, sc.MsgInfo.Bits)
	assert.Equal(t, (sc.MsgInfo.PulsesCount+7)/8, sc.MsgInfo.Bits.Len())
}

func TestScanForSignalNoCandidateOnPureNoise(t *testing.T) {
	source := NewRawSamples(256)
	// Durations stepping up by 37us and wrapping back below 950us never
	// settle into a stable class, so no run should ever clear
	// minCoherentLen.
	for i := 0; i < 64; i++ {
		source.Append(i%2 == 0, uint32(50+i*37%900))
	}

	sc := NewScanner(256, DefaultRegistry)
	sc.ScanForSignal(source, 10)

	assert.False(t, sc.Decoded)
}
