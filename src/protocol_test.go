package tpmscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitsFromBytes renders data as an MSB-first []bool, the natural input
// shape for the line-code encoders the fixtures below build on.
func bitsFromBytes(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b&(1<<i) != 0)
		}
	}
	return bits
}

// manchesterZeroInvEncodeBits encodes bits using the "zero bit inverted"
// Manchester convention BMW and the 17-byte GM format share: 0 -> "10",
// 1 -> "01".
func manchesterZeroInvEncodeBits(bits []bool) *Bitmap {
	b := NewBitmap(len(bits)/4 + 2)
	pos := 0
	for _, bit := range bits {
		if bit {
			b.Set(pos, false)
			b.Set(pos+1, true)
		} else {
			b.Set(pos, true)
			b.Set(pos+1, false)
		}
		pos += 2
	}
	return b
}

// concatBitmaps lays a onto a fresh bitmap followed by b, returning the
// merged bitmap and its total bit length.
func concatBitmaps(aPattern string, b *Bitmap, bBits int) (*Bitmap, int) {
	total := len(aPattern) + bBits
	out := NewBitmap(total/8 + 2)
	out.SetPattern(0, aPattern)
	out.Copy(len(aPattern), b, 0, bBits)
	return out, total
}

func TestDecodePMV107J(t *testing.T) {
	payload := []byte{0x00, 0x12, 0x34, 0x56, 0x78, 0xC8, 0x37, 0x5A}
	crc := CRC8(payload, 0x00, 0x13)

	decodedBits := []bool{false, false} // top two bits of b[0] == 0x00.
	decodedBits = append(decodedBits, bitsFromBytes(payload[1:])...)
	decodedBits = append(decodedBits, bitsFromBytes([]byte{crc})...)

	encoded := diffManchesterEncodeBits(decodedBits)
	full, numBits := concatBitmaps("111110", encoded, len(decodedBits)*2+1)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodePMV107J(full, numBits, info)
	require.True(t, ok)

	idField, found := info.Fields.Find("Tire ID")
	require.True(t, found)
	assert.Len(t, idField.Bytes, 4)

	pf, found := info.Fields.Find("Pressure kpa")
	require.True(t, found)
	assert.InDelta(t, (float64(0xC8)-40)*2.48, pf.Float, 0.001)

	tf, found := info.Fields.Find("Temperature C")
	require.True(t, found)
	assert.Equal(t, int64(0x5A)-40, tf.Int)
}

func TestDecodePMV107JRejectsTruncatedPayload(t *testing.T) {
	payload := []byte{0x00, 0x12, 0x34, 0x56, 0x78, 0xC8, 0x37, 0x5A}
	crc := CRC8(payload, 0x00, 0x13)

	decodedBits := []bool{false, false}
	decodedBits = append(decodedBits, bitsFromBytes(payload[1:])...)
	decodedBits = append(decodedBits, bitsFromBytes([]byte{crc})...)

	// Truncate to 64 decoded bits instead of 66: chop the last two decoded
	// bits (four source diff-Manchester symbols).
	truncated := decodedBits[:64]
	encoded := diffManchesterEncodeBits(truncated)
	full, numBits := concatBitmaps("111110", encoded, len(truncated)*2+1)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodePMV107J(full, numBits, info)
	assert.False(t, ok)
	assert.Equal(t, 0, info.Fields.Len())
}

func TestDecodeElantra2012(t *testing.T) {
	raw := []byte{80, 90, 0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0}
	raw[7] = CRC8(raw[:7], 0x00, 0x07)

	encoded := manchesterEncodeBits(bitsFromBytes(raw))
	full, numBits := concatBitmaps("0111000101010101", encoded, len(raw)*16)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodeElantra2012(full, numBits, info)
	require.True(t, ok)

	idField, _ := info.Fields.Find("Tire ID")
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, idField.Bytes)

	pf, _ := info.Fields.Find("Pressure kpa")
	assert.InDelta(t, 140.0, pf.Float, 0.001)

	tf, _ := info.Fields.Find("Temperature C")
	assert.Equal(t, int64(40), tf.Int)
}

func TestDecodeBMWGen4(t *testing.T) {
	raw := make([]byte, 11)
	raw[1], raw[2], raw[3], raw[4] = 0x01, 0x02, 0x03, 0x04
	raw[5] = 100 // pressure raw
	raw[6] = 90  // temperature raw
	raw[10] = CRC8(raw[:10], 0xAA, 0x2F)

	encoded := manchesterZeroInvEncodeBits(bitsFromBytes(raw))
	full, numBits := concatBitmaps("1010101001011001", encoded, len(raw)*16)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodeBMW(full, numBits, info)
	require.True(t, ok)

	idField, _ := info.Fields.Find("Tire ID")
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, idField.Bytes)

	pf, _ := info.Fields.Find("Pressure kpa")
	assert.InDelta(t, 100.0*2.45, pf.Float, 0.001)

	tf, _ := info.Fields.Find("Temperature C")
	assert.Equal(t, int64(90-52), tf.Int)
}

func TestDecodePorsche987(t *testing.T) {
	raw := make([]byte, 10)
	raw[0], raw[1], raw[2], raw[3] = 0xAA, 0xBB, 0xCC, 0xDD
	raw[4] = 120 // pressure raw
	raw[5] = 70  // temperature raw
	crc := CRC16(raw[:8], 0xFFFF, 0x1021)
	raw[8] = byte(crc >> 8)
	raw[9] = byte(crc)

	decodedBits := bitsFromBytes(raw)
	encoded := diffManchesterEncodeBits(decodedBits)
	// The precheck wants numBits >= 20+80*2 regardless of where the tail
	// pattern itself sits, so pad extra alternating pairs ahead of it -
	// real hardware sees a longer run of the alternating preamble before
	// the fixed 1010 tail that actually anchors the search.
	preamble := repeatPattern("1100", 8) + "1010"
	full, numBits := concatBitmaps(preamble, encoded, len(decodedBits)*2+1)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodePorsche(full, numBits, info)
	require.True(t, ok)

	idField, _ := info.Fields.Find("Tire ID")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, idField.Bytes)

	pf, _ := info.Fields.Find("Pressure kpa")
	assert.InDelta(t, 120.0*2.5-100, pf.Float, 0.001)
}

func TestDecodeGMAftermarket(t *testing.T) {
	raw := make([]byte, 17)
	raw[6], raw[7], raw[8], raw[9], raw[10] = 0x11, 0x22, 0x33, 0x44, 0x55
	raw[14] = 100 // pressure raw -> 275 kPa
	raw[15] = 80  // temperature raw -> 20 C
	raw[16] = SumBytes(raw[6:16], 0)

	preamble := repeatPattern("10", 48)
	encoded := manchesterZeroInvEncodeBits(bitsFromBytes(raw))
	full, numBits := concatBitmaps(preamble, encoded, len(raw)*16)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodeGM(full, numBits, info)
	require.True(t, ok)

	idField, _ := info.Fields.Find("Tire ID")
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55}, idField.Bytes)

	pf, _ := info.Fields.Find("Pressure kpa")
	assert.InDelta(t, 275.0, pf.Float, 0.001)

	tf, _ := info.Fields.Find("Temperature C")
	assert.Equal(t, int64(20), tf.Int)
}

func TestDecodeSchraderSMD3MA4RejectsAllZero(t *testing.T) {
	raw := make([]byte, 5)
	encoded := manchesterEncodeBits(bitsFromBytes(raw))
	full, numBits := concatBitmaps("010101011110", encoded, len(raw)*16)

	info := &MsgInfo{Fields: NewFieldSet()}
	ok := decodeSchraderSMD3MA4(full, numBits, info)
	assert.False(t, ok)
}
