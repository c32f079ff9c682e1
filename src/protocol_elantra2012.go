package tpmscore

// decodeElantra2012 handles the TRW sensor fitted to the 2012 Hyundai
// Elantra and related Honda Civic models: plain Manchester over a fixed
// 16-bit preamble into an 8-byte CRC-8 payload.
func decodeElantra2012(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 16+64*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "0111000101010101")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 16

	raw := NewBitmap(8)
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 64 {
		return false
	}

	if CRC8(raw.Bits[:7], 0x00, 0x07) != raw.Bits[7] {
		return false
	}

	pressureKpa := float64(raw.Bits[0]) + 60
	tempC := int64(raw.Bits[1]) - 50

	tireID := [4]byte{raw.Bits[2], raw.Bits[3], raw.Bits[4], raw.Bits[5]}

	info.PulsesCount = (off + 64*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var elantra2012Decoder = &Decoder{Name: "Elantra2012 TPMS", Decode: decodeElantra2012}
