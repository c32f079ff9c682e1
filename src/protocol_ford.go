package tpmscore

// decodeFord handles the Ford factory-fit sensor, which shares BMW's
// Manchester-zero-inverted line code but uses its own 16-bit preamble, a
// fixed 10-byte payload, and a CRC-16 check over the whole message.
func decodeFord(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 16+80*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "1010110010110100")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 16

	raw := NewBitmap(10)
	decoded := convertFromLineCode(raw, bitmap, off, "10", "01")
	if decoded < 80 {
		return false
	}

	if CRC16(raw.Bits, 0xFFFF, 0x1021) != 0 {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressureKpa := float64(raw.Bits[4])*2.0 - 100
	tempC := int64(raw.Bits[5]) - 40

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var fordDecoder = &Decoder{Name: "Ford TPMS", Decode: decodeFord}
