package tpmscore

// decodePMV107J handles the Pacific PMV-107J sensor used in Toyota
// Highlander/Camry/Corolla and Lexus models: differential Manchester over
// a 5-ones-plus-clock preamble, realigned by two bits into a 9-byte CRC-8
// payload.
func decodePMV107J(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 6+66*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "111110")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 6

	decodedBuf := NewBitmap(10)
	decoded := diffManchesterDecode(decodedBuf, bitmap, off, 70)
	if decoded < 66 {
		return false
	}

	var b [9]byte
	if decodedBuf.Get(0) {
		b[0] |= 0x02
	}
	if decodedBuf.Get(1) {
		b[0] |= 0x01
	}
	rest := NewBitmap(8)
	rest.Copy(0, decodedBuf, 2, 64)
	copy(b[1:], rest.Bits)

	if CRC8(b[:8], 0x00, 0x13) != b[8] {
		return false
	}
	if b[5]^b[6] != 0xFF {
		return false
	}

	tireID := [4]byte{
		b[0]<<6 | b[1]>>2,
		b[1]<<6 | b[2]>>2,
		b[2]<<6 | b[3]>>2,
		b[3]<<6 | b[4]>>2,
	}

	pressureKpa := (float64(b[5]) - 40) * 2.48
	tempC := int64(b[7]) - 40

	info.PulsesCount = decoded*2 + 6

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var pmv107jDecoder = &Decoder{Name: "Toyota PMV-107J", Decode: decodePMV107J}
