package tpmscore

// decodePorsche handles the Typ 987 Boxster/Cayman sensor: sliding
// differential Manchester behind an alternating-pair preamble ending in
// 1010, into a 10-byte CRC-16 payload.
func decodePorsche(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 20+80*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "110011001010")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 12

	raw := NewBitmap(10)
	decoded := diffManchesterDecode(raw, bitmap, off, 82)
	if decoded < 80 {
		return false
	}

	if CRC16(raw.Bits, 0xFFFF, 0x1021) != 0 {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}

	pressureKpa := float64(raw.Bits[4])*2.5 - 100
	tempC := int64(raw.Bits[5]) - 40

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var porscheDecoder = &Decoder{Name: "Porsche TPMS", Decode: decodePorsche}
