package tpmscore

// decodeBMWGen3 handles the older BMW Gen2/Gen3 sensor family: sliding
// differential Manchester into a CRC-16 payload that is 11 bytes for
// Gen3 or 10 bytes for Gen2.
func decodeBMWGen3(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 16+88*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "1100110011001101")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 16

	raw := NewBitmap(11)
	decoded := diffManchesterDecode(raw, bitmap, off, 90)

	isGen3 := decoded >= 88
	isGen2 := !isGen3 && decoded >= 80
	if !isGen3 && !isGen2 {
		return false
	}

	msgLen := 10
	if isGen3 {
		msgLen = 11
	}

	if CRC16(raw.Bits[:msgLen], 0x0000, 0x1021) != 0 {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}

	pressureKpa := (float64(raw.Bits[4]) - 43) * 2.5
	tempC := int64(raw.Bits[5]) - 40

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var bmwGen3Decoder = &Decoder{Name: "BMW Gen2/3 TPMS", Decode: decodeBMWGen3}
