package tpmscore

// decodeBMW handles the multi-brand Continental/Sensata/Beru sensor family
// fitted to BMW Gen4/Gen5 and Audi vehicles: Manchester with the zero bit
// inverted, into either an 11-byte BMW payload or an 8-byte Audi payload.
func decodeBMW(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 16+64*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "1010101001011001")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 16

	raw := NewBitmap(11)
	decoded := convertFromLineCode(raw, bitmap, off, "10", "01")

	isBMW := decoded >= 88
	isAudi := !isBMW && decoded >= 64
	if !isBMW && !isAudi {
		return false
	}

	msgLen := 8
	if isBMW {
		msgLen = 11
	}
	crcLen := msgLen - 1

	if CRC8(raw.Bits[:crcLen], 0xAA, 0x2F) != raw.Bits[crcLen] {
		return false
	}

	tireID := [4]byte{raw.Bits[1], raw.Bits[2], raw.Bits[3], raw.Bits[4]}

	pressureKpa := float64(raw.Bits[5]) * 2.45
	tempC := int64(raw.Bits[6]) - 52

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var bmwDecoder = &Decoder{Name: "BMW/Audi TPMS", Decode: decodeBMW}
