package tpmscore

// decodeGM handles the rtl_433-compatible 17-byte GM/Chevrolet/Buick/GMC
// aftermarket sensor format. An older 9-byte legacy layout exists in field
// deployments but is deliberately not registered here.
func decodeGM(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	preamble := repeatPattern("10", 48)
	if numBits < len(preamble)+17*8*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, preamble)
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += len(preamble)

	raw := NewBitmap(17)
	decoded := convertFromLineCode(raw, bitmap, off, "10", "01")
	if decoded < 17*8 {
		return false
	}

	for i := 0; i < 6; i++ {
		if raw.Bits[i] != 0 {
			return false
		}
	}

	if SumBytes(raw.Bits[6:16], 0) != raw.Bits[16] {
		return false
	}

	tireID := [5]byte{raw.Bits[6], raw.Bits[7], raw.Bits[8], raw.Bits[9], raw.Bits[10]}
	if tireID == [5]byte{} {
		return false
	}

	pressureKpa := float64(raw.Bits[14]) * 2.75
	if pressureKpa > 1000 {
		return false
	}
	tempC := int64(raw.Bits[15]) - 60

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var gmDecoder = &Decoder{Name: "GM Aftermarket TPMS", Decode: decodeGM}
