package tpmscore

// decodeSchraderEG53MA4 handles the EG53MA4 variant of the Schrader
// sensor family, fitted to some Ford and Mazda models: Manchester behind
// a long preamble, into a compact 6-byte payload checked with a running
// byte sum rather than a CRC, and no temperature field.
func decodeSchraderEG53MA4(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "01010101011101"
	syncLen := len(syncPattern)
	if numBits < syncLen+6*8*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, syncPattern)
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += syncLen

	raw := NewBitmap(6)
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 6*8 {
		return false
	}

	if SumBytes(raw.Bits[:5], 0) != raw.Bits[5] {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressurePsi := float64(raw.Bits[4]) * 0.25
	if pressurePsi > 100 || pressurePsi < 0 {
		return false
	}

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure psi", pressurePsi)
	return true
}

var schraderEG53MA4Decoder = &Decoder{Name: "Schrader EG53MA4", Decode: decodeSchraderEG53MA4}
