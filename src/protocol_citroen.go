package tpmscore

// decodeCitroen handles the PSA-group sensor shared with Peugeot, a close
// cousin of the Renault decoder sharing its pairwise differential
// Manchester sense and 8-byte payload length but a distinct sync word and
// CRC polynomial.
func decodeCitroen(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "0101010101" + "0011"
	syncLen := len(syncPattern)
	if numBits < syncLen+8*8*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, syncPattern)
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += syncLen

	raw := NewBitmap(8)
	decoded := convertFromDiffManchester(raw, bitmap, off, false)
	if decoded < 8*8 {
		return false
	}

	if CRC8(raw.Bits[:7], 0x00, 0x1D) != raw.Bits[7] {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressureKpa := float64(raw.Bits[4]) * 1.364
	tempC := int64(raw.Bits[5]) - 40

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var citroenDecoder = &Decoder{Name: "Citroen TPMS", Decode: decodeCitroen}
