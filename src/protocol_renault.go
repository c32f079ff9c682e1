package tpmscore

// decodeRenault handles the Renault TPMS sensor family (also found on
// some PSA-group vehicles), which uses the pairwise differential
// Manchester sense rather than the sliding one: a long alternating
// preamble followed by a 4-bit sync nibble, decoded pairwise into an
// 8-byte CRC-8 payload.
func decodeRenault(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "01010101" + "0011"
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

	if CRC8(raw.Bits[:7], 0xAA, 0x07) != raw.Bits[7] {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressureKpa := float64(raw.Bits[4]) * 2.0
	tempC := int64(raw.Bits[5]) - 30

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var renaultDecoder = &Decoder{Name: "Renault TPMS", Decode: decodeRenault}
