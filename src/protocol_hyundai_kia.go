package tpmscore

// decodeHyundaiKia handles the Continental/VDO sensor common to US-market
// Hyundai and Kia vehicles: a long alternating preamble plus a 4-bit sync
// word, Manchester-coded into a 10-byte XOR-checksummed payload.
func decodeHyundaiKia(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "0101010101010110"
	syncLen := len(syncPattern)
	if numBits-syncLen < 10*8*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, syncPattern)
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += syncLen

	raw := NewBitmap(10)
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 10*8 {
		return false
	}

	if XorBytes(raw.Bits[:9], 0) != raw.Bits[9] {
		return false
	}

	info.PulsesCount = (off + 10*8*2) - info.StartOffsetBits

	tireID := [4]byte{raw.Bits[1], raw.Bits[2], raw.Bits[3], raw.Bits[4]}
	pressureKpa := float64(raw.Bits[6]) * 2.5
	tempC := int64(raw.Bits[7]) - 50
	battery := uint64(raw.Bits[5] & 0x7f)
	flags := uint64(raw.Bits[0])

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	info.Fields.AddUint("Battery", battery)
	info.Fields.AddHex("Flags", flags, 2)
	return true
}

var hyundaiKiaDecoder = &Decoder{Name: "Hyundai/Kia TPMS", Decode: decodeHyundaiKia}
