package tpmscore

// decodeToyotaEU handles the European-market Toyota sensor, a distinct
// generic-Toyota format from the US-market PMV-107J: plain Manchester
// behind an 8-bit sync byte, into a 9-byte CRC-8 payload.
func decodeToyotaEU(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "00110101"
	syncLen := len(syncPattern)
	if numBits < syncLen+9*8*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, syncPattern)
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += syncLen

	raw := NewBitmap(9)
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 9*8 {
		return false
	}

	if CRC8(raw.Bits[:8], 0x00, 0x07) != raw.Bits[8] {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressureKpa := float64(raw.Bits[4]) * 2.0
	tempC := int64(raw.Bits[5]) - 40

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure kpa", pressureKpa)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var toyotaEUDecoder = &Decoder{Name: "Toyota EU TPMS", Decode: decodeToyotaEU}
