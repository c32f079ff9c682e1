package tpmscore

// decodeSchraderGen1 handles the first-generation Schrader sensor
// predating SMD3MA4: plain Manchester behind a shorter preamble tail,
// into an 8-byte CRC-8 payload, reporting pressure in PSI like its later
// SMD3MA4 sibling.
func decodeSchraderGen1(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	const syncPattern = "0101010110"
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
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 8*8 {
		return false
	}

	if CRC8(raw.Bits[:7], 0xFF, 0x07) != raw.Bits[7] {
		return false
	}

	tireID := [4]byte{raw.Bits[0], raw.Bits[1], raw.Bits[2], raw.Bits[3]}
	pressurePsi := float64(raw.Bits[4]) * 0.25
	if pressurePsi > 100 || pressurePsi < 0 {
		return false
	}
	tempC := int64(raw.Bits[5]) - 50

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure psi", pressurePsi)
	info.Fields.AddInt("Temperature C", tempC)
	return true
}

var schraderGen1Decoder = &Decoder{Name: "Schrader GEN1 TPMS", Decode: decodeSchraderGen1}
