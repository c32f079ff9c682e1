package tpmscore

// decodeSchraderSMD3MA4 handles the Schrader SMD3MA4 sensor fitted to
// Subaru/Infiniti/Nissan and some Renault models. It carries no
// temperature field and uses a short 39-bit Manchester payload with no
// CRC, only a sanity clamp on the decoded pressure.
func decodeSchraderSMD3MA4(bitmap *Bitmap, numBits int, info *MsgInfo) bool {
	if numBits < 12+39*2 {
		return false
	}

	off, ok := bitmap.SeekBits(0, numBits, "010101011110")
	if !ok {
		return false
	}
	info.StartOffsetBits = off
	off += 12

	raw := NewBitmap(5)
	decoded := convertFromLineCode(raw, bitmap, off, "01", "10")
	if decoded < 39 {
		return false
	}

	if raw.Bits[0] == 0 && raw.Bits[1] == 0 && raw.Bits[2] == 0 && raw.Bits[3] == 0 {
		return false
	}

	tireID := [3]byte{
		(raw.Bits[0]&0x1F)<<3 | raw.Bits[1]>>5,
		raw.Bits[1]<<3 | raw.Bits[2]>>5,
		raw.Bits[2]<<3 | raw.Bits[3]>>5,
	}

	pressureRaw := uint16(raw.Bits[3]&0x1F)<<5 | uint16(raw.Bits[4]>>3)
	pressurePsi := float64(pressureRaw) * 0.2
	if pressurePsi > 100 || pressurePsi < 0 {
		return false
	}

	info.PulsesCount = (off + decoded*2) - info.StartOffsetBits

	info.Fields.AddBytes("Tire ID", tireID[:])
	info.Fields.AddFloat("Pressure psi", pressurePsi)
	return true
}

var schraderSMD3MA4Decoder = &Decoder{Name: "Schrader SMD3MA4", Decode: decodeSchraderSMD3MA4}
