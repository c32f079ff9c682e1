package tpmscore

// Reading is the shell-facing view of a decoded TPMS message: the fields
// a caller actually wants, pulled out of the opaque FieldSet by name.
// Values are reported in whatever units the decoder emitted them in —
// kPa or PSI, Celsius — this package performs no unit conversion; that
// stays a shell concern.
type Reading struct {
	Protocol string
	TireID   []byte

	HasPressureKpa bool
	PressureKpa    float64

	HasPressurePsi bool
	PressurePsi    float64

	HasTemperatureC bool
	TemperatureC    int64
}

// ExtractReading pulls the sensor-facing fields out of a successful
// decode's FieldSet, following the "Tire ID" / "Pressure kpa" /
// "Pressure psi" / "Temperature C" naming contract every registered
// decoder honors. It returns false if info carries no Tire ID field — the
// signal the decoded message isn't one this package treats as TPMS data.
func ExtractReading(info *MsgInfo) (Reading, bool) {
	if info == nil || info.Fields == nil {
		return Reading{}, false
	}

	idField, ok := info.Fields.Find("Tire ID")
	if !ok || idField.Type != FieldBytes {
		return Reading{}, false
	}

	r := Reading{TireID: append([]byte(nil), idField.Bytes...)}
	if info.Decoder != nil {
		r.Protocol = info.Decoder.Name
	}

	if f, ok := info.Fields.Find("Pressure kpa"); ok && f.Type == FieldFloat {
		r.PressureKpa = f.Float
		r.HasPressureKpa = true
	}
	if f, ok := info.Fields.Find("Pressure psi"); ok && f.Type == FieldFloat {
		r.PressurePsi = f.Float
		r.HasPressurePsi = true
	}
	if f, ok := info.Fields.Find("Temperature C"); ok && f.Type == FieldSignedInt {
		r.TemperatureC = f.Int
		r.HasTemperatureC = true
	}

	return r, true
}
