package tpmscore

// MsgInfo carries everything a successful decode produced: which decoder
// recognized the message, the fields it extracted, and enough raw context
// (bit offset, pulse count, symbol duration, decoded bitmap) for a caller
// to re-render or debug the match.
type MsgInfo struct {
	Decoder *Decoder
	Fields  *FieldSet

	StartOffsetBits int
	PulsesCount     int
	ShortPulseDurUs uint32

	Bits    *Bitmap
	NumBits int
}

// initMsgInfo resets info to a zero-value state ready for a fresh decode
// attempt, reusing its existing FieldSet rather than reallocating it on
// every scan tick. Bits is dropped; DecodeSignal allocates a fresh one on
// a match.
func initMsgInfo(info *MsgInfo) {
	info.Decoder = nil
	if info.Fields == nil {
		info.Fields = NewFieldSet()
	} else {
		info.Fields.fields = info.Fields.fields[:0]
	}
	info.StartOffsetBits = 0
	info.PulsesCount = 0
	info.ShortPulseDurUs = 0
	info.Bits = nil
	info.NumBits = 0
}
