package tpmscore

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType tags the representation a decoded Field carries, mirroring the
// small set of ways a TPMS decoder ever needs to report a value.
type FieldType int

const (
	FieldString FieldType = iota
	FieldSignedInt
	FieldUnsignedInt
	FieldBinary
	FieldHex
	FieldBytes
	FieldFloat
)

// Field is one named value a protocol decoder extracts from a message:
// a tire pressure, a sensor ID, a battery-low flag, whatever that
// protocol's payload carries. Exactly one of the typed fields below is
// meaningful, selected by Type.
type Field struct {
	Name string
	Type FieldType

	Int     int64
	Uint    uint64
	Float   float64
	Str     string
	Bytes   []byte
	NibbleLen int // display width in hex nibbles, for FieldHex/FieldBinary/FieldBytes.
}

// String renders the field's value the way a decoder listing or CLI dump
// would show it, independent of Name.
func (f *Field) String() string {
	switch f.Type {
	case FieldString:
		return f.Str
	case FieldSignedInt:
		return strconv.FormatInt(f.Int, 10)
	case FieldUnsignedInt:
		return strconv.FormatUint(f.Uint, 10)
	case FieldFloat:
		return strconv.FormatFloat(f.Float, 'f', -1, 64)
	case FieldHex:
		return fmt.Sprintf("%0*x", f.NibbleLen, f.Uint)
	case FieldBinary:
		return fmt.Sprintf("%0*b", f.NibbleLen*4, f.Uint)
	case FieldBytes:
		var sb strings.Builder
		for _, b := range f.Bytes {
			fmt.Fprintf(&sb, "%02x", b)
		}
		return sb.String()
	default:
		return ""
	}
}

// FieldSet is the ordered collection of Fields a decoder populates for one
// decoded message. Order of addition is preserved, matching the order a
// protocol decoder naturally extracts fields in.
type FieldSet struct {
	fields []Field
}

// NewFieldSet returns an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{}
}

func (fs *FieldSet) add(f Field) {
	fs.fields = append(fs.fields, f)
}

// AddInt adds a signed-integer field.
func (fs *FieldSet) AddInt(name string, v int64) {
	fs.add(Field{Name: name, Type: FieldSignedInt, Int: v})
}

// AddUint adds an unsigned-integer field.
func (fs *FieldSet) AddUint(name string, v uint64) {
	fs.add(Field{Name: name, Type: FieldUnsignedInt, Uint: v})
}

// AddHex adds an unsigned value rendered in hex with nibbleLen digits.
func (fs *FieldSet) AddHex(name string, v uint64, nibbleLen int) {
	fs.add(Field{Name: name, Type: FieldHex, Uint: v, NibbleLen: nibbleLen})
}

// AddBin adds an unsigned value rendered in binary, nibbleLen*4 bits wide.
func (fs *FieldSet) AddBin(name string, v uint64, nibbleLen int) {
	fs.add(Field{Name: name, Type: FieldBinary, Uint: v, NibbleLen: nibbleLen})
}

// AddStr adds a string field.
func (fs *FieldSet) AddStr(name, v string) {
	fs.add(Field{Name: name, Type: FieldString, Str: v})
}

// AddFloat adds a floating-point field. Decoders use this for
// decoder-native scaled values (e.g. raw ADC-style pressure units); this
// package never converts units on a caller's behalf, it only reports what
// the protocol's own scaling formula yields.
func (fs *FieldSet) AddFloat(name string, v float64) {
	fs.add(Field{Name: name, Type: FieldFloat, Float: v})
}

// AddBytes adds a raw byte-slice field. NibbleLen is derived automatically
// as len(data)*2 so callers never have to keep it in sync by hand.
func (fs *FieldSet) AddBytes(name string, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	fs.add(Field{Name: name, Type: FieldBytes, Bytes: cp, NibbleLen: len(cp) * 2})
}

// Find returns the named field and true, or nil and false if no field by
// that name was added.
func (fs *FieldSet) Find(name string) (*Field, bool) {
	for i := range fs.fields {
		if fs.fields[i].Name == name {
			return &fs.fields[i], true
		}
	}
	return nil, false
}

// Len returns the number of fields in the set.
func (fs *FieldSet) Len() int { return len(fs.fields) }

// At returns the field at position i, for callers that want to iterate in
// addition order rather than by name.
func (fs *FieldSet) At(i int) *Field { return &fs.fields[i] }
