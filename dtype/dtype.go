// Package dtype defines the closed catalog of element-type tags used across
// the server's symbol table, promotion algebra, and elementwise kernels.
package dtype

import "github.com/pkg/errors"

// DType is a tag identifying the element type of an array or scalar value.
type DType int32

const (
	// UNDEF is the invalid/unset sentinel.
	UNDEF DType = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	C64
	C128
	Bool
	BigInt
	Str
)

// DTK classifies a DType by the kind of arithmetic it supports.
type DTK int

const (
	Other DTK = iota
	Integer
	Float
	Complex
	BoolKind
)

var names = map[DType]string{
	UNDEF:  "undefined",
	U8:     "uint8",
	U16:    "uint16",
	U32:    "uint32",
	U64:    "uint64",
	I8:     "int8",
	I16:    "int16",
	I32:    "int32",
	I64:    "int64",
	F32:    "float32",
	F64:    "float64",
	C64:    "complex64",
	C128:   "complex128",
	Bool:   "bool",
	BigInt: "bigint",
	Str:    "str",
}

var fromName = func() map[string]DType {
	m := make(map[string]DType, len(names))
	for d, s := range names {
		m[s] = d
	}
	return m
}()

// String implements fmt.Stringer.
func (d DType) String() string {
	if s, ok := names[d]; ok {
		return s
	}
	return "unknown"
}

// Dtype2str converts a DType to its canonical string name.
func Dtype2str(d DType) string { return d.String() }

// Str2dtype parses a canonical string name back to a DType. It returns
// UNDEF and an error for unrecognized names.
func Str2dtype(s string) (DType, error) {
	d, ok := fromName[s]
	if !ok {
		return UNDEF, errors.Errorf("str2dtype: unrecognized dtype name %q", s)
	}
	return d, nil
}

// ByteSize returns the in-memory footprint, in bytes, of a single element
// of the given DType. BigInt reports a nominal estimate of 16 bytes (its
// actual footprint is variable); UNDEF and Str report 0.
func ByteSize(d DType) int {
	switch d {
	case U8, I8, Bool:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64, C64:
		return 8
	case C128:
		return 16
	case BigInt:
		return 16
	default:
		return 0
	}
}

// Kind classifies d into one of {Integer, Float, Complex, Bool, Other}.
func Kind(d DType) DTK {
	switch d {
	case U8, U16, U32, U64, I8, I16, I32, I64, BigInt:
		return Integer
	case F32, F64:
		return Float
	case C64, C128:
		return Complex
	case Bool:
		return BoolKind
	default:
		return Other
	}
}

// IsSigned reports whether d is a signed integer type (BigInt counts as signed).
func IsSigned(d DType) bool {
	switch d {
	case I8, I16, I32, I64, BigInt:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether d is an unsigned fixed-width integer type.
func IsUnsigned(d DType) bool {
	switch d {
	case U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether d is any integer kind, fixed-width or BigInt.
func IsInteger(d DType) bool { return Kind(d) == Integer }

// IsReal reports whether d is a float type.
func IsReal(d DType) bool { return Kind(d) == Float }

// IsComplex reports whether d is a complex type.
func IsComplex(d DType) bool { return Kind(d) == Complex }

// MaxDType returns the operand with the greater byte size; on a tie it
// returns the left operand.
func MaxDType(a, b DType) DType {
	if ByteSize(b) > ByteSize(a) {
		return b
	}
	return a
}
