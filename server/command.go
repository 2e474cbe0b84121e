package server

import (
	"math/big"
	"strconv"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/scalar"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// ReplyTag is the response envelope's type tag (spec.md §6).
type ReplyTag string

const (
	Normal  ReplyTag = "NORMAL"
	ErrTag  ReplyTag = "ERROR"
	Warning ReplyTag = "WARNING"
)

// Reply is the response envelope returned by every registered command.
type Reply struct {
	Tag     ReplyTag
	Message string
}

func normal(msg string) Reply { return Reply{Tag: Normal, Message: msg} }
func failure(err error) Reply { return Reply{Tag: ErrTag, Message: err.Error()} }

// BinOpVVArgs mirrors the binopvv command's recognized keys (spec.md §6):
// op (operator string), a (LHS array name), b (RHS array name).
type BinOpVVArgs struct {
	Op string
	A  string
	B  string
}

// BinOpVSArgs mirrors the binopvs/binopsv commands' recognized keys: op,
// a (array name), value (scalar literal), dtype (scalar type tag).
type BinOpVSArgs struct {
	Op    string
	A     string
	Value string
	DType string
}

// ClipArgs mirrors the clip command's recognized keys: name, min, max.
// MinIsArray/MaxIsArray record whether min/max named an existing symbol
// table entry rather than carrying a scalar literal -- the dispatcher
// inspects each argument's shape to choose the variant (spec.md §6).
type ClipArgs struct {
	Name       string
	Min        string
	Max        string
	MinIsArray bool
	MaxIsArray bool
	MinDType   string
	MaxDType   string
}

// ParseScalar decodes a wire-format (value, dtype) pair into a
// scalar.Scalar, per spec.md §6: "Scalar accessors convert value to one of
// int64, uint64, float64, bool, or bigint according to dtype."
func ParseScalar(value, dtypeName string) (scalar.Scalar, error) {
	// float16 is an accepted input coercion outside dtype's closed DType
	// catalog: the wire literal is parsed as a float16 bit pattern and
	// immediately widened to F32, since no kernel operates on float16
	// storage directly (SPEC_FULL.md §3).
	if dtypeName == "float16" {
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: invalid float16 literal %q", value)
		}
		return scalar.FromFloat16(float16.Fromfloat32(float32(f)).Bits()), nil
	}

	dt, err := dtype.Str2dtype(dtypeName)
	if err != nil {
		return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: unrecognized dtype %q", dtypeName)
	}

	switch dtype.Kind(dt) {
	case dtype.BoolKind:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: invalid bool literal %q", value)
		}
		return scalar.FromBool(b), nil
	case dtype.Float:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: invalid float literal %q", value)
		}
		return scalar.FromReal(f, dt), nil
	case dtype.Integer:
		if dtype.IsUnsigned(dt) {
			u, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: invalid uint literal %q", value)
			}
			return scalar.FromUint(u, dt), nil
		}
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return scalar.Scalar{}, errors.Wrapf(err, "parseScalar: invalid int literal %q", value)
		}
		return scalar.FromInt(i, dt), nil
	default:
		if dt == dtype.BigInt {
			z, ok := new(big.Int).SetString(value, 10)
			if !ok {
				return scalar.Scalar{}, errors.Errorf("parseScalar: invalid bigint literal %q", value)
			}
			return scalar.FromBigInt(z), nil
		}
		return scalar.Scalar{}, errors.Errorf("parseScalar: unsupported dtype %q for scalar literal", dtypeName)
	}
}
