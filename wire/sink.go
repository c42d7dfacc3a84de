package wire

import (
	"math"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
)

// Sink is an append-only destination for encoded bytes, bound to a Context
// for its lifetime. WriteRaw appends p and reports a failure only for sinks
// that can refuse writes (bounded or I/O-backed ones); a failure aborts the
// whole encode.
type Sink interface {
	Context() Context
	WriteRaw(p []byte) error
}

// Typed write operations layered on the raw contract. Multi-byte values go
// through the sink's context order.

func WriteU8(s Sink, v uint8) error {
	return s.WriteRaw([]byte{v})
}

func WriteI8(s Sink, v int8) error {
	return s.WriteRaw([]byte{uint8(v)})
}

func WriteU16(s Sink, v uint16) error {
	var b [2]byte
	s.Context().Order.PutUint16(b[:], v)
	return s.WriteRaw(b[:])
}

func WriteI16(s Sink, v int16) error {
	return WriteU16(s, uint16(v))
}

func WriteU32(s Sink, v uint32) error {
	var b [4]byte
	s.Context().Order.PutUint32(b[:], v)
	return s.WriteRaw(b[:])
}

func WriteI32(s Sink, v int32) error {
	return WriteU32(s, uint32(v))
}

func WriteU64(s Sink, v uint64) error {
	var b [8]byte
	s.Context().Order.PutUint64(b[:], v)
	return s.WriteRaw(b[:])
}

func WriteI64(s Sink, v int64) error {
	return WriteU64(s, uint64(v))
}

func WriteU128(s Sink, v byteorder.Uint128) error {
	var b [16]byte
	s.Context().Order.PutUint128(b[:], v)
	return s.WriteRaw(b[:])
}

func WriteI128(s Sink, v byteorder.Int128) error {
	return WriteU128(s, v.Unsigned())
}

func WriteF32(s Sink, v float32) error {
	var b [4]byte
	s.Context().Order.PutFloat32(b[:], v)
	return s.WriteRaw(b[:])
}

func WriteF64(s Sink, v float64) error {
	var b [8]byte
	s.Context().Order.PutFloat64(b[:], v)
	return s.WriteRaw(b[:])
}

// WriteBool writes one byte, 1 for true and 0 for false.
func WriteBool(s Sink, v bool) error {
	if v {
		return s.WriteRaw([]byte{1})
	}
	return s.WriteRaw([]byte{0})
}

// WriteString writes the UTF-8 byte length as a u32 in the context order,
// then the raw bytes. Strings whose byte length does not fit the prefix are
// rejected with an overflow error.
func WriteString(s Sink, v string) error {
	if uint64(len(v)) > math.MaxUint32 {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Detail("string of %d bytes exceeds the u32 length prefix", len(v)).
			Build()
	}
	if err := WriteU32(s, uint32(len(v))); err != nil {
		return err
	}
	return s.WriteRaw([]byte(v))
}
