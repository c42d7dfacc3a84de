package wire

import (
	"unicode/utf8"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
)

// Source is a bounds-checked origin of bytes to decode, bound to a Context
// for its lifetime. ReadRaw returns the next n bytes and advances the
// cursor, or fails with truncated_input when fewer than n bytes remain. The
// returned slice may alias the source's backing buffer.
type Source interface {
	Context() Context
	ReadRaw(n int) ([]byte, error)
}

// Typed read operations mirroring the sink side.

func ReadU8(src Source) (uint8, error) {
	b, err := src.ReadRaw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func ReadI8(src Source) (int8, error) {
	v, err := ReadU8(src)
	return int8(v), err
}

func ReadU16(src Source) (uint16, error) {
	b, err := src.ReadRaw(2)
	if err != nil {
		return 0, err
	}
	return src.Context().Order.Uint16(b), nil
}

func ReadI16(src Source) (int16, error) {
	v, err := ReadU16(src)
	return int16(v), err
}

func ReadU32(src Source) (uint32, error) {
	b, err := src.ReadRaw(4)
	if err != nil {
		return 0, err
	}
	return src.Context().Order.Uint32(b), nil
}

func ReadI32(src Source) (int32, error) {
	v, err := ReadU32(src)
	return int32(v), err
}

func ReadU64(src Source) (uint64, error) {
	b, err := src.ReadRaw(8)
	if err != nil {
		return 0, err
	}
	return src.Context().Order.Uint64(b), nil
}

func ReadI64(src Source) (int64, error) {
	v, err := ReadU64(src)
	return int64(v), err
}

func ReadU128(src Source) (byteorder.Uint128, error) {
	b, err := src.ReadRaw(16)
	if err != nil {
		return byteorder.Uint128{}, err
	}
	return src.Context().Order.Uint128(b), nil
}

func ReadI128(src Source) (byteorder.Int128, error) {
	v, err := ReadU128(src)
	return v.Signed(), err
}

func ReadF32(src Source) (float32, error) {
	b, err := src.ReadRaw(4)
	if err != nil {
		return 0, err
	}
	return src.Context().Order.Float32(b), nil
}

func ReadF64(src Source) (float64, error) {
	b, err := src.ReadRaw(8)
	if err != nil {
		return 0, err
	}
	return src.Context().Order.Float64(b), nil
}

// ReadBool reads one byte; any nonzero value decodes as true.
func ReadBool(src Source) (bool, error) {
	v, err := ReadU8(src)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadString reads a u32 byte length, then that many raw bytes. The bytes
// must form valid UTF-8; the declared length is checked against the source
// by ReadRaw, so a length past the end fails with truncated_input before
// anything is allocated.
func ReadString(src Source) (string, error) {
	n, err := ReadU32(src)
	if err != nil {
		return "", err
	}
	b, err := src.ReadRaw(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(nil, b)
	}
	return string(b), nil
}
