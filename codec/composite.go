package codec

import (
	"math"

	"github.com/wippyai/bincodec/errors"
	"github.com/wippyai/bincodec/wire"
)

// MaxSeqLen caps the element count a decoder will accept for any sequence,
// set or map. Counts above it are rejected before allocation.
const MaxSeqLen = 1 << 27 // 128M elements

// writeCount writes a u32 element count, rejecting lengths the prefix
// cannot carry.
func writeCount(s wire.Sink, n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Detail("count %d exceeds the u32 prefix", n).
			Build()
	}
	return wire.WriteU32(s, uint32(n))
}

// readCount reads a u32 element count and applies MaxSeqLen.
func readCount(src wire.Source) (int, error) {
	n, err := wire.ReadU32(src)
	if err != nil {
		return 0, err
	}
	if n > MaxSeqLen {
		return 0, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("declared count %d exceeds the limit of %d elements", n, MaxSeqLen).
			Build()
	}
	return int(n), nil
}

// clampCap bounds an initial allocation by the bytes remaining in the
// source when it can tell. Every element occupies at least one byte, so a
// forged count on a short buffer cannot force a large allocation; the
// decode then fails with truncated_input at the first missing element.
func clampCap(src wire.Source, n int) int {
	type remaining interface{ Remaining() int }
	if r, ok := src.(remaining); ok && n > r.Remaining() {
		return r.Remaining()
	}
	return n
}

// EncodeOption writes an optional value: tag 0 when v is nil, tag 1 and the
// payload when present.
func EncodeOption[T any](s wire.Sink, v *T, enc EncodeFunc[T]) error {
	if v == nil {
		return wire.WriteU8(s, 0)
	}
	if err := wire.WriteU8(s, 1); err != nil {
		return err
	}
	return enc(s, *v)
}

// DecodeOption reads an optional value. Tag bytes other than 0 and 1 fail
// with invalid_discriminant.
func DecodeOption[T any](src wire.Source, dec DecodeFunc[T]) (*T, error) {
	tag, err := wire.ReadU8(src)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		v, err := dec(src)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, errors.InvalidDiscriminant(nil, tag)
	}
}

// Result carries either a success value or a failure value.
type Result[T, E any] struct {
	Value T
	Err   E
	Ok    bool
}

// OkResult returns a successful Result.
func OkResult[T, E any](v T) Result[T, E] {
	return Result[T, E]{Value: v, Ok: true}
}

// ErrResult returns a failed Result.
func ErrResult[T, E any](e E) Result[T, E] {
	return Result[T, E]{Err: e}
}

// EncodeBin writes the result in the tagged wire form, resolving the
// payload codec through the reflection engine. Use EncodeResult to supply
// explicit payload codecs instead.
func (r Result[T, E]) EncodeBin(s wire.Sink) error {
	if r.Ok {
		if err := wire.WriteU8(s, 1); err != nil {
			return err
		}
		return Encode(s, r.Value)
	}
	if err := wire.WriteU8(s, 0); err != nil {
		return err
	}
	return Encode(s, r.Err)
}

// DecodeBin reads a result written by EncodeBin or EncodeResult. The branch
// not taken is reset to its zero value.
func (r *Result[T, E]) DecodeBin(src wire.Source) error {
	tag, err := wire.ReadU8(src)
	if err != nil {
		return err
	}
	switch tag {
	case 1:
		var zero E
		r.Ok, r.Err = true, zero
		return Decode(src, &r.Value)
	case 0:
		var zero T
		r.Ok, r.Value = false, zero
		return Decode(src, &r.Err)
	default:
		return errors.InvalidDiscriminant(nil, tag)
	}
}

// EncodeResult writes a result: tag 1 and the success value, or tag 0 and
// the failure value. Note the polarity is the opposite of the optional tag;
// that asymmetry is part of the wire format.
func EncodeResult[T, E any](s wire.Sink, r Result[T, E], encT EncodeFunc[T], encE EncodeFunc[E]) error {
	if r.Ok {
		if err := wire.WriteU8(s, 1); err != nil {
			return err
		}
		return encT(s, r.Value)
	}
	if err := wire.WriteU8(s, 0); err != nil {
		return err
	}
	return encE(s, r.Err)
}

// DecodeResult reads a result encoded by EncodeResult.
func DecodeResult[T, E any](src wire.Source, decT DecodeFunc[T], decE DecodeFunc[E]) (Result[T, E], error) {
	var r Result[T, E]
	tag, err := wire.ReadU8(src)
	if err != nil {
		return r, err
	}
	switch tag {
	case 1:
		r.Ok = true
		r.Value, err = decT(src)
	case 0:
		r.Err, err = decE(src)
	default:
		return r, errors.InvalidDiscriminant(nil, tag)
	}
	return r, err
}

// EncodePair writes two elements in order with no prefix.
func EncodePair[T any](s wire.Sink, p [2]T, enc EncodeFunc[T]) error {
	if err := enc(s, p[0]); err != nil {
		return err
	}
	return enc(s, p[1])
}

// DecodePair reads two elements in order.
func DecodePair[T any](src wire.Source, dec DecodeFunc[T]) ([2]T, error) {
	var p [2]T
	var err error
	if p[0], err = dec(src); err != nil {
		return p, err
	}
	p[1], err = dec(src)
	return p, err
}

// EncodeTriple writes three elements in order with no prefix.
func EncodeTriple[T any](s wire.Sink, p [3]T, enc EncodeFunc[T]) error {
	for i := range p {
		if err := enc(s, p[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTriple reads three elements in order.
func DecodeTriple[T any](src wire.Source, dec DecodeFunc[T]) ([3]T, error) {
	var p [3]T
	var err error
	for i := range p {
		if p[i], err = dec(src); err != nil {
			return p, err
		}
	}
	return p, nil
}

// EncodeSeq writes a u32 count and the elements in slice order.
func EncodeSeq[T any](s wire.Sink, items []T, enc EncodeFunc[T]) error {
	if err := writeCount(s, len(items)); err != nil {
		return err
	}
	for i := range items {
		if err := enc(s, items[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSeq reads a sequence, preserving element order.
func DecodeSeq[T any](src wire.Source, dec DecodeFunc[T]) ([]T, error) {
	n, err := readCount(src)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, clampCap(src, n))
	for i := 0; i < n; i++ {
		v, err := dec(src)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeSet writes a u32 count and the elements in map iteration order,
// which is unspecified.
func EncodeSet[T comparable](s wire.Sink, set Set[T], enc EncodeFunc[T]) error {
	if err := writeCount(s, len(set)); err != nil {
		return err
	}
	for v := range set {
		if err := enc(s, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSet reads a hash set. Duplicate encoded elements collapse; the
// count prefix is the number of encoded elements, not the resulting size.
func DecodeSet[T comparable](src wire.Source, dec DecodeFunc[T]) (Set[T], error) {
	n, err := readCount(src)
	if err != nil {
		return nil, err
	}
	set := make(Set[T], clampCap(src, n))
	for i := 0; i < n; i++ {
		v, err := dec(src)
		if err != nil {
			return nil, err
		}
		set[v] = struct{}{}
	}
	return set, nil
}

// EncodeMap writes a u32 count and key/value pairs in map iteration order,
// which is unspecified.
func EncodeMap[K comparable, V any](s wire.Sink, m map[K]V, encK EncodeFunc[K], encV EncodeFunc[V]) error {
	if err := writeCount(s, len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := encK(s, k); err != nil {
			return err
		}
		if err := encV(s, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap reads a hash map. Duplicate encoded keys keep the last value.
func DecodeMap[K comparable, V any](src wire.Source, decK DecodeFunc[K], decV DecodeFunc[V]) (map[K]V, error) {
	n, err := readCount(src)
	if err != nil {
		return nil, err
	}
	m := make(map[K]V, clampCap(src, n))
	for i := 0; i < n; i++ {
		k, err := decK(src)
		if err != nil {
			return nil, err
		}
		v, err := decV(src)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// EncodeRune writes a code point as a u32 in the context order.
func EncodeRune(s wire.Sink, r rune) error {
	return wire.WriteU32(s, uint32(r))
}

// DecodeRune reads a code point written by EncodeRune. The value is not
// validated as a Unicode scalar.
func DecodeRune(src wire.Source) (rune, error) {
	v, err := wire.ReadU32(src)
	return rune(v), err
}

// EncodeInt writes a machine-word int as 64 bits so the width does not
// depend on the platform.
func EncodeInt(s wire.Sink, v int) error {
	return wire.WriteI64(s, int64(v))
}

// DecodeInt reads an int written by EncodeInt. On 32-bit platforms values
// outside the int range truncate.
func DecodeInt(src wire.Source) (int, error) {
	v, err := wire.ReadI64(src)
	return int(v), err
}

// EncodeUint writes a machine-word uint as 64 bits.
func EncodeUint(s wire.Sink, v uint) error {
	return wire.WriteU64(s, uint64(v))
}

// DecodeUint reads a uint written by EncodeUint.
func DecodeUint(src wire.Source) (uint, error) {
	v, err := wire.ReadU64(src)
	return uint(v), err
}
