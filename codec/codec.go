package codec

import (
	"reflect"

	"github.com/wippyai/bincodec/errors"
	"github.com/wippyai/bincodec/wire"
)

// Encodable is implemented by types that write themselves to a sink.
type Encodable interface {
	EncodeBin(s wire.Sink) error
}

// Decodable is implemented by types that reconstruct themselves from a
// source. Implementations mutate the receiver, so the method lives on a
// pointer.
type Decodable interface {
	DecodeBin(src wire.Source) error
}

// EncodeFunc encodes one value of type T to a sink. The typed write
// functions in package wire satisfy this directly.
type EncodeFunc[T any] func(wire.Sink, T) error

// DecodeFunc decodes one value of type T from a source.
type DecodeFunc[T any] func(wire.Source) (T, error)

var defaultCompiler = NewCompiler()

// EncodeToBytes encodes v with the default little-endian context and
// returns the wire bytes.
func EncodeToBytes(v any) ([]byte, error) {
	return EncodeWithContext(v, wire.DefaultContext())
}

// EncodeWithContext encodes v with the given context.
func EncodeWithContext(v any, ctx wire.Context) ([]byte, error) {
	s := wire.NewBufferSinkWithContext(ctx)
	if err := Encode(s, v); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// Encode writes v to s. Values implementing Encodable use their own method;
// everything else goes through the reflection engine. A nil pointer always
// takes the reflection pointer rule, which writes the absent tag, even when
// its type carries codec methods; dispatching would call EncodeBin on a nil
// receiver.
func Encode(s wire.Sink, v any) error {
	if v == nil {
		return errors.New(errors.PhaseEncode, errors.KindNilPointer).
			Detail("cannot encode untyped nil").
			Build()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return defaultCompiler.encodeReflect(s, rv)
	}
	if e, ok := v.(Encodable); ok {
		return e.EncodeBin(s)
	}
	return defaultCompiler.encodeReflect(s, rv)
}

// DecodeFromBytes decodes data into out with the default little-endian
// context. out must be a non-nil pointer (or a Decodable).
func DecodeFromBytes(data []byte, out any) error {
	return DecodeWithContext(data, out, wire.DefaultContext())
}

// DecodeWithContext decodes data into out with the given context.
func DecodeWithContext(data []byte, out any, ctx wire.Context) error {
	return Decode(wire.NewBufferSourceWithContext(data, ctx), out)
}

// Decode reads the next value from src into out.
func Decode(src wire.Source, out any) error {
	if out == nil {
		return errors.New(errors.PhaseDecode, errors.KindNilPointer).
			Detail("decode destination is nil").
			Build()
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindNilPointer).
			GoType(rv.Type().String()).
			Detail("decode destination is a nil pointer").
			Build()
	}
	if d, ok := out.(Decodable); ok {
		return d.DecodeBin(src)
	}
	if rv.Kind() != reflect.Pointer {
		return errors.TypeMismatch(errors.PhaseDecode, nil, rv.Type().String(),
			"decode destination must be a pointer")
	}
	return defaultCompiler.decodeReflect(src, rv.Elem())
}
