package codec

import (
	"reflect"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
	"github.com/wippyai/bincodec/wire"
)

// encodeReflect encodes v through its compiled plan.
func (c *Compiler) encodeReflect(s wire.Sink, v reflect.Value) error {
	p, err := c.planFor(v.Type())
	if err != nil {
		return err
	}
	return c.encodeValue(s, p, v)
}

func (c *Compiler) encodeValue(s wire.Sink, p *plan, v reflect.Value) error {
	switch p.kind {
	case kindBool:
		return wire.WriteBool(s, v.Bool())
	case kindI8:
		return wire.WriteI8(s, int8(v.Int()))
	case kindI16:
		return wire.WriteI16(s, int16(v.Int()))
	case kindI32:
		return wire.WriteI32(s, int32(v.Int()))
	case kindI64, kindInt:
		return wire.WriteI64(s, v.Int())
	case kindU8:
		return wire.WriteU8(s, uint8(v.Uint()))
	case kindU16:
		return wire.WriteU16(s, uint16(v.Uint()))
	case kindU32:
		return wire.WriteU32(s, uint32(v.Uint()))
	case kindU64, kindUint:
		return wire.WriteU64(s, v.Uint())
	case kindU128:
		return wire.WriteU128(s, v.Interface().(byteorder.Uint128))
	case kindI128:
		return wire.WriteI128(s, v.Interface().(byteorder.Int128))
	case kindF32:
		return wire.WriteF32(s, float32(v.Float()))
	case kindF64:
		return wire.WriteF64(s, v.Float())
	case kindString:
		return wire.WriteString(s, v.String())

	case kindSelf:
		return asEncodable(v).EncodeBin(s)

	case kindStruct:
		for i := range p.fields {
			fp := &p.fields[i]
			if fp.skip {
				continue
			}
			if err := c.encodeValue(s, fp.plan, v.Field(fp.index)); err != nil {
				return err
			}
		}
		return nil

	case kindPointer:
		if v.IsNil() {
			return wire.WriteU8(s, 0)
		}
		if err := wire.WriteU8(s, 1); err != nil {
			return err
		}
		return c.encodeValue(s, p.elem, v.Elem())

	case kindSlice:
		if err := writeCount(s, v.Len()); err != nil {
			return err
		}
		if p.typ.Elem() == byteType {
			return s.WriteRaw(v.Bytes())
		}
		for i := 0; i < v.Len(); i++ {
			if err := c.encodeValue(s, p.elem, v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case kindArray:
		// Fixed arity: elements in order, no count prefix.
		for i := 0; i < v.Len(); i++ {
			if err := c.encodeValue(s, p.elem, v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case kindMap:
		if err := writeCount(s, v.Len()); err != nil {
			return err
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := c.encodeValue(s, p.key, iter.Key()); err != nil {
				return err
			}
			if err := c.encodeValue(s, p.val, iter.Value()); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			GoType(p.typ.String()).
			Detail("no encode rule for kind %s", p.kind).
			Build()
	}
}

// asEncodable extracts the self-codec from v. Pointer-receiver
// implementations need an addressable value; non-addressable ones (a struct
// passed by value through an interface) are copied first.
func asEncodable(v reflect.Value) Encodable {
	if e, ok := v.Interface().(Encodable); ok {
		return e
	}
	if !v.CanAddr() {
		tmp := reflect.New(v.Type())
		tmp.Elem().Set(v)
		return tmp.Interface().(Encodable)
	}
	return v.Addr().Interface().(Encodable)
}

// decodeReflect decodes from src into the settable value v.
func (c *Compiler) decodeReflect(src wire.Source, v reflect.Value) error {
	p, err := c.planFor(v.Type())
	if err != nil {
		return err
	}
	return c.decodeValue(src, p, v)
}

func (c *Compiler) decodeValue(src wire.Source, p *plan, v reflect.Value) error {
	switch p.kind {
	case kindBool:
		b, err := wire.ReadBool(src)
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case kindI8:
		x, err := wire.ReadI8(src)
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case kindI16:
		x, err := wire.ReadI16(src)
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case kindI32:
		x, err := wire.ReadI32(src)
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case kindI64, kindInt:
		x, err := wire.ReadI64(src)
		if err != nil {
			return err
		}
		v.SetInt(x)
		return nil
	case kindU8:
		x, err := wire.ReadU8(src)
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case kindU16:
		x, err := wire.ReadU16(src)
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case kindU32:
		x, err := wire.ReadU32(src)
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case kindU64, kindUint:
		x, err := wire.ReadU64(src)
		if err != nil {
			return err
		}
		v.SetUint(x)
		return nil
	case kindU128:
		x, err := wire.ReadU128(src)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(x))
		return nil
	case kindI128:
		x, err := wire.ReadI128(src)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(x))
		return nil
	case kindF32:
		x, err := wire.ReadF32(src)
		if err != nil {
			return err
		}
		v.SetFloat(float64(x))
		return nil
	case kindF64:
		x, err := wire.ReadF64(src)
		if err != nil {
			return err
		}
		v.SetFloat(x)
		return nil
	case kindString:
		x, err := wire.ReadString(src)
		if err != nil {
			return err
		}
		v.SetString(x)
		return nil

	case kindSelf:
		return v.Addr().Interface().(Decodable).DecodeBin(src)

	case kindStruct:
		for i := range p.fields {
			fp := &p.fields[i]
			if fp.skip {
				// Whatever the field held at encode time is gone; the
				// decode side always lands on the zero value.
				v.Field(fp.index).SetZero()
				continue
			}
			if err := c.decodeValue(src, fp.plan, v.Field(fp.index)); err != nil {
				return err
			}
		}
		return nil

	case kindPointer:
		tag, err := wire.ReadU8(src)
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			v.SetZero()
			return nil
		case 1:
			v.Set(reflect.New(p.typ.Elem()))
			return c.decodeValue(src, p.elem, v.Elem())
		default:
			return errors.InvalidDiscriminant(nil, tag)
		}

	case kindSlice:
		n, err := readCount(src)
		if err != nil {
			return err
		}
		if p.typ.Elem() == byteType {
			raw, err := src.ReadRaw(n)
			if err != nil {
				return err
			}
			out := reflect.MakeSlice(p.typ, n, n)
			reflect.Copy(out, reflect.ValueOf(raw))
			v.Set(out)
			return nil
		}
		out := reflect.MakeSlice(p.typ, 0, clampCap(src, n))
		elem := reflect.New(p.typ.Elem()).Elem()
		for i := 0; i < n; i++ {
			elem.SetZero()
			if err := c.decodeValue(src, p.elem, elem); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		}
		v.Set(out)
		return nil

	case kindArray:
		for i := 0; i < v.Len(); i++ {
			if err := c.decodeValue(src, p.elem, v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case kindMap:
		n, err := readCount(src)
		if err != nil {
			return err
		}
		m := reflect.MakeMapWithSize(p.typ, clampCap(src, n))
		key := reflect.New(p.typ.Key()).Elem()
		val := reflect.New(p.typ.Elem()).Elem()
		for i := 0; i < n; i++ {
			key.SetZero()
			val.SetZero()
			if err := c.decodeValue(src, p.key, key); err != nil {
				return err
			}
			if err := c.decodeValue(src, p.val, val); err != nil {
				return err
			}
			m.SetMapIndex(key, val)
		}
		v.Set(m)
		return nil

	default:
		return errors.New(errors.PhaseDecode, errors.KindUnsupported).
			GoType(p.typ.String()).
			Detail("no decode rule for kind %s", p.kind).
			Build()
	}
}
