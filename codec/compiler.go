package codec

import (
	"reflect"
	"sync"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
)

// SkipTag is the struct tag value marking a field the codec must not carry:
// `bin:"skip"`. Skipped fields contribute zero bytes on encode and are
// reset to their zero value on decode.
const SkipTag = "skip"

var (
	encodableType = reflect.TypeOf((*Encodable)(nil)).Elem()
	decodableType = reflect.TypeOf((*Decodable)(nil)).Elem()
	uint128Type   = reflect.TypeOf(byteorder.Uint128{})
	int128Type    = reflect.TypeOf(byteorder.Int128{})
	byteType      = reflect.TypeOf(byte(0))
)

// Compiler builds and caches per-type field plans for the reflection
// engine. A plan records, for each node of the type tree, the wire rule to
// apply; the walk itself then runs without repeated reflection lookups.
// Compiler is safe for concurrent use.
type Compiler struct {
	cache sync.Map // reflect.Type -> *plan
}

// NewCompiler returns an empty compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

type plan struct {
	typ    reflect.Type
	elem   *plan // slice/array/pointer element
	key    *plan // map key
	val    *plan // map value
	fields []fieldPlan
	kind   typeKind
}

type fieldPlan struct {
	plan  *plan
	name  string
	index int
	skip  bool
}

// planFor returns the cached plan for t, compiling it on first use.
func (c *Compiler) planFor(t reflect.Type) (*plan, error) {
	if cached, ok := c.cache.Load(t); ok {
		return cached.(*plan), nil
	}
	p, err := c.compile(t, nil, make(map[reflect.Type]*plan))
	if err != nil {
		return nil, err
	}
	c.cache.Store(t, p)
	return p, nil
}

// compile builds the plan for t. visiting holds in-progress plans so
// recursive types (a struct reaching itself through a pointer) terminate.
func (c *Compiler) compile(t reflect.Type, path []string, visiting map[reflect.Type]*plan) (*plan, error) {
	if cached, ok := c.cache.Load(t); ok {
		return cached.(*plan), nil
	}
	if p, ok := visiting[t]; ok {
		return p, nil
	}

	p := &plan{typ: t}
	visiting[t] = p

	// 128-bit integers have their own wire layout; they must not fall
	// through to the generic struct rule, which would emit the halves in
	// field order instead of context order.
	switch t {
	case uint128Type:
		p.kind = kindU128
		return p, nil
	case int128Type:
		p.kind = kindI128
		return p, nil
	}

	if selfCodec(t) {
		if err := checkSelfCodec(t, path); err != nil {
			return nil, err
		}
		p.kind = kindSelf
		return p, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		p.kind = kindBool
	case reflect.Int8:
		p.kind = kindI8
	case reflect.Int16:
		p.kind = kindI16
	case reflect.Int32:
		p.kind = kindI32
	case reflect.Int64:
		p.kind = kindI64
	case reflect.Int:
		p.kind = kindInt
	case reflect.Uint8:
		p.kind = kindU8
	case reflect.Uint16:
		p.kind = kindU16
	case reflect.Uint32:
		p.kind = kindU32
	case reflect.Uint64:
		p.kind = kindU64
	case reflect.Uint:
		p.kind = kindUint
	case reflect.Float32:
		p.kind = kindF32
	case reflect.Float64:
		p.kind = kindF64
	case reflect.String:
		p.kind = kindString

	case reflect.Struct:
		p.kind = kindStruct
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fp := fieldPlan{name: f.Name, index: i}
			if f.Tag.Get("bin") == SkipTag {
				fp.skip = true
				p.fields = append(p.fields, fp)
				continue
			}
			sub, err := c.compile(f.Type, append(path, f.Name), visiting)
			if err != nil {
				return nil, err
			}
			fp.plan = sub
			p.fields = append(p.fields, fp)
		}

	case reflect.Pointer:
		p.kind = kindPointer
		sub, err := c.compile(t.Elem(), path, visiting)
		if err != nil {
			return nil, err
		}
		p.elem = sub

	case reflect.Slice:
		p.kind = kindSlice
		sub, err := c.compile(t.Elem(), path, visiting)
		if err != nil {
			return nil, err
		}
		p.elem = sub

	case reflect.Array:
		p.kind = kindArray
		sub, err := c.compile(t.Elem(), path, visiting)
		if err != nil {
			return nil, err
		}
		p.elem = sub

	case reflect.Map:
		p.kind = kindMap
		key, err := c.compile(t.Key(), append(path, "(key)"), visiting)
		if err != nil {
			return nil, err
		}
		val, err := c.compile(t.Elem(), append(path, "(value)"), visiting)
		if err != nil {
			return nil, err
		}
		p.key, p.val = key, val

	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(t.String()).
			Detail("kind %s has no wire representation", t.Kind()).
			Build()
	}

	return p, nil
}

// selfCodec reports whether t carries its own EncodeBin/DecodeBin methods.
// Methods are looked up on *T so pointer-receiver implementations count.
func selfCodec(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(encodableType) || pt.Implements(decodableType)
}

// checkSelfCodec requires both halves of the contract: a type implementing
// only one would encode bytes it cannot decode, or the reverse.
func checkSelfCodec(t reflect.Type, path []string) error {
	pt := reflect.PointerTo(t)
	if !pt.Implements(encodableType) {
		return errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(t.String()).
			Detail("implements Decodable but not Encodable").
			Build()
	}
	if !pt.Implements(decodableType) {
		return errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(t.String()).
			Detail("implements Encodable but not Decodable").
			Build()
	}
	return nil
}
