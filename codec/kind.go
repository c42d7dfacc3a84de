package codec

// typeKind is the dispatch tag a compiled plan stores for each node of a
// type tree.
type typeKind uint8

const (
	kindInvalid typeKind = iota
	kindBool
	kindI8
	kindI16
	kindI32
	kindI64
	kindInt
	kindU8
	kindU16
	kindU32
	kindU64
	kindUint
	kindU128
	kindI128
	kindF32
	kindF64
	kindString
	kindStruct
	kindPointer
	kindSlice
	kindArray
	kindMap
	kindSelf
)

func (k typeKind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindI8:
		return "i8"
	case kindI16:
		return "i16"
	case kindI32:
		return "i32"
	case kindI64:
		return "i64"
	case kindInt:
		return "int"
	case kindU8:
		return "u8"
	case kindU16:
		return "u16"
	case kindU32:
		return "u32"
	case kindU64:
		return "u64"
	case kindUint:
		return "uint"
	case kindU128:
		return "u128"
	case kindI128:
		return "i128"
	case kindF32:
		return "f32"
	case kindF64:
		return "f64"
	case kindString:
		return "string"
	case kindStruct:
		return "struct"
	case kindPointer:
		return "pointer"
	case kindSlice:
		return "slice"
	case kindArray:
		return "array"
	case kindMap:
		return "map"
	case kindSelf:
		return "self-codec"
	default:
		return "invalid"
	}
}
