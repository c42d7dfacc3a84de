package byteorder

// Uint128 is an unsigned 128-bit integer as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From64 widens a uint64.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128 is a signed two's-complement 128-bit integer. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 sign-extends an int64.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Unsigned reinterprets the bits as a Uint128.
func (v Int128) Unsigned() Uint128 {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
}

// Signed reinterprets the bits as an Int128.
func (v Uint128) Signed() Int128 {
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}
