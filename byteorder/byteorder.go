package byteorder

import (
	"encoding/binary"
	"math"
)

// Order selects the byte order for multi-byte primitive conversion.
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// byteOrder returns the stdlib order backing the conversions up to 64 bits.
func (o Order) byteOrder() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PutUint16 writes v into the first 2 bytes of b.
func (o Order) PutUint16(b []byte, v uint16) {
	o.byteOrder().PutUint16(b, v)
}

// Uint16 reads a uint16 from the first 2 bytes of b.
func (o Order) Uint16(b []byte) uint16 {
	return o.byteOrder().Uint16(b)
}

// PutUint32 writes v into the first 4 bytes of b.
func (o Order) PutUint32(b []byte, v uint32) {
	o.byteOrder().PutUint32(b, v)
}

// Uint32 reads a uint32 from the first 4 bytes of b.
func (o Order) Uint32(b []byte) uint32 {
	return o.byteOrder().Uint32(b)
}

// PutUint64 writes v into the first 8 bytes of b.
func (o Order) PutUint64(b []byte, v uint64) {
	o.byteOrder().PutUint64(b, v)
}

// Uint64 reads a uint64 from the first 8 bytes of b.
func (o Order) Uint64(b []byte) uint64 {
	return o.byteOrder().Uint64(b)
}

// PutUint128 writes v into the first 16 bytes of b. Little-endian places the
// low half first; big-endian places the high half first.
func (o Order) PutUint128(b []byte, v Uint128) {
	_ = b[15]
	if o == BigEndian {
		binary.BigEndian.PutUint64(b[0:8], v.Hi)
		binary.BigEndian.PutUint64(b[8:16], v.Lo)
		return
	}
	binary.LittleEndian.PutUint64(b[0:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:16], v.Hi)
}

// Uint128 reads a Uint128 from the first 16 bytes of b.
func (o Order) Uint128(b []byte) Uint128 {
	_ = b[15]
	if o == BigEndian {
		return Uint128{
			Hi: binary.BigEndian.Uint64(b[0:8]),
			Lo: binary.BigEndian.Uint64(b[8:16]),
		}
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// PutFloat32 writes the IEEE 754 bits of v into the first 4 bytes of b.
func (o Order) PutFloat32(b []byte, v float32) {
	o.byteOrder().PutUint32(b, math.Float32bits(v))
}

// Float32 reads an IEEE 754 single from the first 4 bytes of b.
func (o Order) Float32(b []byte) float32 {
	return math.Float32frombits(o.byteOrder().Uint32(b))
}

// PutFloat64 writes the IEEE 754 bits of v into the first 8 bytes of b.
func (o Order) PutFloat64(b []byte, v float64) {
	o.byteOrder().PutUint64(b, math.Float64bits(v))
}

// Float64 reads an IEEE 754 double from the first 8 bytes of b.
func (o Order) Float64(b []byte) float64 {
	return math.Float64frombits(o.byteOrder().Uint64(b))
}
