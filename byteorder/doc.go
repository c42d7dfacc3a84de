// Package byteorder implements the byte-order conversion layer of the codec.
//
// An Order selects between little-endian and big-endian representation for
// every multi-byte primitive width the wire format carries: 16/32/64/128-bit
// integers and IEEE 754 single/double floats. Single-byte values never pass
// through this package; order is meaningless for one byte.
//
// Conversions are total: there are no error returns. Callers pass slices of
// exactly the type's width (2, 4, 8 or 16 bytes); shorter slices panic, the
// same contract encoding/binary uses.
//
// Go has no native 128-bit integers, so the package defines Uint128 and
// Int128 as pairs of 64-bit halves. They carry no arithmetic; they exist so
// 128-bit wire values round-trip losslessly.
package byteorder
