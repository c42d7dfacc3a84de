package wire

import "github.com/wippyai/bincodec/byteorder"

// Context holds the byte order for one encode or decode operation. It is an
// immutable value; every multi-byte conversion within the operation reads
// the same Context.
type Context struct {
	Order byteorder.Order
}

// DefaultContext returns the little-endian context used when the caller does
// not choose an order.
func DefaultContext() Context {
	return Context{Order: byteorder.LittleEndian}
}

// NewContext returns a context with the given byte order.
func NewContext(order byteorder.Order) Context {
	return Context{Order: order}
}
