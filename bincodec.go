package bincodec

import (
	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/codec"
	"github.com/wippyai/bincodec/wire"
)

// Re-exported types for the common path; see the subpackages for the full
// API surface.
type (
	Order     = byteorder.Order
	Uint128   = byteorder.Uint128
	Int128    = byteorder.Int128
	Context   = wire.Context
	Sink      = wire.Sink
	Source    = wire.Source
	Encodable = codec.Encodable
	Decodable = codec.Decodable
)

const (
	LittleEndian = byteorder.LittleEndian
	BigEndian    = byteorder.BigEndian
)

// NewContext returns a context with the given byte order.
func NewContext(order Order) Context {
	return wire.NewContext(order)
}

// Entry points, re-exported from package codec.
var (
	EncodeToBytes     = codec.EncodeToBytes
	EncodeWithContext = codec.EncodeWithContext
	DecodeFromBytes   = codec.DecodeFromBytes
	DecodeWithContext = codec.DecodeWithContext
)
