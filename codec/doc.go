// Package codec implements the value codec contract: how typed values map to
// the wire format defined by package wire.
//
// # Contract
//
// A type participates by implementing Encodable and Decodable:
//
//	type Encodable interface { EncodeBin(s wire.Sink) error }
//	type Decodable interface { DecodeBin(src wire.Source) error }
//
// DecodeBin mutates its receiver in place, so it is implemented on a
// pointer. Any conforming type can nest inside any composite, recursively;
// depth is bounded only by the stack.
//
// # Entry points
//
//	data, err := codec.EncodeToBytes(v)            // little-endian
//	data, err := codec.EncodeWithContext(v, ctx)   // caller-chosen order
//	err := codec.DecodeFromBytes(data, &v)
//	err := codec.DecodeWithContext(data, &v, ctx)
//
// Values implementing the contract are dispatched to their own methods.
// Everything else goes through the reflection engine, which compiles a
// per-type field plan once and caches it (see Compiler). Struct fields
// tagged `bin:"skip"` contribute zero bytes on encode and are reset to
// their zero value on decode; they are never round-tripped.
//
// # Composite rules
//
// All count and length prefixes are unsigned 32-bit in the context order.
//
//	optional       tag byte 0 = absent, 1 = present + payload
//	result         tag byte 1 = success + payload, 0 = failure + payload
//	pair/triple    elements in order, no prefix
//	sequence       u32 count + elements in order
//	hash set/map   u32 count + elements/pairs, iteration order unspecified
//	sorted set/map u32 count + elements/pairs ascending by key
//
// The optional and result tags have opposite polarity. That asymmetry is
// part of the wire format and is preserved exactly.
//
// Nil slices and maps are indistinguishable from empty ones on the wire:
// both encode as a zero count, and decoding a zero count always yields an
// empty, non-nil slice or map. Use a pointer when absence must survive a
// round trip.
//
// Generic composite helpers take element codec functions, so nesting is
// unlimited and primitives compose directly:
//
//	codec.EncodeSeq(s, ids, wire.WriteU64)
//	codec.EncodeMap(s, m, wire.WriteString, wire.WriteU32)
//
// # Decode safety
//
// Decoding is safe against truncated and adversarial input: raw reads are
// bounds-checked, declared counts above MaxSeqLen are rejected before
// allocation, and initial allocations are clamped by the bytes actually
// remaining in the source, so a forged count cannot force a large
// allocation from a short buffer.
//
// # Failure policy
//
// Any nested failure aborts the whole operation and propagates the
// innermost error unchanged. There are no partial results and no recovery.
package codec
