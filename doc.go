// Package bincodec is a binary serialization codec with explicit control
// over integer byte order.
//
// It converts in-memory structured values into a compact byte stream and
// back. The wire format is fixed-layout and hand-auditable: no varints, no
// schema files, no version headers, no framing. What ends up on the wire is
// exactly the per-value rules, concatenated.
//
// # Quick start
//
//	type User struct {
//		ID    uint64
//		Name  string
//		Cache []byte `bin:"skip"`
//	}
//
//	data, err := bincodec.EncodeToBytes(User{ID: 1001, Name: "ab"})
//	// data: 8 bytes of 1001 LE, u32 length 2 LE, "ab"
//
//	var u User
//	err = bincodec.DecodeFromBytes(data, &u)
//
// Byte order is out-of-band: the decoder must be given the same Context the
// encoder used.
//
//	ctx := bincodec.NewContext(bincodec.BigEndian)
//	data, err := bincodec.EncodeWithContext(v, ctx)
//	err = bincodec.DecodeWithContext(data, &v, ctx)
//
// # Packages
//
//	byteorder - per-width conversion between values and LE/BE bytes
//	wire      - Context, the Sink/Source contracts, buffer and io.Writer
//	            implementations, typed read/write operations
//	codec     - the value codec contract, composite rules (optional,
//	            result, tuples, sequences, sets, maps), the reflection
//	            engine and its field plans
//	errors    - structured errors with phase, kind and field path
//
// This root package re-exports the everyday surface; the subpackages hold
// the full API.
//
// # Wire format summary
//
//	primitives     raw bytes at the type's width, context byte order
//	bool           one byte, 0 or 1 (decode: any nonzero byte is true)
//	string         u32 byte length + raw UTF-8
//	optional       tag 0 = absent, tag 1 = present + payload
//	result         tag 1 = success + payload, tag 0 = failure + payload
//	array [N]T     elements in order, no prefix
//	slice []T      u32 count + elements in order
//	map            u32 count + key/value pairs
//	struct         included fields in declaration order, nothing else
//
// Decoding is memory-safe against truncated and adversarial input: every
// read is bounds-checked and declared counts cannot force allocations
// beyond what the buffer actually holds.
package bincodec
