// Package wire defines the byte sink/source contracts of the codec and their
// buffer-backed implementations.
//
// # Context
//
// A Context fixes the byte order for one whole encode or decode operation.
// Every sink and source is bound to a Context for its lifetime; every
// multi-byte value written through it uses that order.
//
// # Contracts
//
// Sink is an append-only destination for raw bytes; Source is a
// bounds-checked origin. Both expose only the raw operation plus their
// Context. Typed operations (fixed-width integers, floats, booleans,
// length-prefixed strings) are package functions layered on the raw
// contract, so every implementation gets them for free:
//
//	s := wire.NewBufferSink()
//	wire.WriteU32(s, 0xCAFE)
//	wire.WriteString(s, "hello")
//	payload := s.Bytes()
//
// # Implementations
//
//	BufferSink   - growable in-memory accumulator; WriteRaw never fails
//	BufferSource - cursor over a fixed byte slice; reads past the end fail
//	               with truncated_input, the cursor never moves past length
//	WriterSink   - adapts an io.Writer; write errors surface as sink_failure
//	               and abort the encode
//
// BufferSource.ReadRaw returns subslices of the underlying buffer without
// copying. The data is valid as long as the buffer is; callers that retain
// it across buffer mutation must copy.
//
// # Wire format
//
// Strings are a 4-byte unsigned length prefix (byte count, context order)
// followed by raw UTF-8. Booleans are one byte, 0 or 1; decoding treats any
// nonzero byte as true. 128-bit integers are the two 64-bit halves in
// context order (low half first for little-endian).
//
// # Tracing
//
// TraceSink and TraceSource wrap any sink/source and log each raw operation
// through a zap logger, for auditing wire layout during development. The
// package logger defaults to a nop; install one with SetLogger.
package wire
