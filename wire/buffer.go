package wire

import "github.com/wippyai/bincodec/errors"

// BufferSink accumulates encoded bytes in memory. The zero cost of growing a
// slice means WriteRaw never fails.
type BufferSink struct {
	buf []byte
	ctx Context
}

// NewBufferSink returns a sink with the default little-endian context.
func NewBufferSink() *BufferSink {
	return NewBufferSinkWithContext(DefaultContext())
}

// NewBufferSinkWithContext returns a sink bound to ctx.
func NewBufferSinkWithContext(ctx Context) *BufferSink {
	return &BufferSink{ctx: ctx}
}

func (s *BufferSink) Context() Context {
	return s.ctx
}

func (s *BufferSink) WriteRaw(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

// Bytes returns the accumulated buffer. The slice is owned by the sink;
// further writes may reallocate it.
func (s *BufferSink) Bytes() []byte {
	return s.buf
}

// Len reports the number of bytes written so far.
func (s *BufferSink) Len() int {
	return len(s.buf)
}

// Reset discards the accumulated bytes, keeping the context and capacity.
func (s *BufferSink) Reset() {
	s.buf = s.buf[:0]
}

// BufferSource reads from a fixed byte slice behind an advancing cursor.
// The cursor stays within [0, len(buffer)]; a read of n bytes succeeds only
// if n bytes remain.
type BufferSource struct {
	buf []byte
	pos int
	ctx Context
}

// NewBufferSource returns a source over b with the default little-endian
// context. The source aliases b; it does not copy.
func NewBufferSource(b []byte) *BufferSource {
	return NewBufferSourceWithContext(b, DefaultContext())
}

// NewBufferSourceWithContext returns a source over b bound to ctx.
func NewBufferSourceWithContext(b []byte, ctx Context) *BufferSource {
	return &BufferSource{buf: b, ctx: ctx}
}

func (s *BufferSource) Context() Context {
	return s.ctx
}

func (s *BufferSource) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("read length %d does not fit the platform int", n).
			Build()
	}
	if n > len(s.buf)-s.pos {
		return nil, errors.Truncated(nil, n, len(s.buf)-s.pos)
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// Remaining reports the number of bytes not yet consumed.
func (s *BufferSource) Remaining() int {
	return len(s.buf) - s.pos
}

// Position returns the current cursor offset.
func (s *BufferSource) Position() int {
	return s.pos
}

// SetPosition moves the cursor to pos. Positions past the end clamp to the
// buffer length and negative positions clamp to zero; no error is returned.
func (s *BufferSource) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.buf) {
		pos = len(s.buf)
	}
	s.pos = pos
}
