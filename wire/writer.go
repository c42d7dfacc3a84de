package wire

import (
	"io"

	"github.com/wippyai/bincodec/errors"
)

// WriterSink adapts an io.Writer into a Sink. A failed or short write
// surfaces as a sink_failure error and poisons the sink: every later write
// returns the same error, so an aborted encode cannot partially resume.
type WriterSink struct {
	w   io.Writer
	ctx Context
	err error
}

// NewWriterSink returns a sink writing to w with the default context.
func NewWriterSink(w io.Writer) *WriterSink {
	return NewWriterSinkWithContext(w, DefaultContext())
}

// NewWriterSinkWithContext returns a sink writing to w bound to ctx.
func NewWriterSinkWithContext(w io.Writer, ctx Context) *WriterSink {
	return &WriterSink{w: w, ctx: ctx}
}

func (s *WriterSink) Context() Context {
	return s.ctx
}

func (s *WriterSink) WriteRaw(p []byte) error {
	if s.err != nil {
		return s.err
	}
	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = errors.SinkFailure(err)
		return s.err
	}
	return nil
}

// Err returns the sticky write error, if any.
func (s *WriterSink) Err() error {
	return s.err
}
