package wire

import "go.uber.org/zap"

// TraceSink wraps a Sink and logs every raw write with its offset, for
// auditing wire layout during development. The wrapped sink's context and
// error behavior are unchanged.
type TraceSink struct {
	inner  Sink
	log    *zap.Logger
	offset int
}

// NewTraceSink wraps inner, logging through the package logger.
func NewTraceSink(inner Sink) *TraceSink {
	return &TraceSink{inner: inner, log: Logger()}
}

// NewTraceSinkWithLogger wraps inner, logging through l.
func NewTraceSinkWithLogger(inner Sink, l *zap.Logger) *TraceSink {
	return &TraceSink{inner: inner, log: l}
}

func (s *TraceSink) Context() Context {
	return s.inner.Context()
}

func (s *TraceSink) WriteRaw(p []byte) error {
	err := s.inner.WriteRaw(p)
	s.log.Debug("write",
		zap.Int("offset", s.offset),
		zap.Int("len", len(p)),
		zap.Binary("bytes", p),
		zap.Error(err),
	)
	if err == nil {
		s.offset += len(p)
	}
	return err
}

// TraceSource wraps a Source and logs every raw read with its offset.
type TraceSource struct {
	inner  Source
	log    *zap.Logger
	offset int
}

// NewTraceSource wraps inner, logging through the package logger.
func NewTraceSource(inner Source) *TraceSource {
	return &TraceSource{inner: inner, log: Logger()}
}

// NewTraceSourceWithLogger wraps inner, logging through l.
func NewTraceSourceWithLogger(inner Source, l *zap.Logger) *TraceSource {
	return &TraceSource{inner: inner, log: l}
}

func (s *TraceSource) Context() Context {
	return s.inner.Context()
}

func (s *TraceSource) ReadRaw(n int) ([]byte, error) {
	b, err := s.inner.ReadRaw(n)
	s.log.Debug("read",
		zap.Int("offset", s.offset),
		zap.Int("len", n),
		zap.Binary("bytes", b),
		zap.Error(err),
	)
	if err == nil {
		s.offset += n
	}
	return b, err
}
