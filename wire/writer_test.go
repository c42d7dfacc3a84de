package wire

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/bincodec/errors"
)

type failingWriter struct {
	limit int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, stderrors.New("disk full")
	}
	w.n += len(p)
	return len(p), nil
}

func TestWriterSink_PassesWritesThrough(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	if err := WriteU16(s, 0x0102); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x02, 0x01}) {
		t.Errorf("written bytes = % x", buf.Bytes())
	}
}

func TestWriterSink_FailureIsSinkFailure(t *testing.T) {
	s := NewWriterSink(&failingWriter{limit: 4})

	if err := WriteU32(s, 1); err != nil {
		t.Fatalf("first write should fit: %v", err)
	}

	err := WriteU32(s, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindSinkFailure}) {
		t.Fatalf("overflowing write = %v, want sink_failure", err)
	}

	// The sink is poisoned: later writes return the same error.
	if err2 := WriteU8(s, 0); err2 != err {
		t.Errorf("write after failure = %v, want the original error", err2)
	}
	if s.Err() != err {
		t.Errorf("Err() = %v, want the original error", s.Err())
	}
}

func TestWriterSink_ShortWrite(t *testing.T) {
	// A writer that claims success but writes short.
	short := writerFunc(func(p []byte) (int, error) { return len(p) - 1, nil })
	s := NewWriterSink(short)

	err := WriteU32(s, 1)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindSinkFailure}) {
		t.Errorf("short write = %v, want sink_failure", err)
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
