package wire

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
)

func TestBufferSink_Accumulates(t *testing.T) {
	s := NewBufferSink()

	if err := s.WriteRaw([]byte{1, 2}); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if err := s.WriteRaw([]byte{3}); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	if !bytes.Equal(s.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Bytes() = % x, want 01 02 03", s.Bytes())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
}

func TestBufferSource_CursorAdvance(t *testing.T) {
	src := NewBufferSource([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	b, err := src.ReadRaw(2)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if !bytes.Equal(b, []byte{0xAA, 0xBB}) {
		t.Errorf("ReadRaw(2) = % x", b)
	}
	if src.Position() != 2 || src.Remaining() != 2 {
		t.Errorf("position/remaining = %d/%d, want 2/2", src.Position(), src.Remaining())
	}

	if _, err := src.ReadRaw(2); err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}

	// Zero-length reads succeed at the end.
	if _, err := src.ReadRaw(0); err != nil {
		t.Errorf("ReadRaw(0) at end: %v", err)
	}
}

func TestBufferSource_Truncation(t *testing.T) {
	src := NewBufferSource([]byte{1, 2, 3})

	_, err := src.ReadRaw(4)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncatedInput}) {
		t.Fatalf("ReadRaw(4) over 3 bytes = %v, want truncated_input", err)
	}

	// A failed read must not move the cursor.
	if src.Position() != 0 {
		t.Errorf("position moved to %d on failed read", src.Position())
	}
	if _, err := src.ReadRaw(3); err != nil {
		t.Errorf("ReadRaw(3) after failed read: %v", err)
	}
}

func TestBufferSource_SetPositionClamps(t *testing.T) {
	src := NewBufferSource([]byte{1, 2, 3, 4})

	src.SetPosition(2)
	if src.Position() != 2 {
		t.Errorf("Position() = %d, want 2", src.Position())
	}

	// Past the end clamps to the length rather than failing.
	src.SetPosition(99)
	if src.Position() != 4 {
		t.Errorf("Position() after past-end SetPosition = %d, want 4", src.Position())
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}

	src.SetPosition(-1)
	if src.Position() != 0 {
		t.Errorf("Position() after negative SetPosition = %d, want 0", src.Position())
	}
}

func TestBufferSource_ReadAliasesBuffer(t *testing.T) {
	buf := []byte{1, 2, 3}
	src := NewBufferSource(buf)

	b, err := src.ReadRaw(3)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	buf[0] = 9
	if b[0] != 9 {
		t.Error("ReadRaw should alias the backing buffer, not copy")
	}
}

func TestBufferSink_ContextBinding(t *testing.T) {
	ctx := NewContext(byteorder.BigEndian)
	if got := NewBufferSinkWithContext(ctx).Context(); got != ctx {
		t.Errorf("Context() = %+v, want %+v", got, ctx)
	}
	if got := NewBufferSourceWithContext(nil, ctx).Context(); got != ctx {
		t.Errorf("Context() = %+v, want %+v", got, ctx)
	}
}
