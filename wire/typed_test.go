package wire

import (
	"bytes"
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/errors"
)

func TestWriteU32_ByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order byteorder.Order
		want  []byte
	}{
		{"little-endian", byteorder.LittleEndian, []byte{0x04, 0x03, 0x02, 0x01}},
		{"big-endian", byteorder.BigEndian, []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBufferSinkWithContext(NewContext(tt.order))
			if err := WriteU32(s, 0x01020304); err != nil {
				t.Fatalf("WriteU32: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tt.want) {
				t.Errorf("WriteU32(0x01020304) = % x, want % x", s.Bytes(), tt.want)
			}

			src := NewBufferSourceWithContext(s.Bytes(), NewContext(tt.order))
			got, err := ReadU32(src)
			if err != nil {
				t.Fatalf("ReadU32: %v", err)
			}
			if got != 0x01020304 {
				t.Errorf("ReadU32 = %#x, want 0x01020304", got)
			}
		})
	}
}

func TestTypedRoundTrip(t *testing.T) {
	for _, order := range []byteorder.Order{byteorder.LittleEndian, byteorder.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			ctx := NewContext(order)
			s := NewBufferSinkWithContext(ctx)

			u128 := byteorder.Uint128{Hi: 7, Lo: math.MaxUint64}
			i128 := byteorder.Int128From64(-12345)

			writes := []error{
				WriteU8(s, 0xFE),
				WriteI8(s, -3),
				WriteU16(s, 0xBEEF),
				WriteI16(s, -2),
				WriteU32(s, 0xDEADBEEF),
				WriteI32(s, -40000),
				WriteU64(s, math.MaxUint64),
				WriteI64(s, math.MinInt64),
				WriteU128(s, u128),
				WriteI128(s, i128),
				WriteF32(s, 1.5),
				WriteF64(s, -math.Pi),
				WriteBool(s, true),
				WriteBool(s, false),
				WriteString(s, "héllo"),
			}
			for i, err := range writes {
				if err != nil {
					t.Fatalf("write %d: %v", i, err)
				}
			}

			src := NewBufferSourceWithContext(s.Bytes(), ctx)
			if v, _ := ReadU8(src); v != 0xFE {
				t.Errorf("u8 = %#x", v)
			}
			if v, _ := ReadI8(src); v != -3 {
				t.Errorf("i8 = %d", v)
			}
			if v, _ := ReadU16(src); v != 0xBEEF {
				t.Errorf("u16 = %#x", v)
			}
			if v, _ := ReadI16(src); v != -2 {
				t.Errorf("i16 = %d", v)
			}
			if v, _ := ReadU32(src); v != 0xDEADBEEF {
				t.Errorf("u32 = %#x", v)
			}
			if v, _ := ReadI32(src); v != -40000 {
				t.Errorf("i32 = %d", v)
			}
			if v, _ := ReadU64(src); v != math.MaxUint64 {
				t.Errorf("u64 = %#x", v)
			}
			if v, _ := ReadI64(src); v != math.MinInt64 {
				t.Errorf("i64 = %d", v)
			}
			if v, _ := ReadU128(src); v != u128 {
				t.Errorf("u128 = %+v", v)
			}
			if v, _ := ReadI128(src); v != i128 {
				t.Errorf("i128 = %+v", v)
			}
			if v, _ := ReadF32(src); v != 1.5 {
				t.Errorf("f32 = %v", v)
			}
			if v, _ := ReadF64(src); v != -math.Pi {
				t.Errorf("f64 = %v", v)
			}
			if v, _ := ReadBool(src); !v {
				t.Error("bool = false, want true")
			}
			if v, _ := ReadBool(src); v {
				t.Error("bool = true, want false")
			}
			if v, err := ReadString(src); err != nil || v != "héllo" {
				t.Errorf("string = %q, %v", v, err)
			}
			if src.Remaining() != 0 {
				t.Errorf("%d bytes left over", src.Remaining())
			}
		})
	}
}

func TestWriteString_LengthPrefix(t *testing.T) {
	s := NewBufferSink()
	if err := WriteString(s, "ab"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	want := []byte{0x02, 0x00, 0x00, 0x00, 'a', 'b'}
	if !bytes.Equal(s.Bytes(), want) {
		t.Errorf("WriteString(\"ab\") = % x, want % x", s.Bytes(), want)
	}
}

func TestReadString_DeclaredLengthPastEnd(t *testing.T) {
	// Length prefix says 10 bytes, only 2 follow.
	src := NewBufferSource([]byte{0x0A, 0x00, 0x00, 0x00, 'a', 'b'})

	_, err := ReadString(src)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncatedInput}) {
		t.Errorf("ReadString = %v, want truncated_input", err)
	}
}

func TestReadString_InvalidUTF8(t *testing.T) {
	src := NewBufferSource([]byte{0x02, 0x00, 0x00, 0x00, 0xFF, 0xFE})

	_, err := ReadString(src)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidUTF8}) {
		t.Errorf("ReadString = %v, want invalid_utf8", err)
	}
}

func TestReadU32_Truncated(t *testing.T) {
	src := NewBufferSource([]byte{1, 2, 3})

	_, err := ReadU32(src)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncatedInput}) {
		t.Errorf("ReadU32 from 3 bytes = %v, want truncated_input", err)
	}
}

func TestReadBool_NonzeroIsTrue(t *testing.T) {
	src := NewBufferSource([]byte{0x02})
	v, err := ReadBool(src)
	if err != nil {
		t.Fatalf("ReadBool: %v", err)
	}
	if !v {
		t.Error("nonzero byte should decode as true")
	}
}
