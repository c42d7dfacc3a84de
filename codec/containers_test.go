package codec

import (
	"slices"
	"testing"

	"github.com/wippyai/bincodec/wire"
)

func TestSet_RoundTrip(t *testing.T) {
	in := NewSet("alpha", "beta", "gamma")

	s := wire.NewBufferSink()
	if err := EncodeSet(s, in, wire.WriteString); err != nil {
		t.Fatalf("EncodeSet: %v", err)
	}
	out, err := DecodeSet(wire.NewBufferSource(s.Bytes()), wire.ReadString)
	if err != nil {
		t.Fatalf("DecodeSet: %v", err)
	}
	if len(out) != 3 || !out.Has("alpha") || !out.Has("beta") || !out.Has("gamma") {
		t.Errorf("round-trip = %v", out)
	}
}

func TestSet_DuplicateElementsCollapse(t *testing.T) {
	// Hand-built wire form: count 3, elements 5, 5, 9.
	s := wire.NewBufferSink()
	if err := wire.WriteU32(s, 3); err != nil {
		t.Fatal(err)
	}
	for _, v := range []uint8{5, 5, 9} {
		if err := wire.WriteU8(s, v); err != nil {
			t.Fatal(err)
		}
	}

	out, err := DecodeSet(wire.NewBufferSource(s.Bytes()), wire.ReadU8)
	if err != nil {
		t.Fatalf("DecodeSet: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("set size = %d, want 2 (duplicates collapse)", len(out))
	}
}

func TestSortedSet_CanonicalOrder(t *testing.T) {
	// Insertion order 3, 1, 2; encode must emit ascending and decode must
	// come back ascending.
	in := NewSortedSet(3, 1, 2)
	if !slices.Equal(in.Values(), []int{1, 2, 3}) {
		t.Fatalf("Values() = %v, want [1 2 3]", in.Values())
	}

	s := wire.NewBufferSink()
	if err := EncodeSortedSet(s, in, EncodeInt); err != nil {
		t.Fatalf("EncodeSortedSet: %v", err)
	}

	out, err := DecodeSortedSet(wire.NewBufferSource(s.Bytes()), DecodeInt)
	if err != nil {
		t.Fatalf("DecodeSortedSet: %v", err)
	}
	if !slices.Equal(out.Values(), []int{1, 2, 3}) {
		t.Errorf("decoded order = %v, want [1 2 3]", out.Values())
	}
}

func TestSortedSet_DecodeReordersScrambledInput(t *testing.T) {
	// Wire bytes written out of order still decode to ascending order,
	// because decode reinserts into the sorted container.
	s := wire.NewBufferSink()
	if err := wire.WriteU32(s, 3); err != nil {
		t.Fatal(err)
	}
	for _, v := range []uint16{30, 10, 20} {
		if err := wire.WriteU16(s, v); err != nil {
			t.Fatal(err)
		}
	}

	out, err := DecodeSortedSet(wire.NewBufferSource(s.Bytes()), wire.ReadU16)
	if err != nil {
		t.Fatalf("DecodeSortedSet: %v", err)
	}
	if !slices.Equal(out.Values(), []uint16{10, 20, 30}) {
		t.Errorf("decoded order = %v, want [10 20 30]", out.Values())
	}
}

func TestSortedSet_InsideReflectedStruct(t *testing.T) {
	type doc struct {
		Tags *SortedSet[int]
	}
	in := doc{Tags: NewSortedSet(3, 1, 2)}

	data, err := EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Pointer tag, u32 count, three i64 elements. A missing payload here
	// would mean the set's elements were dropped.
	if len(data) != 1+4+3*8 {
		t.Fatalf("encoded %d bytes, want %d", len(data), 1+4+3*8)
	}

	var out doc
	if err := DecodeFromBytes(data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Tags == nil || !slices.Equal(out.Tags.Values(), []int{1, 2, 3}) {
		t.Errorf("round-trip = %+v", out.Tags)
	}
}

func TestSortedMap_InsideReflectedStruct(t *testing.T) {
	type index struct {
		ByName *SortedMap[string, uint32]
	}
	in := index{ByName: NewSortedMap[string, uint32]()}
	in.ByName.Set("zebra", 3)
	in.ByName.Set("apple", 1)

	data, err := EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out index
	if err := DecodeFromBytes(data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ByName == nil || !slices.Equal(out.ByName.Keys(), []string{"apple", "zebra"}) {
		t.Fatalf("round-trip keys = %+v", out.ByName)
	}
	if v, ok := out.ByName.Get("zebra"); !ok || v != 3 {
		t.Errorf("Get(zebra) = %d, %v", v, ok)
	}
}

func TestSortedSet_AddIgnoresDuplicates(t *testing.T) {
	s := NewSortedSet(1)
	s.Add(1)
	if s.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, want 1", s.Len())
	}
	if !s.Has(1) || s.Has(2) {
		t.Error("Has() misreports membership")
	}
}

func TestSortedMap_RoundTrip(t *testing.T) {
	in := NewSortedMap[string, uint32]()
	in.Set("zebra", 3)
	in.Set("apple", 1)
	in.Set("mango", 2)
	in.Set("apple", 10) // replace

	if !slices.Equal(in.Keys(), []string{"apple", "mango", "zebra"}) {
		t.Fatalf("Keys() = %v", in.Keys())
	}

	s := wire.NewBufferSink()
	if err := EncodeSortedMap(s, in, wire.WriteString, wire.WriteU32); err != nil {
		t.Fatalf("EncodeSortedMap: %v", err)
	}
	out, err := DecodeSortedMap(wire.NewBufferSource(s.Bytes()), wire.ReadString, wire.ReadU32)
	if err != nil {
		t.Fatalf("DecodeSortedMap: %v", err)
	}

	if !slices.Equal(out.Keys(), []string{"apple", "mango", "zebra"}) {
		t.Errorf("decoded keys = %v", out.Keys())
	}
	if v, ok := out.Get("apple"); !ok || v != 10 {
		t.Errorf("Get(apple) = %d, %v", v, ok)
	}
	if _, ok := out.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestSortedMap_ForEach(t *testing.T) {
	m := NewSortedMap[int, string]()
	m.Set(2, "b")
	m.Set(1, "a")

	var keys []int
	m.ForEach(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	if !slices.Equal(keys, []int{1, 2}) {
		t.Errorf("ForEach order = %v", keys)
	}

	count := 0
	m.ForEach(func(int, string) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("ForEach should stop when fn returns false, visited %d", count)
	}
}
