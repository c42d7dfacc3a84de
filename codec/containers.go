package codec

import (
	"cmp"
	"slices"

	"github.com/wippyai/bincodec/wire"
)

// Set is a hash set over comparable elements. Iteration order is
// unspecified, and so is its encode order on the wire.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given elements.
func NewSet[T comparable](items ...T) Set[T] {
	set := make(Set[T], len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}

// Add inserts v.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// SortedSet keeps its elements unique and in ascending order. Encoding
// always emits ascending order, so the wire form is canonical regardless of
// insertion order.
type SortedSet[T cmp.Ordered] struct {
	items []T
}

// NewSortedSet returns a sorted set holding the given elements.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	s := &SortedSet[T]{}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v, keeping the set sorted. Duplicates are ignored.
func (s *SortedSet[T]) Add(v T) {
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return
	}
	s.items = slices.Insert(s.items, i, v)
}

// Has reports whether v is in the set.
func (s *SortedSet[T]) Has(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

// Len reports the number of elements.
func (s *SortedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the elements in ascending order. The slice aliases the
// set's storage and must not be modified.
func (s *SortedSet[T]) Values() []T {
	return s.items
}

// EncodeBin writes the set in its canonical wire form, resolving the
// element codec through the reflection engine. Use EncodeSortedSet to
// supply an explicit element codec instead.
func (s *SortedSet[T]) EncodeBin(sink wire.Sink) error {
	if err := writeCount(sink, len(s.items)); err != nil {
		return err
	}
	for i := range s.items {
		if err := Encode(sink, s.items[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBin reads a set written by EncodeBin or EncodeSortedSet, replacing
// the receiver's elements. The result is ascending regardless of the
// encoded order.
func (s *SortedSet[T]) DecodeBin(src wire.Source) error {
	n, err := readCount(src)
	if err != nil {
		return err
	}
	s.items = make([]T, 0, clampCap(src, n))
	for i := 0; i < n; i++ {
		var v T
		if err := Decode(src, &v); err != nil {
			return err
		}
		s.Add(v)
	}
	return nil
}

// EncodeSortedSet writes a u32 count and the elements in ascending order.
func EncodeSortedSet[T cmp.Ordered](s wire.Sink, set *SortedSet[T], enc EncodeFunc[T]) error {
	if err := writeCount(s, set.Len()); err != nil {
		return err
	}
	for _, v := range set.items {
		if err := enc(s, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSortedSet reads elements and reinserts them, so the result is
// ascending regardless of the encoded order.
func DecodeSortedSet[T cmp.Ordered](src wire.Source, dec DecodeFunc[T]) (*SortedSet[T], error) {
	n, err := readCount(src)
	if err != nil {
		return nil, err
	}
	set := &SortedSet[T]{items: make([]T, 0, clampCap(src, n))}
	for i := 0; i < n; i++ {
		v, err := dec(src)
		if err != nil {
			return nil, err
		}
		set.Add(v)
	}
	return set, nil
}

// SortedMap keeps key/value pairs in ascending key order. Like SortedSet,
// its wire form is canonical.
type SortedMap[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

// NewSortedMap returns an empty sorted map.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{}
}

// Set inserts or replaces the value for k.
func (m *SortedMap[K, V]) Set(k K, v V) {
	i, found := slices.BinarySearch(m.keys, k)
	if found {
		m.vals[i] = v
		return
	}
	m.keys = slices.Insert(m.keys, i, k)
	m.vals = slices.Insert(m.vals, i, v)
}

// Get returns the value for k and whether it is present.
func (m *SortedMap[K, V]) Get(k K) (V, bool) {
	i, found := slices.BinarySearch(m.keys, k)
	if !found {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Len reports the number of pairs.
func (m *SortedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in ascending order. The slice aliases the map's
// storage and must not be modified.
func (m *SortedMap[K, V]) Keys() []K {
	return m.keys
}

// ForEach calls fn for each pair in ascending key order until fn returns
// false.
func (m *SortedMap[K, V]) ForEach(fn func(k K, v V) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.vals[i]) {
			return
		}
	}
}

// EncodeBin writes the map in its canonical wire form, resolving the key
// and value codecs through the reflection engine. Use EncodeSortedMap to
// supply explicit codecs instead.
func (m *SortedMap[K, V]) EncodeBin(sink wire.Sink) error {
	if err := writeCount(sink, len(m.keys)); err != nil {
		return err
	}
	for i := range m.keys {
		if err := Encode(sink, m.keys[i]); err != nil {
			return err
		}
		if err := Encode(sink, m.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBin reads a map written by EncodeBin or EncodeSortedMap, replacing
// the receiver's pairs. The result is in ascending key order regardless of
// the encoded order; duplicate keys keep the last value.
func (m *SortedMap[K, V]) DecodeBin(src wire.Source) error {
	n, err := readCount(src)
	if err != nil {
		return err
	}
	m.keys = make([]K, 0, clampCap(src, n))
	m.vals = make([]V, 0, cap(m.keys))
	for i := 0; i < n; i++ {
		var k K
		if err := Decode(src, &k); err != nil {
			return err
		}
		var v V
		if err := Decode(src, &v); err != nil {
			return err
		}
		m.Set(k, v)
	}
	return nil
}

// EncodeSortedMap writes a u32 count and the pairs in ascending key order.
func EncodeSortedMap[K cmp.Ordered, V any](s wire.Sink, m *SortedMap[K, V], encK EncodeFunc[K], encV EncodeFunc[V]) error {
	if err := writeCount(s, m.Len()); err != nil {
		return err
	}
	for i := range m.keys {
		if err := encK(s, m.keys[i]); err != nil {
			return err
		}
		if err := encV(s, m.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSortedMap reads pairs and reinserts them, so the result is in
// ascending key order regardless of the encoded order. Duplicate keys keep
// the last value.
func DecodeSortedMap[K cmp.Ordered, V any](src wire.Source, decK DecodeFunc[K], decV DecodeFunc[V]) (*SortedMap[K, V], error) {
	n, err := readCount(src)
	if err != nil {
		return nil, err
	}
	m := NewSortedMap[K, V]()
	for i := 0; i < n; i++ {
		k, err := decK(src)
		if err != nil {
			return nil, err
		}
		v, err := decV(src)
		if err != nil {
			return nil, err
		}
		m.Set(k, v)
	}
	return m, nil
}
