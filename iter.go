package enummap

import "iter"

// ForEachValue invokes fn once per entry value, in insertion order.
func (m *Mapping[V]) ForEachValue(fn func(V)) {
	for _, e := range m.entries {
		fn(e.Value)
	}
}

// ForEachLabel invokes fn once per entry label, in insertion order.
func (m *Mapping[V]) ForEachLabel(fn func(string)) {
	for _, e := range m.entries {
		fn(e.Label)
	}
}

// ForEachPair invokes fn once per entry, in insertion order.
func (m *Mapping[V]) ForEachPair(fn func(V, string)) {
	for _, e := range m.entries {
		fn(e.Value, e.Label)
	}
}

// Pairs returns an insertion-ordered sequence of (value, label) pairs for
// use with range-over-func. The sequence is restartable: ranging it again
// yields the same entries in the same order.
func (m *Mapping[V]) Pairs() iter.Seq2[V, string] {
	return func(yield func(V, string) bool) {
		for _, e := range m.entries {
			if !yield(e.Value, e.Label) {
				return
			}
		}
	}
}

// EachValue returns an insertion-ordered sequence of values.
func (m *Mapping[V]) EachValue() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// EachLabel returns an insertion-ordered sequence of labels.
func (m *Mapping[V]) EachLabel() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range m.entries {
			if !yield(e.Label) {
				return
			}
		}
	}
}

// At returns the entry at position i and true, or a zero entry and false
// when i is out of range.
func (m *Mapping[V]) At(i int) (Entry[V], bool) {
	if i < 0 || i >= len(m.entries) {
		return Entry[V]{}, false
	}
	return m.entries[i], true
}

// Iterator is a random-access, bidirectional cursor over a Mapping's
// entries. It addresses positions by index rather than by pointer; positions
// range over [-1, Len()], where -1 is one-before-the-beginning and Len() is
// one-past-the-end. Both sentinels are valid cursor positions but cannot be
// dereferenced. Movement past either sentinel clamps to it.
type Iterator[V comparable] struct {
	m   *Mapping[V]
	pos int
}

// Iterate returns an Iterator positioned at the first entry (position 0).
// On an empty mapping the iterator starts at the past-the-end sentinel.
func (m *Mapping[V]) Iterate() *Iterator[V] {
	return &Iterator[V]{m: m}
}

// Pos returns the iterator's current position.
func (it *Iterator[V]) Pos() int {
	return it.pos
}

// Valid reports whether the iterator addresses a dereferenceable entry.
func (it *Iterator[V]) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.m.entries)
}

// Entry returns the entry at the current position and true, or a zero entry
// and false when the iterator sits at a sentinel.
func (it *Iterator[V]) Entry() (Entry[V], bool) {
	return it.m.At(it.pos)
}

// Next moves the iterator one position forward and reports whether the new
// position is dereferenceable.
func (it *Iterator[V]) Next() bool {
	return it.Advance(1)
}

// Prev moves the iterator one position backward and reports whether the new
// position is dereferenceable.
func (it *Iterator[V]) Prev() bool {
	return it.Advance(-1)
}

// Seek moves the iterator to an absolute position, clamped to the sentinel
// range [-1, Len()], and reports whether the resulting position is
// dereferenceable.
func (it *Iterator[V]) Seek(pos int) bool {
	it.pos = clamp(pos, -1, len(it.m.entries))
	return it.Valid()
}

// Advance moves the iterator by a signed offset, clamped to the sentinel
// range, and reports whether the resulting position is dereferenceable.
func (it *Iterator[V]) Advance(delta int) bool {
	return it.Seek(it.pos + delta)
}

// Distance returns the number of forward steps from this iterator's
// position to other's. Both iterators must range over the same Mapping.
func (it *Iterator[V]) Distance(other *Iterator[V]) int {
	return other.pos - it.pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
