package enummap

import "strings"

// Entry is one (value, label) pair in a Mapping.
type Entry[V comparable] struct {
	Value V
	Label string
}

// Pair is a convenience constructor for an Entry.
func Pair[V comparable](value V, label string) Entry[V] {
	return Entry[V]{Value: value, Label: label}
}

// Mapping is an ordered, immutable table of (value, label) entries together
// with a hash index over the labels. The entry list supplied at construction
// is the single source of truth: its order is preserved and observable, and
// neither uniqueness of values nor uniqueness of labels is enforced.
//
// A Mapping must not be modified after construction; all methods are safe
// for unsynchronized concurrent use.
type Mapping[V comparable] struct {
	entries []Entry[V]
	index   hashIndex[V]
}

// New constructs a Mapping from the given entries. The entry count fixes
// the table size permanently. Constructing with zero entries is legal; every
// lookup on the resulting mapping fails.
func New[V comparable](entries ...Entry[V]) *Mapping[V] {
	// Copy so later mutation of the caller's slice cannot reach the table.
	owned := make([]Entry[V], len(entries))
	copy(owned, entries)

	return &Mapping[V]{
		entries: owned,
		index:   buildIndex(owned),
	}
}

// NewSized constructs a Mapping from entries whose count is declared up
// front. If the declared size does not match the number of entries supplied,
// NewSized returns ErrMalformedConstruction and no mapping is built.
func NewSized[V comparable](size int, entries ...Entry[V]) (*Mapping[V], error) {
	if size != len(entries) {
		return nil, newMalformedError("NewSized", size, len(entries))
	}
	return New(entries...), nil
}

// Len returns the number of entries in the mapping.
func (m *Mapping[V]) Len() int {
	return len(m.entries)
}

// Values returns all values in insertion order. The returned slice is a
// copy and may be modified freely.
func (m *Mapping[V]) Values() []V {
	values := make([]V, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.Value
	}
	return values
}

// Labels returns all labels in insertion order. The returned slice is a
// copy and may be modified freely.
func (m *Mapping[V]) Labels() []string {
	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		labels[i] = e.Label
	}
	return labels
}

// ContainsValue reports whether any entry carries the given value.
func (m *Mapping[V]) ContainsValue(value V) bool {
	for _, e := range m.entries {
		if e.Value == value {
			return true
		}
	}
	return false
}

// ContainsLabel reports whether any entry carries the given label,
// compared exactly.
func (m *Mapping[V]) ContainsLabel(label string) bool {
	for _, e := range m.entries {
		if e.Label == label {
			return true
		}
	}
	return false
}

// Value resolves a label to its value using the hash index, matching case
// exactly. Average time complexity is O(1). Under duplicate labels the
// earliest entry wins. Returns ErrInvalidLabel if no entry matches.
func (m *Mapping[V]) Value(label string) (V, error) {
	if v, ok := m.index.lookup(label); ok {
		return v, nil
	}
	var zero V
	return zero, newInvalidLabelError("Mapping.Value", label)
}

// ValueFold resolves a label to its value comparing labels under ASCII case
// folding. It scans the entry table in insertion order and returns the first
// match, bypassing the hash index, which is built from exact-case hashes.
// Returns ErrInvalidLabel if no entry matches.
func (m *Mapping[V]) ValueFold(label string) (V, error) {
	for _, e := range m.entries {
		if equalFoldASCII(e.Label, label) {
			return e.Value, nil
		}
	}
	var zero V
	return zero, newInvalidLabelError("Mapping.ValueFold", label)
}

// FirstValue resolves a label to the value of the first entry whose label
// matches exactly, scanning in insertion order. Returns ErrInvalidLabel if
// no entry matches.
func (m *Mapping[V]) FirstValue(label string) (V, error) {
	for _, e := range m.entries {
		if e.Label == label {
			return e.Value, nil
		}
	}
	var zero V
	return zero, newInvalidLabelError("Mapping.FirstValue", label)
}

// AllValues returns the values of every entry whose label matches exactly,
// in insertion order. This is the only complete retrieval when labels are
// not unique. The result is empty, never nil, when no entry matches;
// absence is not an error on this path.
func (m *Mapping[V]) AllValues(label string) []V {
	values := make([]V, 0)
	for _, e := range m.entries {
		if e.Label == label {
			values = append(values, e.Value)
		}
	}
	return values
}

// Label resolves a value to the label of the first entry carrying it,
// scanning in insertion order. Returns ErrInvalidValue if no entry matches.
func (m *Mapping[V]) Label(value V) (string, error) {
	for _, e := range m.entries {
		if e.Value == value {
			return e.Label, nil
		}
	}
	return "", newInvalidValueError("Mapping.Label", value)
}

// String returns a debug representation listing all labels in insertion
// order: Mapping{l0, l1, ...}.
func (m *Mapping[V]) String() string {
	var b strings.Builder
	b.WriteString("Mapping{")
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Label)
	}
	b.WriteString("}")
	return b.String()
}

// equalFoldASCII reports whether two strings are equal under ASCII case
// folding. Non-ASCII bytes must match exactly.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
