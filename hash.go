package enummap

// hashLabel computes a 32-bit djb2 hash over the raw bytes of a label:
// seed 5381, each step hash = hash*33 + byte.
func hashLabel(label string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(label); i++ {
		h = h*33 + uint32(label[i])
	}
	return h
}

// slot is one position in the open-addressing hash index. The label is
// stored alongside its hash so that lookups can confirm a match instead of
// trusting 32-bit hash equality alone; occupied marks the slot as populated
// so that labels hashing to any value, including zero, remain resolvable.
type slot[V comparable] struct {
	hash     uint32
	label    string
	value    V
	occupied bool
}

// hashIndex accelerates exact-case label-to-value resolution. It holds 2N
// slots for N entries (load factor 0.5) and resolves collisions by linear
// probing. The index is built once from the entry table and never modified;
// deletions are not supported.
type hashIndex[V comparable] struct {
	slots []slot[V]
}

// buildIndex constructs the hash index from the entry table. Entries are
// inserted in table order, so under duplicate labels the earliest entry
// occupies the earliest probe position and wins lookups.
func buildIndex[V comparable](entries []Entry[V]) hashIndex[V] {
	if len(entries) == 0 {
		return hashIndex[V]{}
	}

	size := 2 * len(entries)
	slots := make([]slot[V], size)
	for _, e := range entries {
		h := hashLabel(e.Label)
		i := int(h % uint32(size))
		for slots[i].occupied {
			i = (i + 1) % size
		}
		slots[i] = slot[V]{hash: h, label: e.Label, value: e.Value, occupied: true}
	}
	return hashIndex[V]{slots: slots}
}

// lookup resolves a label to its value. It probes linearly from the label's
// home slot and terminates at the first empty slot; at most half the table
// is ever occupied, so an empty slot is always reached.
func (idx hashIndex[V]) lookup(label string) (V, bool) {
	var zero V
	if len(idx.slots) == 0 {
		return zero, false
	}

	h := hashLabel(label)
	size := len(idx.slots)
	i := int(h % uint32(size))
	for idx.slots[i].occupied {
		if idx.slots[i].hash == h && idx.slots[i].label == label {
			return idx.slots[i].value, true
		}
		i = (i + 1) % size
	}
	return zero, false
}
