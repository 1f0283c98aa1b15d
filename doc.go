// Package enummap provides an immutable bidirectional mapping between the
// members of a finite domain type and their human-readable text labels.
//
// A Mapping is built once from an ordered list of (value, label) entries and
// is read-only afterwards. Label-to-value resolution is accelerated by an
// open-addressing hash index built at construction time, giving average O(1)
// lookups; value-to-label resolution and case-insensitive matching use
// linear scans of the entry table.
//
// # Core Concepts
//
// The package is organized around a few small pieces:
//
//   - Entry: one (value, label) pair supplied at construction
//   - Mapping: the ordered, immutable pair table plus its hash index
//   - Iterator: optional random-access, bidirectional traversal over entries
//   - MapError: structured failure carrying an operation and a failure kind
//
// # Usage
//
// Construct a mapping from explicit entries:
//
//	colors := enummap.New(
//		enummap.Pair(Red, "0xff0000"),
//		enummap.Pair(Green, "0x00ff00"),
//		enummap.Pair(Blue, "0x0000ff"),
//	)
//
//	label, err := colors.Label(Red)     // "0xff0000"
//	value, err := colors.Value("0x00ff00") // Green
//
// # Ordering and Duplicates
//
// Entry order is preserved and observable: accessor slices, visitors, and
// sequences yield entries in insertion order, and every single-result lookup
// resolves ties in favor of the earliest entry. Duplicate values and
// duplicate labels are both legal; AllValues is the only way to retrieve
// every value bound to a non-unique label. Callers that need a strict 1:1
// mapping must ensure uniqueness themselves.
//
// # Concurrency
//
// A Mapping is immutable once constructed, so any number of goroutines may
// read it concurrently without synchronization. Construct the mapping fully
// before sharing it; there are no locks or atomics anywhere in the read path.
//
// # Error Handling
//
// Failed lookups return a *MapError wrapping one of the sentinel errors
// (ErrInvalidLabel, ErrInvalidValue), so callers can branch with errors.Is:
//
//	if _, err := colors.Value("0xabcdef"); errors.Is(err, enummap.ErrInvalidLabel) {
//		// unknown label
//	}
//
// Boolean queries (ContainsValue, ContainsLabel) and multi-result queries
// (AllValues) never fail; absence is reported as false or an empty slice.
package enummap
