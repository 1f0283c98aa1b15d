// Package registry provides a global registry of named label mappings used
// to normalize shorthand enum values in JSON payloads.
//
// Tools register mappings from shorthand or user-friendly labels to their
// canonical enum names per (tool, field) pair. For example, mapping "syn"
// to "SYN_SCAN" for an nmap scan type field.
//
// # Usage
//
// Register mappings for a tool:
//
//	registry.Register("nmap", "scan_type", map[string]string{
//	    "syn": "SYN_SCAN",
//	    "udp": "UDP_SCAN",
//	})
//
// Normalize JSON input before passing it to the tool:
//
//	input := `{"scan_type": "syn", "target": "example.com"}`
//	normalized := registry.Normalize("nmap", input)
//	// Result: {"scan_type": "SYN_SCAN", "target": "example.com"}
//
// # Relationship to enummap
//
// Each registered field compiles into an immutable enummap.Mapping whose
// labels are the shorthand forms and whose values are the canonical names.
// Shorthand matching uses the mapping's case-insensitive lookup, so "SYN",
// "syn", and "Syn" all resolve to the same canonical name. Re-registering a
// field rebuilds its mapping; the compiled mappings themselves are never
// mutated in place.
//
// # Thread Safety
//
// All operations are thread-safe and can be called concurrently from
// multiple goroutines. The registry guards its tables with sync.RWMutex;
// the compiled mappings are immutable and need no synchronization.
//
// # Error Handling
//
// Normalize is designed to be fail-safe. If any error occurs during parsing
// or normalization (invalid JSON, type mismatches, unknown shorthand), it
// returns the original input unchanged rather than returning an error.
package registry
