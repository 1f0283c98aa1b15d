package registry

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/zero-day-ai/enummap"
)

// fieldTable holds one field's registration state. The entry list keeps the
// registration order so the compiled mapping can be rebuilt deterministically
// when a field is re-registered.
type fieldTable struct {
	entries []enummap.Entry[string]
	mapping *enummap.Mapping[string]
}

// registry is the global mapping registry, keyed by tool then field name.
var (
	registry = make(map[string]map[string]*fieldTable)
	mu       sync.RWMutex
)

// Register registers label mappings for a specific tool field.
// toolName: the name of the tool (e.g., "nmap")
// fieldName: the field name in the JSON (e.g., "scan_type")
// mappings: map of shorthand labels to canonical enum names (e.g., {"syn": "SYN_SCAN"})
//
// Registering a shorthand that is already present replaces its canonical
// name; other entries keep their position. The field's compiled mapping is
// rebuilt on every call.
func Register(toolName, fieldName string, mappings map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if registry[toolName] == nil {
		registry[toolName] = make(map[string]*fieldTable)
	}

	ft := registry[toolName][fieldName]
	if ft == nil {
		ft = &fieldTable{}
		registry[toolName][fieldName] = ft
	}

	for shorthand, canonical := range mappings {
		ft.upsert(strings.ToLower(shorthand), canonical)
	}

	ft.mapping = enummap.New(ft.entries...)
}

// upsert replaces the canonical name of an existing shorthand or appends a
// new entry. Shorthands are stored lowercased, so comparison is exact.
func (ft *fieldTable) upsert(shorthand, canonical string) {
	for i, e := range ft.entries {
		if e.Label == shorthand {
			ft.entries[i].Value = canonical
			return
		}
	}
	ft.entries = append(ft.entries, enummap.Pair(canonical, shorthand))
}

// RegisterBatch registers multiple field mappings for a tool at once.
// toolName: the name of the tool
// fieldMappings: map of field names to their label mappings
func RegisterBatch(toolName string, fieldMappings map[string]map[string]string) {
	for fieldName, mappings := range fieldMappings {
		Register(toolName, fieldName, mappings)
	}
}

// Normalize applies registered mappings to JSON input for a specific tool.
// Returns the normalized JSON string with shorthand labels replaced by
// canonical names. If any error occurs, returns the original input unchanged.
//
// This function handles both flat JSON and TypedMap format:
//   - Flat: {"verbosity": "high"} -> {"verbosity": "VERBOSITY_HIGH"}
//   - TypedMap: {"entries": {"verbosity": {"stringValue": "high"}}} ->
//     {"entries": {"verbosity": {"stringValue": "VERBOSITY_HIGH"}}}
func Normalize(toolName, inputJSON string) string {
	mu.RLock()
	toolTables, exists := registry[toolName]
	mu.RUnlock()

	// No mappings for this tool, return unchanged
	if !exists || len(toolTables) == 0 {
		return inputJSON
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(inputJSON), &data); err != nil {
		// Return original if parsing fails
		return inputJSON
	}

	if entries, ok := data["entries"].(map[string]interface{}); ok {
		// TypedMap format: normalize values inside entries
		mu.RLock()
		for fieldName, ft := range toolTables {
			if entry, hasEntry := entries[fieldName].(map[string]interface{}); hasEntry {
				if strValue, isString := entry["stringValue"].(string); isString {
					if canonical, err := ft.mapping.ValueFold(strValue); err == nil {
						entry["stringValue"] = canonical
					}
				}
			}
		}
		mu.RUnlock()
	} else {
		// Flat format: normalize top-level fields directly
		mu.RLock()
		for fieldName, ft := range toolTables {
			value, ok := data[fieldName]
			if !ok {
				continue
			}
			strValue, isString := value.(string)
			if !isString {
				// Skip non-string values
				continue
			}
			if canonical, err := ft.mapping.ValueFold(strValue); err == nil {
				data[fieldName] = canonical
			}
		}
		mu.RUnlock()
	}

	normalized, err := json.Marshal(data)
	if err != nil {
		// Return original if serialization fails
		return inputJSON
	}

	return string(normalized)
}

// Mapping returns the compiled mapping for a specific tool field, or nil if
// the field has no registered mappings. The returned mapping is immutable
// and safe to share.
func Mapping(toolName, fieldName string) *enummap.Mapping[string] {
	mu.RLock()
	defer mu.RUnlock()

	ft := registry[toolName][fieldName]
	if ft == nil {
		return nil
	}
	return ft.mapping
}

// Mappings returns all label mappings for a specific tool as plain maps of
// shorthand to canonical name. Returns nil if the tool has no registered
// mappings. The result is a deep copy; modifying it does not affect the
// registry.
func Mappings(toolName string) map[string]map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	toolTables, exists := registry[toolName]
	if !exists {
		return nil
	}

	result := make(map[string]map[string]string, len(toolTables))
	for fieldName, ft := range toolTables {
		fieldMappings := make(map[string]string, ft.mapping.Len())
		ft.mapping.ForEachPair(func(canonical, shorthand string) {
			fieldMappings[shorthand] = canonical
		})
		result[fieldName] = fieldMappings
	}

	return result
}

// Clear resets the entire registry.
// This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[string]map[string]*fieldTable)
}
