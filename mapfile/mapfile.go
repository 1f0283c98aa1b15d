package mapfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enummap"
)

// File represents a mappings.yaml definition file.
type File struct {
	Mappings []Definition `yaml:"mappings"`
}

// Definition declares one named mapping.
type Definition struct {
	// Name identifies the mapping within the file. Required and unique.
	Name string `yaml:"name"`

	// Count optionally declares the expected number of entries. When set,
	// a mismatch with the actual entry count fails the load.
	Count *int `yaml:"count,omitempty"`

	// Entries are the (value, label) pairs, in the order they should be
	// observable in the compiled mapping.
	Entries []DefEntry `yaml:"entries"`
}

// DefEntry is one declared (value, label) pair.
type DefEntry struct {
	Value int64  `yaml:"value"`
	Label string `yaml:"label"`
}

// Parse parses definition file contents and compiles each declared mapping.
// A declared count that disagrees with the entry list fails the whole parse
// with enummap.ErrMalformedConstruction; no partial result is returned.
func Parse(data []byte) (map[string]*enummap.Mapping[int64], error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file: %w", err)
	}

	compiled := make(map[string]*enummap.Mapping[int64], len(file.Mappings))
	for i, def := range file.Mappings {
		if def.Name == "" {
			return nil, fmt.Errorf("mapping %d: name is required", i)
		}
		if _, exists := compiled[def.Name]; exists {
			return nil, fmt.Errorf("mapping %q: duplicate name", def.Name)
		}

		entries := make([]enummap.Entry[int64], len(def.Entries))
		for j, e := range def.Entries {
			entries[j] = enummap.Pair(e.Value, e.Label)
		}

		if def.Count != nil {
			m, err := enummap.NewSized(*def.Count, entries...)
			if err != nil {
				return nil, fmt.Errorf("mapping %q: %w", def.Name, err)
			}
			compiled[def.Name] = m
			continue
		}
		compiled[def.Name] = enummap.New(entries...)
	}

	return compiled, nil
}

// Load reads and parses a mapping definition file from the given path.
// If the path is a directory, it looks for mappings.yaml or mappings.yml in
// that directory.
func Load(path string) (map[string]*enummap.Mapping[int64], error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	filePath := path
	if info.IsDir() {
		// Try mappings.yaml first, then mappings.yml
		yamlPath := filepath.Join(path, "mappings.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			filePath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "mappings.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				filePath = ymlPath
			} else {
				return nil, fmt.Errorf("no mappings.yaml or mappings.yml found in %s", path)
			}
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	return Parse(data)
}
