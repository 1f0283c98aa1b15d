// Package mapfile provides loading and parsing of mapping definition YAML
// files. Definition files declare named (value, label) tables that compile
// into immutable enummap mappings at load time.
//
// # File Format
//
// A definition file holds one or more named mappings:
//
//	mappings:
//	  - name: color
//	    count: 3
//	    entries:
//	      - value: 0
//	        label: "0xff0000"
//	      - value: 1
//	        label: "0x00ff00"
//	      - value: 2
//	        label: "0x0000ff"
//
// The count key is optional. When present it declares the expected entry
// arity; a mismatch between count and the number of entries fails the whole
// load before any mapping is built.
package mapfile
