// Package jsonio provides JSON serialization helpers and file-level
// import/export of rendered selector sets.
//
// The generic helpers [Serialize] and [Deserialize] are thin adapters
// over encoding/json: Serialize produces the standard textual form of a
// plain value (key order is whatever the encoder emits), and Deserialize
// parses text into a value of the requested shape without checking that
// the parsed fields match the shape's fields.
//
// The Entry functions read and write the selector-set format produced by
// the build command:
//
//	[
//	  {"name": "main-table", "selector": "table#data.wide"},
//	  {"name": "hover-link", "selector": "a:hover"}
//	]
package jsonio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Entry is one named, rendered selector in an exported set.
type Entry struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// Serialize encodes a plain value (mappings, sequences, primitives) to
// its standard JSON text. Failures from the underlying encoder propagate
// uninterpreted.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize parses text into a freshly allocated value of type T. The
// parsed fields are not validated against T's fields: unknown keys are
// dropped and missing keys leave zero values, per encoding/json.
func Deserialize[T any](text string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return nil, err
	}
	return v, nil
}

// WriteSelectors encodes entries as indented JSON to w.
func WriteSelectors(entries []Entry, w io.Writer) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes entries to a JSON file at path.
// This is a convenience wrapper around [WriteSelectors] for file-based output.
func ExportFile(entries []Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSelectors(entries, f)
}

// ReadSelectors decodes a selector set from r.
func ReadSelectors(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return entries, nil
}

// ImportFile reads a selector set from a JSON file at path.
func ImportFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSelectors(f)
}
