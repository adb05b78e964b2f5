// Package corpus reads content definition files into domain entries.
//
// A content file holds a top-level "entries" list and is written in YAML
// (.yaml, .yml) or TOML (.toml). A YAML file may hold several documents,
// whose entries are read in order. Unknown keys are rejected so that a typo in
// a field name fails the load instead of silently dropping text.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a content file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported content format")

type file[T any] struct {
	Entries []T `yaml:"entries" toml:"entries"`
}

// Decode parses data as a content file. name is used to pick the format
// from its extension and to label errors.
func Decode[T any](name string, data []byte) ([]T, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	var f file[T]
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return decodeYAML[T](name, data)
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if f.Entries == nil {
		return []T{}, nil
	}
	return f.Entries, nil
}

// decodeYAML reads every document in a YAML stream and concatenates their
// entries in document order.
func decodeYAML[T any](name string, data []byte) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	entries := []T{}
	for doc := 1; ; doc++ {
		var f file[T]
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			return nil, fmt.Errorf("invalid YAML in %s (document %d): %w", name, doc, err)
		}
		entries = append(entries, f.Entries...)
	}
}

// IsContentFile reports whether name has an extension Decode understands.
func IsContentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
