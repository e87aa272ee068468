package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// metadata is the parsed form of an ndx-meta.yaml descriptor.
// The schema is owned by the catalog, not by this tool; only the three
// fields needed for the matrix are read.
type metadata struct {
	Name string `yaml:"name"`
	Src  string `yaml:"src"`
	Pip  string `yaml:"pip"`
}

// FieldError reports a required descriptor field that is missing or empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// parseMetadata decodes a descriptor document and validates that the
// required fields (name, src, pip) are present and non-empty. A missing
// field is an explicit *FieldError, handled the same way as a parse
// failure by callers.
func parseMetadata(data []byte) (*metadata, error) {
	var meta metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", MetaFile, err)
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", meta.Name},
		{"src", meta.Src},
		{"pip", meta.Pip},
	} {
		if f.value == "" {
			return nil, &FieldError{Field: f.name}
		}
	}

	return &meta, nil
}
