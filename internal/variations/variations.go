// Package variations reads and writes custom card variations as YAML.
//
// A document holds a list of definitions:
//
//	variations:
//	  - name: skat
//	    values:
//	      - {name: SEVEN, token: "7"}
//	      - {name: ACE, token: A}
//	    ranks:
//	      - {name: ACORNS, token: E}
//	    value_hierarchy: {SEVEN: 1, ACE: 8}
//	    priority: VALUE
//	    name_scheme: "{RANK}{VALUE}"
//
// Unknown fields are rejected so typos such as value_hierachy fail loudly
// instead of producing an unordered variation.
package variations

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"deckhand/internal/cards"
)

var (
	ErrDuplicateName = errors.New("duplicate variation name")
	ErrMissingName   = errors.New("variation name is required")
)

type document struct {
	Variations []cards.Definition `yaml:"variations"`
}

// Parse decodes a YAML document and builds every variation it defines.
func Parse(r io.Reader) ([]*cards.Variation, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode variations: %w", err)
	}

	seen := make(map[string]bool, len(doc.Variations))
	out := make([]*cards.Variation, 0, len(doc.Variations))
	for i, def := range doc.Variations {
		if def.Name == "" {
			return nil, fmt.Errorf("variation #%d: %w", i+1, ErrMissingName)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("variation %q: %w", def.Name, ErrDuplicateName)
		}
		seen[def.Name] = true

		v, err := cards.NewVariation(def)
		if err != nil {
			return nil, fmt.Errorf("variation %q: %w", def.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) ([]*cards.Variation, error) {
	return Parse(bytes.NewBufferString(s))
}

// LoadFile parses the YAML file at path.
func LoadFile(path string) ([]*cards.Variation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variations file: %w", err)
	}
	defer f.Close()

	vs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vs, nil
}

// Marshal renders variations as a document Parse accepts.
func Marshal(vs ...*cards.Variation) ([]byte, error) {
	doc := document{Variations: make([]cards.Definition, len(vs))}
	for i, v := range vs {
		doc.Variations[i] = v.Definition()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode variations: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode variations: %w", err)
	}
	return buf.Bytes(), nil
}
