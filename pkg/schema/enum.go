package schema

import (
	"fmt"

	"github.com/ssargent/wdbc/pkg/codec"
)

// Enum is a closed set of named integer values.
type Enum struct {
	Name   string           `yaml:"name"`
	Values map[string]int64 `yaml:"values"`
}

// Contains reports whether v is one of the enum's values.
func (e *Enum) Contains(v int64) bool {
	_, ok := e.NameOf(v)
	return ok
}

// NameOf returns the variant name for v.
func (e *Enum) NameOf(v int64) (string, bool) {
	for name, value := range e.Values {
		if value == v {
			return name, true
		}
	}
	return "", false
}

// Check returns a *codec.EnumRangeError when v is not a variant.
func (e *Enum) Check(v int64) error {
	if !e.Contains(v) {
		return &codec.EnumRangeError{Enum: e.Name, Value: v}
	}
	return nil
}

// Validate checks the enum is named and has at least one distinct variant.
func (e *Enum) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("enum name cannot be empty")
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %s: no values", e.Name)
	}

	seen := make(map[int64]string, len(e.Values))
	for name, v := range e.Values {
		if other, ok := seen[v]; ok {
			return fmt.Errorf("enum %s: %s and %s share value %d", e.Name, name, other, v)
		}
		seen[v] = name
	}
	return nil
}
