package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the YAML document a registry is loaded from.
type File struct {
	Enums  []Enum   `yaml:"enums,omitempty"`
	Tables []Schema `yaml:"tables"`
}

// Registry holds validated table schemas and the enums they use.
type Registry struct {
	enums  map[string]*Enum
	tables map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		enums:  make(map[string]*Enum),
		tables: make(map[string]*Schema),
	}
}

// Parse builds a registry from a YAML document.
func Parse(data []byte) (*Registry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	reg := NewRegistry()
	if err := reg.Add(&file); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadFile loads a registry from the YAML file at path.
func LoadFile(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file does not exist: %s", path)
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid schema path: %w", err)
		}
		path = absPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// SaveFile writes the registry to path as YAML.
func (r *Registry) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}

	data, err := yaml.Marshal(r.File())
	if err != nil {
		return fmt.Errorf("failed to marshal schemas: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// Add validates and registers the enums and tables in file. Nothing is
// registered if any of them is invalid.
func (r *Registry) Add(file *File) error {
	enums := make(map[string]*Enum, len(file.Enums))
	for i := range file.Enums {
		e := file.Enums[i]
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := r.enums[e.Name]; dup {
			return fmt.Errorf("enum %s: already registered", e.Name)
		}
		if _, dup := enums[e.Name]; dup {
			return fmt.Errorf("enum %s: declared twice", e.Name)
		}
		enums[e.Name] = &e
	}

	tables := make(map[string]*Schema, len(file.Tables))
	for i := range file.Tables {
		s := file.Tables[i]
		s.Fields = append([]Field(nil), s.Fields...)
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := r.tables[s.Name]; dup {
			return fmt.Errorf("schema %s: already registered", s.Name)
		}
		if _, dup := tables[s.Name]; dup {
			return fmt.Errorf("schema %s: declared twice", s.Name)
		}

		for j := range s.Fields {
			f := &s.Fields[j]
			if f.Enum == "" {
				continue
			}
			e, ok := enums[f.Enum]
			if !ok {
				e, ok = r.enums[f.Enum]
			}
			if !ok {
				return fmt.Errorf("schema %s: field %q: unknown enum %q", s.Name, f.Name, f.Enum)
			}
			f.enum = e
		}
		tables[s.Name] = &s
	}

	for name, e := range enums {
		r.enums[name] = e
	}
	for name, s := range tables {
		r.tables[name] = s
	}
	return nil
}

// Merge registers every enum and table of other.
func (r *Registry) Merge(other *Registry) error {
	return r.Add(other.File())
}

// Table returns the schema registered under name.
func (r *Registry) Table(name string) (*Schema, bool) {
	s, ok := r.tables[name]
	return s, ok
}

// Enum returns the enum registered under name.
func (r *Registry) Enum(name string) (*Enum, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// Tables returns the registered table names in sorted order.
func (r *Registry) Tables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File returns the registry's contents in a stable order.
func (r *Registry) File() *File {
	file := &File{}

	enumNames := make([]string, 0, len(r.enums))
	for name := range r.enums {
		enumNames = append(enumNames, name)
	}
	sort.Strings(enumNames)
	for _, name := range enumNames {
		file.Enums = append(file.Enums, *r.enums[name])
	}

	for _, name := range r.Tables() {
		file.Tables = append(file.Tables, *r.tables[name])
	}
	return file
}
