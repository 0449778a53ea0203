// Package schema describes DBC table layouts as data.
//
// A Schema lists a table's fields in record order together with the
// record size and field count its files must declare. Schemas are loaded
// from YAML so that new tables need no code, and they drive the
// schema-based engine in package dbc.
package schema

import (
	"fmt"
)

// FieldType is the on-disk encoding of a field.
type FieldType string

const (
	TypeInt8                    FieldType = "int8"
	TypeUint8                   FieldType = "uint8"
	TypeInt16                   FieldType = "int16"
	TypeUint16                  FieldType = "uint16"
	TypeInt32                   FieldType = "int32"
	TypeUint32                  FieldType = "uint32"
	TypeFloat32                 FieldType = "float32"
	TypeString                  FieldType = "string"
	TypeLocalizedString         FieldType = "localized_string"
	TypeExtendedLocalizedString FieldType = "extended_localized_string"
)

// Size returns the number of record bytes one element of t takes.
func (t FieldType) Size() uint32 {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32, TypeString:
		return 4
	case TypeLocalizedString:
		return 4 * 9
	case TypeExtendedLocalizedString:
		return 4 * 17
	}
	return 0
}

// Columns returns how many header fields one element of t counts as.
func (t FieldType) Columns() uint32 {
	switch t {
	case TypeLocalizedString:
		return 9
	case TypeExtendedLocalizedString:
		return 17
	}
	return 1
}

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	return t.Size() != 0
}

// Integer reports whether t is an integer type.
func (t FieldType) Integer() bool {
	switch t {
	case TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt32, TypeUint32:
		return true
	}
	return false
}

// Field is one column of a table, or a fixed-length array of columns.
type Field struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type"`
	// Count is the array length; 0 and 1 both mean a single value.
	Count int `yaml:"count,omitempty"`
	// References names the table whose primary key this field holds.
	References string `yaml:"references,omitempty"`
	// Enum names the closed enum the field's values must belong to.
	Enum string `yaml:"enum,omitempty"`

	enum *Enum
}

// Len returns the number of elements in the field.
func (f *Field) Len() int {
	if f.Count < 1 {
		return 1
	}
	return f.Count
}

// IsArray reports whether the field holds more than one element.
func (f *Field) IsArray() bool {
	return f.Count > 1
}

// EnumDef returns the resolved enum, or nil when the field has none or the
// schema was not loaded through a Registry.
func (f *Field) EnumDef() *Enum {
	return f.enum
}

// Schema is the layout of one table.
type Schema struct {
	Name       string  `yaml:"name"`
	RecordSize uint32  `yaml:"record_size"`
	FieldCount uint32  `yaml:"field_count"`
	PrimaryKey string  `yaml:"primary_key,omitempty"`
	Fields     []Field `yaml:"fields"`
}

// ComputedRecordSize sums the sizes of all fields.
func (s *Schema) ComputedRecordSize() uint32 {
	var n uint32
	for i := range s.Fields {
		f := &s.Fields[i]
		n += f.Type.Size() * uint32(f.Len())
	}
	return n
}

// ComputedFieldCount sums the header columns of all fields.
func (s *Schema) ComputedFieldCount() uint32 {
	var n uint32
	for i := range s.Fields {
		f := &s.Fields[i]
		n += f.Type.Columns() * uint32(f.Len())
	}
	return n
}

// FieldIndex returns the index of the named field, or -1.
func (s *Schema) FieldIndex(name string) int {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// PrimaryKeyIndex returns the index of the primary key field, or -1 when the
// schema declares none.
func (s *Schema) PrimaryKeyIndex() int {
	if s.PrimaryKey == "" {
		return -1
	}
	return s.FieldIndex(s.PrimaryKey)
}

// Validate checks that the field list is well formed and adds up to the
// declared record size and field count.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %s: no fields", s.Name)
	}

	seen := make(map[string]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("schema %s: field %d has no name", s.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true

		if !f.Type.Valid() {
			return fmt.Errorf("schema %s: field %q: unknown type %q", s.Name, f.Name, f.Type)
		}
		if f.Count < 0 {
			return fmt.Errorf("schema %s: field %q: negative count %d", s.Name, f.Name, f.Count)
		}
		if f.Enum != "" && !f.Type.Integer() {
			return fmt.Errorf("schema %s: field %q: enum on non-integer type %q", s.Name, f.Name, f.Type)
		}
		if f.References != "" && f.Type != TypeInt32 && f.Type != TypeUint32 {
			return fmt.Errorf("schema %s: field %q: reference must be int32 or uint32, got %q", s.Name, f.Name, f.Type)
		}
	}

	if s.PrimaryKey != "" {
		idx := s.PrimaryKeyIndex()
		if idx < 0 {
			return fmt.Errorf("schema %s: primary key %q is not a field", s.Name, s.PrimaryKey)
		}
		pk := &s.Fields[idx]
		if (pk.Type != TypeInt32 && pk.Type != TypeUint32) || pk.IsArray() {
			return fmt.Errorf("schema %s: primary key %q must be a single int32 or uint32", s.Name, s.PrimaryKey)
		}
	}

	if got := s.ComputedRecordSize(); got != s.RecordSize {
		return fmt.Errorf("schema %s: fields take %d bytes, record_size is %d", s.Name, got, s.RecordSize)
	}
	if got := s.ComputedFieldCount(); got != s.FieldCount {
		return fmt.Errorf("schema %s: fields make %d columns, field_count is %d", s.Name, got, s.FieldCount)
	}

	return nil
}
