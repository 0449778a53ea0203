package dbc

import (
	"fmt"
	"io"

	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/key"
	"github.com/ssargent/wdbc/pkg/schema"
)

// Record is one row decoded through a schema. Values holds one entry per
// schema field, in field order.
//
// Scalar fields decode to their Go type (int8 ... float32, string,
// codec.LocalizedString, codec.ExtendedLocalizedString). The primary key
// and reference fields decode to key.Key[int32] or key.Key[uint32]. Array
// fields decode to a slice of the element type with exactly Count entries.
type Record struct {
	Values []any
}

// RecordTable is a table decoded through a schema rather than a Go row type.
type RecordTable struct {
	Schema *schema.Schema
	Rows   []Record
}

// ValueTypeError reports a record value that does not match its schema field.
type ValueTypeError struct {
	Table string
	Field string
	Want  string
	Got   any
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("%s.%s: want %s, got %T", e.Table, e.Field, e.Want, e.Got)
}

// ReadRecords decodes a whole table from rd using s.
func ReadRecords(rd io.Reader, s *schema.Schema, opts ...Option) (*RecordTable, error) {
	o := buildOptions(opts)
	l := LayoutOf(s)

	h, records, pool, err := readBlocks(rd, l, o)
	if err != nil {
		return nil, err
	}

	keys := keyFields(s)
	t := &RecordTable{Schema: s, Rows: make([]Record, h.RecordCount)}
	rr := codec.NewRecordReader(nil, pool)
	for i := uint32(0); i < h.RecordCount; i++ {
		rr.Reset(recordAt(records, h, i))
		values := make([]any, len(s.Fields))
		for j := range s.Fields {
			values[j] = decodeField(rr, &s.Fields[j], keys[j])
		}
		if err := rr.Err(); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", l.Name, i, err)
		}
		t.Rows[i] = Record{Values: values}
	}

	return t, nil
}

// WriteRecords encodes t to w using t.Schema.
func WriteRecords(w io.Writer, t *RecordTable, opts ...Option) error {
	o := buildOptions(opts)
	s := t.Schema
	l := LayoutOf(s)
	keys := keyFields(s)

	rw := codec.NewRecordWriter(len(t.Rows) * int(l.RecordSize))
	for i := range t.Rows {
		rec := &t.Rows[i]
		if len(rec.Values) != len(s.Fields) {
			return fmt.Errorf("%s: row %d has %d values, schema has %d fields", l.Name, i, len(rec.Values), len(s.Fields))
		}

		before := rw.Len()
		for j := range s.Fields {
			if err := encodeField(rw, s, &s.Fields[j], keys[j], rec.Values[j]); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
		if err := checkEncodedSize(l, i, before, rw.Len()); err != nil {
			return err
		}
	}

	return writeBlocks(w, l, len(t.Rows), rw, o)
}

// Get returns the first row, in file order, whose primary key ID equals id,
// or nil. It also returns nil when the schema has no primary key.
func (t *RecordTable) Get(id int64) *Record {
	idx := t.Schema.PrimaryKeyIndex()
	if idx < 0 {
		return nil
	}

	for i := range t.Rows {
		switch k := t.Rows[i].Values[idx].(type) {
		case key.Key[int32]:
			if int64(k.ID) == id {
				return &t.Rows[i]
			}
		case key.Key[uint32]:
			if int64(k.ID) == id {
				return &t.Rows[i]
			}
		}
	}
	return nil
}

// Value returns the named field of row i.
func (t *RecordTable) Value(i int, field string) (any, bool) {
	j := t.Schema.FieldIndex(field)
	if j < 0 || i < 0 || i >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[i].Values[j], true
}

func keyFields(s *schema.Schema) []bool {
	keys := make([]bool, len(s.Fields))
	for i := range s.Fields {
		keys[i] = s.Fields[i].References != ""
	}
	if pk := s.PrimaryKeyIndex(); pk >= 0 {
		keys[pk] = true
	}
	return keys
}

type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

func decodeField(r *codec.RecordReader, f *schema.Field, isKey bool) any {
	switch f.Type {
	case schema.TypeInt8:
		return decodeValues(f, checked(r, f, r.Int8))
	case schema.TypeUint8:
		return decodeValues(f, checked(r, f, r.Uint8))
	case schema.TypeInt16:
		return decodeValues(f, checked(r, f, r.Int16))
	case schema.TypeUint16:
		return decodeValues(f, checked(r, f, r.Uint16))
	case schema.TypeInt32:
		read := checked(r, f, r.Int32)
		if isKey {
			return decodeValues(f, func() key.Key[int32] { return key.New(read()) })
		}
		return decodeValues(f, read)
	case schema.TypeUint32:
		read := checked(r, f, r.Uint32)
		if isKey {
			return decodeValues(f, func() key.Key[uint32] { return key.New(read()) })
		}
		return decodeValues(f, read)
	case schema.TypeFloat32:
		return decodeValues(f, r.Float32)
	case schema.TypeString:
		return decodeValues(f, r.StringField)
	case schema.TypeLocalizedString:
		return decodeValues(f, r.LocalizedString)
	case schema.TypeExtendedLocalizedString:
		return decodeValues(f, r.ExtendedLocalizedString)
	}
	r.Fail(fmt.Errorf("field %s: unknown type %q", f.Name, f.Type))
	return nil
}

func decodeValues[T any](f *schema.Field, read func() T) any {
	if !f.IsArray() {
		return read()
	}
	values := make([]T, f.Len())
	for i := range values {
		values[i] = read()
	}
	return values
}

// checked wraps read with the field's enum range check, if it has one.
func checked[T integer](r *codec.RecordReader, f *schema.Field, read func() T) func() T {
	e := f.EnumDef()
	if e == nil {
		return read
	}
	return func() T {
		v := read()
		if r.Err() == nil {
			if err := e.Check(int64(v)); err != nil {
				r.Fail(fmt.Errorf("field %s: %w", f.Name, err))
			}
		}
		return v
	}
}

func encodeField(w *codec.RecordWriter, s *schema.Schema, f *schema.Field, isKey bool, v any) error {
	var ok bool
	switch f.Type {
	case schema.TypeInt8:
		ok = encodeValues(f, v, w.PutInt8)
	case schema.TypeUint8:
		ok = encodeValues(f, v, w.PutUint8)
	case schema.TypeInt16:
		ok = encodeValues(f, v, w.PutInt16)
	case schema.TypeUint16:
		ok = encodeValues(f, v, w.PutUint16)
	case schema.TypeInt32:
		ok = encodeValues(f, v, w.PutInt32) ||
			(isKey && encodeValues(f, v, func(k key.Key[int32]) { w.PutInt32(k.ID) }))
	case schema.TypeUint32:
		ok = encodeValues(f, v, w.PutUint32) ||
			(isKey && encodeValues(f, v, func(k key.Key[uint32]) { w.PutUint32(k.ID) }))
	case schema.TypeFloat32:
		ok = encodeValues(f, v, w.PutFloat32)
	case schema.TypeString:
		ok = encodeValues(f, v, w.PutString)
	case schema.TypeLocalizedString:
		ok = encodeValues(f, v, w.PutLocalizedString)
	case schema.TypeExtendedLocalizedString:
		ok = encodeValues(f, v, w.PutExtendedLocalizedString)
	}
	if !ok {
		want := string(f.Type)
		if f.IsArray() {
			want = fmt.Sprintf("[%d]%s", f.Len(), f.Type)
		}
		return &ValueTypeError{Table: s.Name, Field: f.Name, Want: want, Got: v}
	}
	return nil
}

// encodeValues writes v when it has the field's Go type, a T for a single
// value or a []T of the right length for an array. It writes nothing and
// reports false otherwise.
func encodeValues[T any](f *schema.Field, v any, put func(T)) bool {
	if !f.IsArray() {
		x, ok := v.(T)
		if ok {
			put(x)
		}
		return ok
	}

	xs, ok := v.([]T)
	if !ok || len(xs) != f.Len() {
		return false
	}
	for _, x := range xs {
		put(x)
	}
	return true
}
