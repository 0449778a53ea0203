package dbc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/schema"
)

// Layout is what a table's files must declare in their header.
type Layout struct {
	Name       string
	RecordSize uint32
	FieldCount uint32
}

// LayoutOf returns the layout a schema declares.
func LayoutOf(s *schema.Schema) Layout {
	return Layout{Name: s.Name, RecordSize: s.RecordSize, FieldCount: s.FieldCount}
}

// Row is a typed table row. DecodeRecord reads the row's fields in record
// order; EncodeRecord writes them back in the same order.
type Row interface {
	Layout() Layout
	DecodeRecord(r *codec.RecordReader) error
	EncodeRecord(w *codec.RecordWriter)
}

type rowPtr[R any] interface {
	*R
	Row
}

// Table is an in-memory DBC table. Rows are kept in file order.
type Table[R any] struct {
	Rows []R
}

// Len returns the number of rows.
func (t *Table[R]) Len() int {
	return len(t.Rows)
}

// LayoutFor returns the layout of row type R.
func LayoutFor[R any, PR rowPtr[R]]() Layout {
	return PR(new(R)).Layout()
}

// Read decodes a whole table from rd. Any failure discards the table.
func Read[R any, PR rowPtr[R]](rd io.Reader, opts ...Option) (*Table[R], error) {
	o := buildOptions(opts)
	l := LayoutFor[R, PR]()

	h, records, pool, err := readBlocks(rd, l, o)
	if err != nil {
		return nil, err
	}

	t := &Table[R]{Rows: make([]R, h.RecordCount)}
	rr := codec.NewRecordReader(nil, pool)
	for i := uint32(0); i < h.RecordCount; i++ {
		rr.Reset(recordAt(records, h, i))
		if err := PR(&t.Rows[i]).DecodeRecord(rr); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", l.Name, i, err)
		}
	}

	return t, nil
}

// Write encodes t to w. Strings are interned into one string block whose
// size is written in the header.
func Write[R any, PR rowPtr[R]](w io.Writer, t *Table[R], opts ...Option) error {
	o := buildOptions(opts)
	l := LayoutFor[R, PR]()

	rw := codec.NewRecordWriter(len(t.Rows) * int(l.RecordSize))
	for i := range t.Rows {
		before := rw.Len()
		PR(&t.Rows[i]).EncodeRecord(rw)
		if err := checkEncodedSize(l, i, before, rw.Len()); err != nil {
			return err
		}
	}

	return writeBlocks(w, l, len(t.Rows), rw, o)
}

// Marshal encodes t into a new byte slice.
func Marshal[R any, PR rowPtr[R]](t *Table[R], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write[R, PR](&buf, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a table from data.
func Unmarshal[R any, PR rowPtr[R]](data []byte, opts ...Option) (*Table[R], error) {
	return Read[R, PR](bytes.NewReader(data), opts...)
}
