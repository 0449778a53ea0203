package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RecordReader decodes the fields of one record, in order, from the record's
// byte window. String fields are resolved against the table's string block.
//
// The reader keeps the first error it sees. Once an error is recorded every
// later read returns a zero value, so a row decoder can read all of its
// fields and check Err once at the end.
type RecordReader struct {
	rec  []byte
	pool []byte
	pos  int
	err  error
}

// NewRecordReader creates a reader over one record window and the string block.
func NewRecordReader(record, pool []byte) *RecordReader {
	return &RecordReader{rec: record, pool: pool}
}

// Reset points the reader at the next record, clearing any error.
func (r *RecordReader) Reset(record []byte) {
	r.rec = record
	r.pos = 0
	r.err = nil
}

// Err returns the first error hit while decoding the record.
func (r *RecordReader) Err() error {
	return r.err
}

// Offset returns the cursor position within the record.
func (r *RecordReader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes in the record window.
func (r *RecordReader) Remaining() int {
	return len(r.rec) - r.pos
}

// Skip advances over n bytes of padding.
func (r *RecordReader) Skip(n int) {
	r.next(n, "padding")
}

func (r *RecordReader) next(n int, what string) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.rec) {
		r.err = fmt.Errorf("read %s at record offset %d (record size %d): %w", what, r.pos, len(r.rec), io.ErrUnexpectedEOF)
		return nil
	}
	b := r.rec[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Int8 reads one signed byte.
func (r *RecordReader) Int8() int8 {
	return int8(r.Uint8())
}

// Uint8 reads one byte.
func (r *RecordReader) Uint8() uint8 {
	b := r.next(1, "u8")
	if b == nil {
		return 0
	}
	return b[0]
}

// Int16 reads a little-endian i16.
func (r *RecordReader) Int16() int16 {
	return int16(r.Uint16())
}

// Uint16 reads a little-endian u16.
func (r *RecordReader) Uint16() uint16 {
	b := r.next(2, "u16")
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int32 reads a little-endian i32.
func (r *RecordReader) Int32() int32 {
	return int32(r.Uint32())
}

// Uint32 reads a little-endian u32.
func (r *RecordReader) Uint32() uint32 {
	b := r.next(4, "u32")
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Float32 reads a little-endian IEEE 754 f32.
func (r *RecordReader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Int8s fills dst with consecutive values. Fixed-size array fields pass a
// slice of the array, e.g. r.Int32s(row.Masks[:]).
func (r *RecordReader) Int8s(dst []int8) { readInto(dst, r.Int8) }

// Uint8s fills dst with consecutive u8 values.
func (r *RecordReader) Uint8s(dst []uint8) { readInto(dst, r.Uint8) }

// Int16s fills dst with consecutive i16 values.
func (r *RecordReader) Int16s(dst []int16) { readInto(dst, r.Int16) }

// Uint16s fills dst with consecutive u16 values.
func (r *RecordReader) Uint16s(dst []uint16) { readInto(dst, r.Uint16) }

// Int32s fills dst with consecutive i32 values.
func (r *RecordReader) Int32s(dst []int32) { readInto(dst, r.Int32) }

// Uint32s fills dst with consecutive u32 values.
func (r *RecordReader) Uint32s(dst []uint32) { readInto(dst, r.Uint32) }

// Float32s fills dst with consecutive f32 values.
func (r *RecordReader) Float32s(dst []float32) { readInto(dst, r.Float32) }

func readInto[T any](dst []T, read func() T) {
	for i := range dst {
		dst[i] = read()
	}
}

// StringField reads a string block offset and resolves it.
func (r *RecordReader) StringField() string {
	off := r.Uint32()
	if r.err != nil {
		return ""
	}
	s, err := ResolveString(off, r.pool)
	if err != nil {
		r.err = fmt.Errorf("read string at record offset %d: %w", r.pos-4, err)
		return ""
	}
	return s
}

// StringFields fills dst with consecutive string fields.
func (r *RecordReader) StringFields(dst []string) { readInto(dst, r.StringField) }

// LocalizedString reads eight string offsets, resolving each in slot order,
// then the flags word.
func (r *RecordReader) LocalizedString() LocalizedString {
	var s LocalizedString
	r.StringFields(s.Values[:])
	s.Flags = r.Uint32()
	return s
}

// ExtendedLocalizedString reads sixteen string offsets, resolving each in
// slot order, then the flags word.
func (r *RecordReader) ExtendedLocalizedString() ExtendedLocalizedString {
	var s ExtendedLocalizedString
	r.StringFields(s.Values[:])
	s.Flags = r.Uint32()
	return s
}

// Fail records err unless an earlier error is already held. Row decoders use
// it for errors found outside the reader, such as enum range checks.
func (r *RecordReader) Fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}
