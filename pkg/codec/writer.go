package codec

import (
	"encoding/binary"
	"math"
)

// RecordWriter encodes the fields of records, in order, into one contiguous
// record block. String fields are interned in the writer's StringCache, so
// the offsets written here always agree with the string block it produces.
type RecordWriter struct {
	buf     []byte
	strings *StringCache
}

// NewRecordWriter creates a writer backed by a fresh StringCache. sizeHint
// preallocates the record block.
func NewRecordWriter(sizeHint int) *RecordWriter {
	return &RecordWriter{
		buf:     make([]byte, 0, sizeHint),
		strings: NewStringCache(),
	}
}

// Bytes returns the encoded record block.
func (w *RecordWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of record bytes written so far.
func (w *RecordWriter) Len() int {
	return len(w.buf)
}

// Strings returns the cache holding every string written so far.
func (w *RecordWriter) Strings() *StringCache {
	return w.strings
}

// Pad writes n zero bytes.
func (w *RecordWriter) Pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// PutInt8 writes one signed byte.
func (w *RecordWriter) PutInt8(v int8) {
	w.buf = append(w.buf, byte(v))
}

// PutUint8 writes one byte.
func (w *RecordWriter) PutUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutInt16 writes a little-endian i16.
func (w *RecordWriter) PutInt16(v int16) {
	w.PutUint16(uint16(v))
}

// PutUint16 writes a little-endian u16.
func (w *RecordWriter) PutUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutInt32 writes a little-endian i32.
func (w *RecordWriter) PutInt32(v int32) {
	w.PutUint32(uint32(v))
}

// PutUint32 writes a little-endian u32.
func (w *RecordWriter) PutUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutFloat32 writes a little-endian IEEE 754 f32.
func (w *RecordWriter) PutFloat32(v float32) {
	w.PutUint32(math.Float32bits(v))
}

// PutInt8s writes each value of an array field in order.
func (w *RecordWriter) PutInt8s(v []int8) { writeFrom(v, w.PutInt8) }

// PutUint8s writes consecutive u8 values.
func (w *RecordWriter) PutUint8s(v []uint8) { writeFrom(v, w.PutUint8) }

// PutInt16s writes consecutive i16 values.
func (w *RecordWriter) PutInt16s(v []int16) { writeFrom(v, w.PutInt16) }

// PutUint16s writes consecutive u16 values.
func (w *RecordWriter) PutUint16s(v []uint16) { writeFrom(v, w.PutUint16) }

// PutInt32s writes consecutive i32 values.
func (w *RecordWriter) PutInt32s(v []int32) { writeFrom(v, w.PutInt32) }

// PutUint32s writes consecutive u32 values.
func (w *RecordWriter) PutUint32s(v []uint32) { writeFrom(v, w.PutUint32) }

// PutFloat32s writes consecutive f32 values.
func (w *RecordWriter) PutFloat32s(v []float32) { writeFrom(v, w.PutFloat32) }

func writeFrom[T any](src []T, put func(T)) {
	for _, v := range src {
		put(v)
	}
}

// PutString interns s and writes its string block offset.
func (w *RecordWriter) PutString(s string) {
	w.PutUint32(w.strings.Add(s))
}

// PutStrings interns and writes each string in order.
func (w *RecordWriter) PutStrings(v []string) { writeFrom(v, w.PutString) }

// PutLocalizedString writes the eight slot offsets in slot order, then flags.
func (w *RecordWriter) PutLocalizedString(s LocalizedString) {
	w.PutStrings(s.Values[:])
	w.PutUint32(s.Flags)
}

// PutExtendedLocalizedString writes the sixteen slot offsets in slot order,
// then flags.
func (w *RecordWriter) PutExtendedLocalizedString(s ExtendedLocalizedString) {
	w.PutStrings(s.Values[:])
	w.PutUint32(s.Flags)
}
