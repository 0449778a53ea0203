// Package codec provides the binary primitives of the DBC table format.
//
// A DBC file is a fixed header, a block of fixed-width records and a
// trailing string block. This package knows the header, the little-endian
// field encodings, the string block and the two localized string layouts.
// It knows nothing about any particular table; see package dbc for the
// read/write protocol that ties these pieces together.
//
// # File Format
//
//	[Magic(4)][RecordCount(4)][FieldCount(4)][RecordSize(4)][StringBlockSize(4)]
//	[Record 0 (RecordSize)]...[Record N-1 (RecordSize)]
//	[StringBlock (StringBlockSize)]
//
// Fields:
//   - Magic: the ASCII bytes "WDBC"
//   - RecordCount: number of records (little-endian)
//   - FieldCount: number of fields per record (little-endian)
//   - RecordSize: size of one record in bytes (little-endian)
//   - StringBlockSize: size of the string block in bytes (little-endian)
//
// # String Block
//
// The first byte of the string block is always zero, so offset 0 names the
// empty string. Every other string is NUL-terminated UTF-8. String fields in
// a record are u32 offsets into the block. ResolveString reads one back;
// StringCache builds a block on the write path and deduplicates equal
// strings.
//
// # Localized Strings
//
// LocalizedString holds 8 locale slots and ExtendedLocalizedString holds 16.
// Both are stored as one string offset per slot followed by a u32 flags word.
//
// # Usage
//
// Decoding the fields of one record:
//
//	r := codec.NewRecordReader(record, pool)
//	id := r.Int32()
//	name := r.StringField()
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// Encoding them again:
//
//	w := codec.NewRecordWriter(8)
//	w.PutInt32(id)
//	w.PutString(name)
//	records, pool := w.Bytes(), w.Strings().Bytes()
//
// # Error Handling
//
// Header problems are reported as *InvalidHeaderError, string problems as
// *StringDecodeError and unknown enum values as *EnumRangeError. Each
// matches a sentinel (ErrInvalidMagic, ErrRecordSize, ErrFieldCount,
// ErrStringOutOfBounds, ErrInvalidUTF8, ErrEnumRange) with errors.Is.
// Reading past the end of a record yields io.ErrUnexpectedEOF.
//
// # Thread Safety
//
// RecordReader, RecordWriter and StringCache are not safe for concurrent
// use. Nothing in the package keeps global state, so independent readers
// and writers can run in parallel.
package codec
