package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the size of the fixed DBC header in bytes.
const HeaderSize = 20

// Magic is the four byte signature at the start of every DBC file.
var Magic = [4]byte{'W', 'D', 'B', 'C'}

// MagicValue is Magic read as a little-endian u32.
const MagicValue uint32 = 0x43424457

// Header is the fixed-size header that precedes the record block.
// The magic is implied; it is checked on decode and always written on encode.
type Header struct {
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32
}

// RecordBlockSize returns the number of bytes taken by the record block.
func (h Header) RecordBlockSize() uint64 {
	return uint64(h.RecordCount) * uint64(h.RecordSize)
}

// Validate checks record size and field count against the values a table
// layout expects. Record size is checked first.
func (h Header) Validate(recordSize, fieldCount uint32) error {
	if h.RecordSize != recordSize {
		return &InvalidHeaderError{Kind: HeaderRecordSize, Expected: recordSize, Actual: h.RecordSize}
	}
	if h.FieldCount != fieldCount {
		return &InvalidHeaderError{Kind: HeaderFieldCount, Expected: fieldCount, Actual: h.FieldCount}
	}
	return nil
}

// Bytes returns the encoded header.
func (h Header) Bytes() [HeaderSize]byte {
	var buf [HeaderSize]byte
	EncodeHeader(buf[:], h)
	return buf
}

// EncodeHeader writes h into the first 20 bytes of dst.
// Format: [Magic(4)][RecordCount(4)][FieldCount(4)][RecordSize(4)][StringBlockSize(4)]
func EncodeHeader(dst []byte, h Header) {
	_ = dst[HeaderSize-1]
	copy(dst[0:4], Magic[:])
	binary.LittleEndian.PutUint32(dst[4:8], h.RecordCount)
	binary.LittleEndian.PutUint32(dst[8:12], h.FieldCount)
	binary.LittleEndian.PutUint32(dst[12:16], h.RecordSize)
	binary.LittleEndian.PutUint32(dst[16:20], h.StringBlockSize)
}

// DecodeHeader reads the first 20 bytes of src into a Header.
func DecodeHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, fmt.Errorf("data too short for header: %d < %d: %w", len(src), HeaderSize, io.ErrUnexpectedEOF)
	}

	if magic := binary.LittleEndian.Uint32(src[0:4]); magic != MagicValue {
		return Header{}, &InvalidHeaderError{Kind: HeaderMagic, Expected: MagicValue, Actual: magic}
	}

	return Header{
		RecordCount:     binary.LittleEndian.Uint32(src[4:8]),
		FieldCount:      binary.LittleEndian.Uint32(src[8:12]),
		RecordSize:      binary.LittleEndian.Uint32(src[12:16]),
		StringBlockSize: binary.LittleEndian.Uint32(src[16:20]),
	}, nil
}

// ReadHeader reads and decodes exactly HeaderSize bytes from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	return DecodeHeader(buf[:])
}

// WriteHeader encodes h and writes it to w.
func WriteHeader(w io.Writer, h Header) error {
	buf := h.Bytes()
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}
