package codec

import (
	"errors"
	"fmt"
)

// HeaderErrorKind identifies which header invariant failed.
type HeaderErrorKind int

const (
	// HeaderMagic means the first four bytes were not "WDBC".
	HeaderMagic HeaderErrorKind = iota
	// HeaderRecordSize means record_size disagrees with the table layout.
	HeaderRecordSize
	// HeaderFieldCount means field_count disagrees with the table layout.
	HeaderFieldCount
)

func (k HeaderErrorKind) String() string {
	switch k {
	case HeaderMagic:
		return "magic"
	case HeaderRecordSize:
		return "record size"
	case HeaderFieldCount:
		return "field count"
	default:
		return fmt.Sprintf("HeaderErrorKind(%d)", int(k))
	}
}

// Errors
var (
	ErrInvalidMagic      = errors.New("invalid DBC magic")
	ErrRecordSize        = errors.New("record size mismatch")
	ErrFieldCount        = errors.New("field count mismatch")
	ErrStringOutOfBounds = errors.New("string offset out of bounds")
	ErrInvalidUTF8       = errors.New("string is not valid UTF-8")
	ErrEnumRange         = errors.New("enum value out of range")
)

// InvalidHeaderError reports a header that cannot belong to the expected table.
// For HeaderMagic, Expected and Actual hold the magic as little-endian u32.
type InvalidHeaderError struct {
	Kind     HeaderErrorKind
	Expected uint32
	Actual   uint32
}

func (e *InvalidHeaderError) Error() string {
	if e.Kind == HeaderMagic {
		return fmt.Sprintf("invalid header: magic %#08x, want %#08x", e.Actual, e.Expected)
	}
	return fmt.Sprintf("invalid header: %s is %d, want %d", e.Kind, e.Actual, e.Expected)
}

// Is matches the sentinel for e.Kind.
func (e *InvalidHeaderError) Is(target error) bool {
	switch e.Kind {
	case HeaderMagic:
		return target == ErrInvalidMagic
	case HeaderRecordSize:
		return target == ErrRecordSize
	case HeaderFieldCount:
		return target == ErrFieldCount
	}
	return false
}

// StringDecodeError reports a string field that could not be resolved
// against the string block.
type StringDecodeError struct {
	Offset   uint32
	PoolSize int
	Err      error
}

func (e *StringDecodeError) Error() string {
	return fmt.Sprintf("string at offset %d (pool size %d): %v", e.Offset, e.PoolSize, e.Err)
}

func (e *StringDecodeError) Unwrap() error {
	return e.Err
}

// EnumRangeError reports an integer field that matches no variant of its enum.
type EnumRangeError struct {
	Enum  string
	Value int64
}

func (e *EnumRangeError) Error() string {
	return fmt.Sprintf("%s: value %d is not a known variant", e.Enum, e.Value)
}

func (e *EnumRangeError) Is(target error) bool {
	return target == ErrEnumRange
}
