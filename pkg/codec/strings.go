package codec

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// ResolveString returns the NUL-terminated string stored at offset in the
// string block. Offset 0 is always the empty string, even for an empty pool.
// A string missing its terminator runs to the end of the pool.
func ResolveString(offset uint32, pool []byte) (string, error) {
	if offset == 0 {
		return "", nil
	}
	if uint64(offset) >= uint64(len(pool)) {
		return "", &StringDecodeError{Offset: offset, PoolSize: len(pool), Err: ErrStringOutOfBounds}
	}

	span := pool[offset:]
	if end := bytes.IndexByte(span, 0); end >= 0 {
		span = span[:end]
	}
	if !utf8.Valid(span) {
		return "", &StringDecodeError{Offset: offset, PoolSize: len(pool), Err: ErrInvalidUTF8}
	}

	return string(span), nil
}

// StringCache builds a string block for the write path.
//
// The block always starts with a single zero byte so that offset 0 is the
// empty string. Equal non-empty strings are stored once and share an offset.
// Size and Bytes describe the same buffer that Add assigned offsets into.
// The zero value is an empty cache ready to use.
type StringCache struct {
	buf     []byte
	offsets map[string]uint32
}

// NewStringCache creates an empty cache holding only the leading zero byte.
func NewStringCache() *StringCache {
	return &StringCache{
		buf:     []byte{0},
		offsets: make(map[string]uint32),
	}
}

// Add interns s and returns its offset in the final string block.
// Anything after an embedded NUL is dropped, since it could never be read back.
func (c *StringCache) Add(s string) uint32 {
	c.init()
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return 0
	}
	if off, ok := c.offsets[s]; ok {
		return off
	}

	off := uint32(len(c.buf))
	c.buf = append(c.buf, s...)
	c.buf = append(c.buf, 0)
	c.offsets[s] = off
	return off
}

// Size returns the total string block size, including the leading zero byte.
func (c *StringCache) Size() uint32 {
	c.init()
	return uint32(len(c.buf))
}

// Bytes returns the string block. The slice is owned by the cache.
func (c *StringCache) Bytes() []byte {
	c.init()
	return c.buf
}

func (c *StringCache) init() {
	if len(c.buf) == 0 {
		c.buf = []byte{0}
	}
	if c.offsets == nil {
		c.offsets = make(map[string]uint32)
	}
}

// Len returns the number of distinct non-empty strings.
func (c *StringCache) Len() int {
	return len(c.offsets)
}
