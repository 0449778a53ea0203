package dbc

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/ssargent/wdbc/pkg/codec"
)

// preallocLimit caps how much is allocated up front from header sizes
// before any data has arrived.
const preallocLimit = 1 << 20

// readBlocks reads the header, validates it against l, then buffers the
// record block and the string block.
func readBlocks(rd io.Reader, l Layout, o options) (codec.Header, []byte, []byte, error) {
	h, err := codec.ReadHeader(rd)
	if err != nil {
		return codec.Header{}, nil, nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	if err := h.Validate(l.RecordSize, l.FieldCount); err != nil {
		return codec.Header{}, nil, nil, fmt.Errorf("%s: %w", l.Name, err)
	}

	records, err := readExactly(rd, h.RecordBlockSize())
	if err != nil {
		return codec.Header{}, nil, nil, fmt.Errorf("%s: failed to read record block: %w", l.Name, err)
	}

	pool, err := readExactly(rd, uint64(h.StringBlockSize))
	if err != nil {
		return codec.Header{}, nil, nil, fmt.Errorf("%s: failed to read string block: %w", l.Name, err)
	}

	o.logger.Debug("dbc: read table blocks",
		"table", l.Name,
		"records", h.RecordCount,
		"record_size", h.RecordSize,
		"string_block_size", h.StringBlockSize)

	return h, records, pool, nil
}

func readExactly(rd io.Reader, n uint64) ([]byte, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("block of %d bytes is too large", n)
	}

	var buf bytes.Buffer
	buf.Grow(int(min(n, preallocLimit)))
	copied, err := io.CopyN(&buf, rd, int64(n))
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("got %d of %d bytes: %w", copied, n, err)
	}
	return buf.Bytes(), nil
}

// recordAt returns the i-th record window of the record block.
func recordAt(records []byte, h codec.Header, i uint32) []byte {
	start := uint64(i) * uint64(h.RecordSize)
	return records[start : start+uint64(h.RecordSize)]
}

// writeBlocks writes the header, the encoded record block and the string
// block built while encoding it.
func writeBlocks(w io.Writer, l Layout, count int, rw *codec.RecordWriter, o options) error {
	pool := rw.Strings()
	h := codec.Header{
		RecordCount:     uint32(count),
		FieldCount:      l.FieldCount,
		RecordSize:      l.RecordSize,
		StringBlockSize: pool.Size(),
	}

	if err := codec.WriteHeader(w, h); err != nil {
		return fmt.Errorf("%s: %w", l.Name, err)
	}
	if _, err := w.Write(rw.Bytes()); err != nil {
		return fmt.Errorf("%s: failed to write record block: %w", l.Name, err)
	}
	if _, err := w.Write(pool.Bytes()); err != nil {
		return fmt.Errorf("%s: failed to write string block: %w", l.Name, err)
	}

	o.logger.Debug("dbc: wrote table",
		"table", l.Name,
		"records", h.RecordCount,
		"strings", pool.Len(),
		"string_block_size", h.StringBlockSize)

	return nil
}

// checkEncodedSize verifies that row i produced exactly one record.
func checkEncodedSize(l Layout, i, before, after int) error {
	if n := after - before; n != int(l.RecordSize) {
		return fmt.Errorf("%s: row %d encoded %d bytes, record size is %d", l.Name, i, n, l.RecordSize)
	}
	return nil
}
