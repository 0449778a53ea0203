//go:build fuzz
// +build fuzz

package codec

import (
	"testing"
)

// FuzzResolveString checks that arbitrary pools and offsets never panic
func FuzzResolveString(f *testing.F) {
	f.Add(uint32(0), []byte{})
	f.Add(uint32(1), []byte("\x00Foo\x00"))
	f.Add(uint32(3), []byte{0x00, 0xff, 0xfe})

	f.Fuzz(func(t *testing.T, offset uint32, pool []byte) {
		s, err := ResolveString(offset, pool)
		if offset == 0 && (err != nil || s != "") {
			t.Fatalf("offset 0 resolved to %q, %v", s, err)
		}
	})
}

// FuzzStringCache_RoundTrip tests that every interned string resolves back
func FuzzStringCache_RoundTrip(f *testing.F) {
	f.Add("", "Foo")
	f.Add("Foo", "Foo")
	f.Add("Stormwind", "Orgrimmar")

	f.Fuzz(func(t *testing.T, a, b string) {
		c := NewStringCache()
		offA := c.Add(a)
		offB := c.Add(b)

		if c.Size() != uint32(len(c.Bytes())) {
			t.Fatalf("size %d != len %d", c.Size(), len(c.Bytes()))
		}
		if c.Bytes()[0] != 0 {
			t.Fatalf("string block does not start with a zero byte")
		}

		for _, tc := range []struct {
			in  string
			off uint32
		}{{a, offA}, {b, offB}} {
			got, err := ResolveString(tc.off, c.Bytes())
			if err != nil {
				// invalid UTF-8 input is stored as-is and rejected on read
				continue
			}
			want := tc.in
			for i := 0; i < len(want); i++ {
				if want[i] == 0 {
					want = want[:i]
					break
				}
			}
			if got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
		}
	})
}
