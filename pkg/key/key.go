// Package key provides typed primary keys and foreign keys for DBC tables.
//
// A Key wraps the integer primary key of a table row. The same type is
// embedded in other tables' rows to refer to that row. References are never
// validated: a zero or dangling key is a legal value that simply finds no row.
package key

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
)

// Int is the set of primary key integer types.
type Int interface {
	~int32 | ~uint32
}

// Narrow is the set of integer types that always fit in any Int.
type Narrow interface {
	~int8 | ~int16 | ~uint8 | ~uint16
}

// Wide is the set of integer types that may not fit in an Int.
type Wide interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint
}

// ErrOutOfRange is matched by every *ConversionError.
var ErrOutOfRange = errors.New("value out of key range")

// Key is the primary key of a table row.
type Key[T Int] struct {
	ID T
}

// New returns the key for id.
func New[T Int](id T) Key[T] {
	return Key[T]{ID: id}
}

// FromNarrow converts a narrow integer to a key. It never fails; negative
// values sign-extend, and wrap when T is unsigned.
func FromNarrow[T Int, N Narrow](n N) Key[T] {
	return Key[T]{ID: T(n)}
}

// TryFromWide converts a wide integer to a key. It fails with a
// *ConversionError carrying w when w is outside the range of T.
func TryFromWide[T Int, W Wide](w W) (Key[T], error) {
	id := T(w)
	if W(id) != w || (id < 0) != (w < 0) {
		return Key[T]{}, &ConversionError[W]{Value: w}
	}
	return Key[T]{ID: id}, nil
}

// ConversionError reports a value that does not fit in a key.
type ConversionError[W Wide] struct {
	Value W
}

func (e *ConversionError[W]) Error() string {
	return fmt.Sprintf("%v does not fit in a key", e.Value)
}

func (e *ConversionError[W]) Is(target error) bool {
	return target == ErrOutOfRange
}

// IsZero reports whether k is the zero key, which tables use as "no reference".
func (k Key[T]) IsZero() bool {
	return k.ID == 0
}

// Compare orders keys by ID.
func (k Key[T]) Compare(other Key[T]) int {
	return cmp.Compare(k.ID, other.ID)
}

func (k Key[T]) String() string {
	if k.ID < 0 {
		return strconv.FormatInt(int64(k.ID), 10)
	}
	return strconv.FormatUint(uint64(k.ID), 10)
}
