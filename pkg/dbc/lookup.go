package dbc

// Keyed is a row with a primary key.
type Keyed[K comparable] interface {
	PrimaryKey() K
}

type keyedPtr[R any, K comparable] interface {
	*R
	Keyed[K]
}

// Get returns the first row, in file order, whose primary key equals k, or
// nil. Rows are neither sorted nor unique, so this is a linear scan. The
// returned pointer aliases t.Rows and may be used to modify the row.
func Get[R any, K comparable, PR keyedPtr[R, K]](t *Table[R], k K) *R {
	for i := range t.Rows {
		if PR(&t.Rows[i]).PrimaryKey() == k {
			return &t.Rows[i]
		}
	}
	return nil
}

// Contains reports whether any row has primary key k.
func Contains[R any, K comparable, PR keyedPtr[R, K]](t *Table[R], k K) bool {
	return Get[R, K, PR](t, k) != nil
}
