package wrath

import (
	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/dbc"
	"github.com/ssargent/wdbc/pkg/key"
)

// SpellIconKey is the primary key of SpellIcon.
type SpellIconKey = key.Key[uint32]

// SpellIcon maps a spell icon ID to its texture path.
type SpellIcon struct {
	ID              SpellIconKey
	TextureFilename string
}

// Layout returns the SpellIcon record layout.
func (SpellIcon) Layout() dbc.Layout {
	return dbc.Layout{Name: "SpellIcon", RecordSize: 8, FieldCount: 2}
}

// PrimaryKey returns the row ID.
func (row SpellIcon) PrimaryKey() SpellIconKey {
	return row.ID
}

// DecodeRecord reads one SpellIcon record.
func (row *SpellIcon) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Uint32())
	row.TextureFilename = r.StringField()
	return r.Err()
}

// EncodeRecord writes one SpellIcon record.
func (row *SpellIcon) EncodeRecord(w *codec.RecordWriter) {
	w.PutUint32(row.ID.ID)
	w.PutString(row.TextureFilename)
}
