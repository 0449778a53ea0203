package wrath

import (
	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/dbc"
	"github.com/ssargent/wdbc/pkg/key"
)

// LanguagesKey is the primary key of Languages.
type LanguagesKey = key.Key[uint32]

// Languages lists the spoken languages.
type Languages struct {
	ID   LanguagesKey
	Name codec.ExtendedLocalizedString
}

// Layout returns the Languages record layout.
func (Languages) Layout() dbc.Layout {
	return dbc.Layout{Name: "Languages", RecordSize: 72, FieldCount: 18}
}

// PrimaryKey returns the row ID.
func (row Languages) PrimaryKey() LanguagesKey {
	return row.ID
}

// DecodeRecord reads one Languages record.
func (row *Languages) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Uint32())
	row.Name = r.ExtendedLocalizedString()
	return r.Err()
}

// EncodeRecord writes one Languages record.
func (row *Languages) EncodeRecord(w *codec.RecordWriter) {
	w.PutUint32(row.ID.ID)
	w.PutExtendedLocalizedString(row.Name)
}

// LanguageWordsKey is the primary key of LanguageWords.
type LanguageWordsKey = key.Key[uint32]

// LanguageWords holds the words used to garble a language.
type LanguageWords struct {
	ID       LanguageWordsKey
	Language LanguagesKey
	Word     string
}

// Layout returns the LanguageWords record layout.
func (LanguageWords) Layout() dbc.Layout {
	return dbc.Layout{Name: "LanguageWords", RecordSize: 12, FieldCount: 3}
}

// PrimaryKey returns the row ID.
func (row LanguageWords) PrimaryKey() LanguageWordsKey {
	return row.ID
}

// DecodeRecord reads one LanguageWords record.
func (row *LanguageWords) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Uint32())
	row.Language = key.New(r.Uint32())
	row.Word = r.StringField()
	return r.Err()
}

// EncodeRecord writes one LanguageWords record.
func (row *LanguageWords) EncodeRecord(w *codec.RecordWriter) {
	w.PutUint32(row.ID.ID)
	w.PutUint32(row.Language.ID)
	w.PutString(row.Word)
}
