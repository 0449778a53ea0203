package vanilla

import (
	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/dbc"
	"github.com/ssargent/wdbc/pkg/key"
)

// LanguagesKey is the primary key of Languages.
type LanguagesKey = key.Key[int32]

// Languages lists the spoken languages.
type Languages struct {
	ID   LanguagesKey
	Name codec.LocalizedString
}

// Layout returns the Languages record layout.
func (Languages) Layout() dbc.Layout {
	return dbc.Layout{Name: "Languages", RecordSize: 40, FieldCount: 10}
}

// PrimaryKey returns the row ID.
func (row Languages) PrimaryKey() LanguagesKey {
	return row.ID
}

// DecodeRecord reads one Languages record.
func (row *Languages) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Int32())
	row.Name = r.LocalizedString()
	return r.Err()
}

// EncodeRecord writes one Languages record.
func (row *Languages) EncodeRecord(w *codec.RecordWriter) {
	w.PutInt32(row.ID.ID)
	w.PutLocalizedString(row.Name)
}

// LanguageWordsKey is the primary key of LanguageWords.
type LanguageWordsKey = key.Key[int32]

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
	row.ID = key.New(r.Int32())
	row.Language = key.New(r.Int32())
	row.Word = r.StringField()
	return r.Err()
}

// EncodeRecord writes one LanguageWords record.
func (row *LanguageWords) EncodeRecord(w *codec.RecordWriter) {
	w.PutInt32(row.ID.ID)
	w.PutInt32(row.Language.ID)
	w.PutString(row.Word)
}
