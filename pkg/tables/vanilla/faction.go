package vanilla

import (
	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/dbc"
	"github.com/ssargent/wdbc/pkg/key"
)

// FactionKey is the primary key of Faction.
type FactionKey = key.Key[int32]

// Faction is a reputation faction.
type Faction struct {
	ID                  FactionKey
	ReputationIndex     int32
	ReputationRaceMask  [4]int32
	ReputationClassMask [4]int32
	ReputationBase      [4]int32
	ReputationFlags     [4]int32
	ParentFaction       FactionKey
	Name                codec.LocalizedString
	Description         codec.LocalizedString
}

// Layout returns the Faction record layout.
func (Faction) Layout() dbc.Layout {
	return dbc.Layout{Name: "Faction", RecordSize: 148, FieldCount: 37}
}

// PrimaryKey returns the row ID.
func (row Faction) PrimaryKey() FactionKey {
	return row.ID
}

// DecodeRecord reads one Faction record.
func (row *Faction) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Int32())
	row.ReputationIndex = r.Int32()
	r.Int32s(row.ReputationRaceMask[:])
	r.Int32s(row.ReputationClassMask[:])
	r.Int32s(row.ReputationBase[:])
	r.Int32s(row.ReputationFlags[:])
	row.ParentFaction = key.New(r.Int32())
	row.Name = r.LocalizedString()
	row.Description = r.LocalizedString()
	return r.Err()
}

// EncodeRecord writes one Faction record.
func (row *Faction) EncodeRecord(w *codec.RecordWriter) {
	w.PutInt32(row.ID.ID)
	w.PutInt32(row.ReputationIndex)
	w.PutInt32s(row.ReputationRaceMask[:])
	w.PutInt32s(row.ReputationClassMask[:])
	w.PutInt32s(row.ReputationBase[:])
	w.PutInt32s(row.ReputationFlags[:])
	w.PutInt32(row.ParentFaction.ID)
	w.PutLocalizedString(row.Name)
	w.PutLocalizedString(row.Description)
}
