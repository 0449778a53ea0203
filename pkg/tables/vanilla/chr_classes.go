package vanilla

import (
	"fmt"

	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/dbc"
	"github.com/ssargent/wdbc/pkg/key"
)

// PowerType is the resource a class displays.
type PowerType int32

const (
	PowerTypeMana      PowerType = 0
	PowerTypeRage      PowerType = 1
	PowerTypeFocus     PowerType = 2
	PowerTypeEnergy    PowerType = 3
	PowerTypeHappiness PowerType = 4
)

// ParsePowerType converts a raw field value, rejecting unknown values.
func ParsePowerType(v int32) (PowerType, error) {
	switch p := PowerType(v); p {
	case PowerTypeMana, PowerTypeRage, PowerTypeFocus, PowerTypeEnergy, PowerTypeHappiness:
		return p, nil
	}
	return 0, &codec.EnumRangeError{Enum: "PowerType", Value: int64(v)}
}

func (p PowerType) String() string {
	switch p {
	case PowerTypeMana:
		return "Mana"
	case PowerTypeRage:
		return "Rage"
	case PowerTypeFocus:
		return "Focus"
	case PowerTypeEnergy:
		return "Energy"
	case PowerTypeHappiness:
		return "Happiness"
	}
	return fmt.Sprintf("PowerType(%d)", int32(p))
}

// ChrClassesKey is the primary key of ChrClasses.
type ChrClassesKey = key.Key[int32]

// ChrClasses describes a playable class.
type ChrClasses struct {
	ID              ChrClassesKey
	PlayerClass     int32
	DamageBonusStat int32
	DisplayPower    PowerType
	PetNameToken    string
	Name            codec.LocalizedString
	Filename        string
	ClassMask       int32
	HybridClass     int32
}

// Layout returns the ChrClasses record layout.
func (ChrClasses) Layout() dbc.Layout {
	return dbc.Layout{Name: "ChrClasses", RecordSize: 68, FieldCount: 17}
}

// PrimaryKey returns the row ID.
func (row ChrClasses) PrimaryKey() ChrClassesKey {
	return row.ID
}

// DecodeRecord reads one ChrClasses record.
func (row *ChrClasses) DecodeRecord(r *codec.RecordReader) error {
	row.ID = key.New(r.Int32())
	row.PlayerClass = r.Int32()
	row.DamageBonusStat = r.Int32()
	power, err := ParsePowerType(r.Int32())
	r.Fail(err)
	row.DisplayPower = power
	row.PetNameToken = r.StringField()
	row.Name = r.LocalizedString()
	row.Filename = r.StringField()
	row.ClassMask = r.Int32()
	row.HybridClass = r.Int32()
	return r.Err()
}

// EncodeRecord writes one ChrClasses record.
func (row *ChrClasses) EncodeRecord(w *codec.RecordWriter) {
	w.PutInt32(row.ID.ID)
	w.PutInt32(row.PlayerClass)
	w.PutInt32(row.DamageBonusStat)
	w.PutInt32(int32(row.DisplayPower))
	w.PutString(row.PetNameToken)
	w.PutLocalizedString(row.Name)
	w.PutString(row.Filename)
	w.PutInt32(row.ClassMask)
	w.PutInt32(row.HybridClass)
}
