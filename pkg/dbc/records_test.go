package dbc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/wdbc/pkg/codec"
	"github.com/ssargent/wdbc/pkg/key"
	"github.com/ssargent/wdbc/pkg/schema"
)

const recordsYAML = `
enums:
  - name: InstanceType
    values: { Normal: 0, Group: 1, Raid: 2 }

tables:
  - name: Icon
    record_size: 8
    field_count: 2
    primary_key: id
    fields:
      - { name: id, type: int32 }
      - { name: name, type: string }

  - name: Zone
    record_size: 60
    field_count: 22
    primary_key: id
    fields:
      - { name: id, type: uint32 }
      - { name: kind, type: uint8, enum: InstanceType }
      - { name: flags, type: uint8, count: 3 }
      - { name: depth, type: int16 }
      - { name: level, type: uint16 }
      - { name: scale, type: float32 }
      - { name: name, type: localized_string }
      - { name: icon, type: int32, references: Icon }
      - { name: tag, type: int8 }
      - { name: pad, type: int8, count: 3 }
`

func loadSchema(t *testing.T, name string) *schema.Schema {
	t.Helper()
	reg, err := schema.Parse([]byte(recordsYAML))
	require.NoError(t, err)
	s, ok := reg.Table(name)
	require.True(t, ok)
	return s
}

func zoneRecord(id uint32, kind uint8, name string) Record {
	var loc codec.LocalizedString
	loc.Set(codec.LocaleEnGB, name)
	loc.Flags = 0xff
	return Record{Values: []any{
		key.New(id),
		kind,
		[]uint8{1, 2, 3},
		int16(-5),
		uint16(60),
		float32(1.5),
		loc,
		key.New[int32](7),
		int8(-1),
		[]int8{0, 0, 0},
	}}
}

func TestReadRecords_MatchesTypedTable(t *testing.T) {
	s := loadSchema(t, "Icon")

	table, err := ReadRecords(bytes.NewReader(exampleBytes()), s)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, []any{key.New[int32](1), "Foo"}, table.Rows[0].Values)
	assert.Equal(t, []any{key.New[int32](2), ""}, table.Rows[1].Values)

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, table))
	assert.Equal(t, exampleBytes(), buf.Bytes())
}

func TestRecords_RoundTrip(t *testing.T) {
	s := loadSchema(t, "Zone")
	table := &RecordTable{Schema: s, Rows: []Record{
		zoneRecord(10, 0, "Elwynn Forest"),
		zoneRecord(20, 2, "Molten Core"),
		zoneRecord(30, 1, "Elwynn Forest"),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, table))

	back, err := ReadRecords(bytes.NewReader(buf.Bytes()), s)
	require.NoError(t, err)
	assert.Equal(t, table.Rows, back.Rows)
}

func TestRecords_AcceptsPlainIntegersForKeys(t *testing.T) {
	s := loadSchema(t, "Icon")
	table := &RecordTable{Schema: s, Rows: []Record{{Values: []any{int32(4), "Bar"}}}}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, table))

	back, err := ReadRecords(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, []any{key.New[int32](4), "Bar"}, back.Rows[0].Values)
}

func TestReadRecords_EnumRange(t *testing.T) {
	s := loadSchema(t, "Zone")

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, &RecordTable{Schema: s, Rows: []Record{
		zoneRecord(1, 0, "ok"),
		zoneRecord(2, 9, "bad"),
	}}))

	table, err := ReadRecords(&buf, s)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, codec.ErrEnumRange))

	var rerr *codec.EnumRangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "InstanceType", rerr.Enum)
	assert.Equal(t, int64(9), rerr.Value)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "field kind")
}

func TestReadRecords_SchemaMismatch(t *testing.T) {
	_, err := ReadRecords(bytes.NewReader(exampleBytes()), loadSchema(t, "Zone"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrRecordSize))
}

func TestWriteRecords_ValueErrors(t *testing.T) {
	s := loadSchema(t, "Icon")

	testCases := []struct {
		name   string
		values []any
		errMsg string
	}{
		{"wrong value count", []any{int32(1)}, "has 1 values, schema has 2 fields"},
		{"wrong scalar type", []any{int32(1), 5}, "Icon.name: want string, got int"},
		{"wrong key width", []any{key.New[uint32](1), "x"}, "Icon.id: want int32"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := WriteRecords(&bytes.Buffer{}, &RecordTable{Schema: s, Rows: []Record{{Values: tc.values}}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	t.Run("wrong array length", func(t *testing.T) {
		zone := loadSchema(t, "Zone")
		rec := zoneRecord(1, 0, "x")
		rec.Values[2] = []uint8{1, 2}

		err := WriteRecords(&bytes.Buffer{}, &RecordTable{Schema: zone, Rows: []Record{rec}})
		require.Error(t, err)

		var verr *ValueTypeError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "flags", verr.Field)
		assert.Equal(t, "[3]uint8", verr.Want)
	})
}

func TestRecordTable_Get(t *testing.T) {
	s := loadSchema(t, "Zone")
	table := &RecordTable{Schema: s, Rows: []Record{
		zoneRecord(10, 0, "first"),
		zoneRecord(20, 0, "second"),
		zoneRecord(10, 0, "duplicate"),
	}}

	rec := table.Get(10)
	require.NotNil(t, rec)
	assert.Same(t, &table.Rows[0], rec)

	assert.Nil(t, table.Get(0))
	assert.Nil(t, table.Get(99))

	v, ok := table.Value(1, "name")
	require.True(t, ok)
	assert.Equal(t, "second", v.(codec.LocalizedString).Get(codec.LocaleEnGB))

	_, ok = table.Value(1, "missing")
	assert.False(t, ok)
	_, ok = table.Value(5, "name")
	assert.False(t, ok)
}

func TestRecords_CountOfOneIsScalar(t *testing.T) {
	reg, err := schema.Parse([]byte(`
tables:
  - name: Single
    record_size: 8
    field_count: 2
    primary_key: id
    fields:
      - { name: id, type: int32, count: 1 }
      - { name: value, type: int32, count: 1 }
`))
	require.NoError(t, err)
	s, _ := reg.Table("Single")

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, &RecordTable{Schema: s, Rows: []Record{
		{Values: []any{key.New[int32](3), int32(42)}},
	}}))

	back, err := ReadRecords(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, []any{key.New[int32](3), int32(42)}, back.Rows[0].Values)
}
