package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentCellKey_ZoneID(t *testing.T) {
	assert.Equal(t, "0_0", ParentCellKey{}.ZoneID())
	assert.Equal(t, "12_3", ParentCellKey{Col: 12, Row: 3}.ZoneID())
	assert.Equal(t, "-1_-20", ParentCellKey{Col: -1, Row: -20}.ZoneID())
}

func TestOrderedProperties_MarshalJSON(t *testing.T) {
	props := OrderedProperties{
		{Key: PropZoneID, Value: "3_4"},
		{Key: PropSourceCells, Value: 4},
		{Key: "名前", Value: "<東京&大阪>"},
		{Key: "avg", Value: 2.5},
		{Key: "pop", Value: FieldMean(25)},
	}

	data, err := props.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"zone_id":"3_4","source_cells":4,"名前":"<東京&大阪>","avg":2.5,"pop":25.0}`, string(data))
}

func TestOrderedProperties_Empty(t *testing.T) {
	data, err := json.Marshal(OrderedProperties{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestOutputFeature_Accessors(t *testing.T) {
	f := OutputFeature{Properties: OrderedProperties{
		{Key: PropZoneID, Value: "1_2"},
		{Key: PropSourceCells, Value: 3},
	}}
	assert.Equal(t, "1_2", f.ZoneID())
	assert.Equal(t, 3, f.SourceCells())

	var empty OutputFeature
	assert.Equal(t, "", empty.ZoneID())
	assert.Equal(t, 0, empty.SourceCells())
}

func TestRunSummary_String(t *testing.T) {
	s := &RunSummary{CellCount: 12, OutputPath: "data/Index_5km.geojson"}
	assert.Equal(t, "Generated 12 cells -> data/Index_5km.geojson", s.String())
}
