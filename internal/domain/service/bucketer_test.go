package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridAgg-App/internal/domain/model"
)

func TestParentCellOf(t *testing.T) {
	grid := model.GridSpec{CellWidth: 1, CellHeight: 2, OriginX: 0, OriginY: 0}

	tests := []struct {
		name string
		box  model.BoundingBox
		want model.ParentCellKey
	}{
		{"origin", model.BoundingBox{MinX: 0, MinY: 0}, model.ParentCellKey{Col: 0, Row: 0}},
		{"second fine column", model.BoundingBox{MinX: 1, MinY: 2}, model.ParentCellKey{Col: 0, Row: 0}},
		{"third fine column", model.BoundingBox{MinX: 2, MinY: 4}, model.ParentCellKey{Col: 1, Row: 1}},
		{"inside a fine cell", model.BoundingBox{MinX: 3.9, MinY: 7.9}, model.ParentCellKey{Col: 1, Row: 1}},
		{"negative offset floors", model.BoundingBox{MinX: -0.5, MinY: -2.5}, model.ParentCellKey{Col: -1, Row: -1}},
		{"far negative", model.BoundingBox{MinX: -3, MinY: -8}, model.ParentCellKey{Col: -2, Row: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentCellOf(tt.box, grid))
		})
	}
}

func TestBucketFeatures_LengthMismatch(t *testing.T) {
	_, err := BucketFeatures([]model.Feature{{}}, nil, model.GridSpec{CellWidth: 1, CellHeight: 1})
	require.Error(t, err)
}

func TestBucketFeatures_PreservesMemberOrder(t *testing.T) {
	grid := model.GridSpec{CellWidth: 1, CellHeight: 1}
	features := []model.Feature{
		{Properties: map[string]model.Value{"i": model.NumberValue(0)}},
		{Properties: map[string]model.Value{"i": model.NumberValue(1)}},
		{Properties: map[string]model.Value{"i": model.NumberValue(2)}},
	}
	boxes := []model.BoundingBox{
		{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2},
		{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6},
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
	}

	groups, err := BucketFeatures(features, boxes, grid)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, model.ParentCellKey{Col: 0, Row: 0}, groups[0].Key)
	require.Len(t, groups[0].Members, 2)
	first, _ := groups[0].Members[0].Property("i").Number()
	second, _ := groups[0].Members[1].Property("i").Number()
	assert.Equal(t, 0.0, first)
	assert.Equal(t, 2.0, second)

	assert.Equal(t, model.ParentCellKey{Col: 2, Row: 2}, groups[1].Key)
}
