package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridAgg-App/internal/domain/model"
)

func TestComputeGridSpec(t *testing.T) {
	tests := []struct {
		name    string
		boxes   []model.BoundingBox
		want    model.GridSpec
		wantErr error
	}{
		{
			name:  "empty input",
			boxes: nil,
			want:  model.GridSpec{},
		},
		{
			name: "odd count uses middle value",
			boxes: []model.BoundingBox{
				{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2},
				{MinX: 5, MinY: -1, MaxX: 8, MaxY: 1},
				{MinX: -2, MinY: 3, MaxX: -1.5, MaxY: 4},
			},
			want: model.GridSpec{CellWidth: 1, CellHeight: 2, OriginX: -2, OriginY: -1},
		},
		{
			name: "even count averages the two middle values",
			boxes: []model.BoundingBox{
				{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
				{MinX: 1, MinY: 0, MaxX: 3, MaxY: 4},
				{MinX: 3, MinY: 0, MaxX: 13, MaxY: 2},
				{MinX: 4, MinY: 1, MaxX: 7, MaxY: 2},
			},
			want: model.GridSpec{CellWidth: 2.5, CellHeight: 1.5, OriginX: 0, OriginY: 0},
		},
		{
			name: "zero width median",
			boxes: []model.BoundingBox{
				{MinX: 0, MinY: 0, MaxX: 0, MaxY: 1},
				{MinX: 1, MinY: 0, MaxX: 1, MaxY: 1},
			},
			wantErr: model.ErrDegenerateGridSpec,
		},
		{
			name: "zero height median",
			boxes: []model.BoundingBox{
				{MinX: 0, MinY: 0, MaxX: 1, MaxY: 0},
			},
			wantErr: model.ErrDegenerateGridSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGridSpec(tt.boxes)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGridSpec_Idempotent(t *testing.T) {
	boxes := []model.BoundingBox{
		{MinX: 0.1, MinY: 0.2, MaxX: 0.35, MaxY: 0.45},
		{MinX: 0.35, MinY: 0.2, MaxX: 0.6, MaxY: 0.46},
		{MinX: 0.1, MinY: 0.45, MaxX: 0.36, MaxY: 0.7},
	}

	first, err := ComputeGridSpec(boxes)
	require.NoError(t, err)
	second, err := ComputeGridSpec(boxes)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// 入力の並びは変更しない
	assert.Equal(t, 0.1, boxes[0].MinX)
	assert.Equal(t, 0.35, boxes[1].MinX)
}
