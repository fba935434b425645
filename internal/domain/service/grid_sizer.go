package service

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"GridAgg-App/internal/domain/helper"
	"GridAgg-App/internal/domain/model"
)

// ComputeGridSpec 全境界ボックスからセルサイズ（幅・高さの中央値）と原点（最小座標）を推定する
// 入力が空の場合はゼロ値の GridSpec を返す
func ComputeGridSpec(boxes []model.BoundingBox) (model.GridSpec, error) {
	if len(boxes) == 0 {
		return model.GridSpec{}, nil
	}

	widths := make([]float64, len(boxes))
	heights := make([]float64, len(boxes))
	minXs := make([]float64, len(boxes))
	minYs := make([]float64, len(boxes))
	for i, box := range boxes {
		widths[i] = box.Width()
		heights[i] = box.Height()
		minXs[i] = box.MinX
		minYs[i] = box.MinY
	}

	cellWidth, _ := helper.Median(widths)
	cellHeight, _ := helper.Median(heights)

	// NaN も弾くため否定形で判定
	if !(cellWidth > 0) || !(cellHeight > 0) {
		return model.GridSpec{}, fmt.Errorf("cell_width=%g, cell_height=%g: %w", cellWidth, cellHeight, model.ErrDegenerateGridSpec)
	}

	return model.GridSpec{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		OriginX:    floats.Min(minXs),
		OriginY:    floats.Min(minYs),
	}, nil
}
