package service

import (
	"fmt"
	"math"

	"GridAgg-App/internal/domain/helper"
	"GridAgg-App/internal/domain/model"
)

// FineCellOf 境界ボックスの左下角から細グリッドの列・行を求める
func FineCellOf(box model.BoundingBox, grid model.GridSpec) (col, row int) {
	col = int(math.Floor((box.MinX - grid.OriginX) / grid.CellWidth))
	row = int(math.Floor((box.MinY - grid.OriginY) / grid.CellHeight))
	return col, row
}

// ParentCellOf 境界ボックスが属する親セル（2×2）のキーを求める
func ParentCellOf(box model.BoundingBox, grid model.GridSpec) model.ParentCellKey {
	col, row := FineCellOf(box, grid)
	return model.ParentCellKey{
		Col: helper.FloorDiv(col, model.ParentCellSpan),
		Row: helper.FloorDiv(row, model.ParentCellSpan),
	}
}

// BucketFeatures フィーチャーを親セルごとにグループ化する
// グループ順は最初に出現した順、グループ内はフィーチャーの入力順
func BucketFeatures(features []model.Feature, boxes []model.BoundingBox, grid model.GridSpec) ([]model.ParentGroup, error) {
	if len(features) != len(boxes) {
		return nil, fmt.Errorf("フィーチャー数(%d)と境界ボックス数(%d)が一致しません", len(features), len(boxes))
	}
	if len(features) == 0 {
		return []model.ParentGroup{}, nil
	}

	index := make(map[model.ParentCellKey]int)
	groups := make([]model.ParentGroup, 0)

	for i, feature := range features {
		key := ParentCellOf(boxes[i], grid)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, model.ParentGroup{Key: key})
		}
		groups[pos].Members = append(groups[pos].Members, feature)
	}

	return groups, nil
}
