package helper

import (
	"fmt"

	"github.com/paulmach/orb"

	"GridAgg-App/internal/domain/model"
)

// PolygonBoundingBox ポリゴンの外周リング（最初のリング）から境界ボックスを計算
func PolygonBoundingBox(polygon orb.Polygon) (model.BoundingBox, error) {
	if len(polygon) == 0 {
		return model.BoundingBox{}, fmt.Errorf("リングがありません: %w", model.ErrMalformedFeature)
	}
	ring := polygon[0]
	if len(ring) == 0 {
		return model.BoundingBox{}, fmt.Errorf("外周リングが空です: %w", model.ErrMalformedFeature)
	}

	// orb.Ring.Bound は全頂点の最小・最大を返す
	bound := ring.Bound()

	return model.BoundingBox{
		MinX: bound.Min.X(),
		MinY: bound.Min.Y(),
		MaxX: bound.Max.X(),
		MaxY: bound.Max.Y(),
	}, nil
}

// ExtractBoundingBoxes 全フィーチャーの境界ボックスを入力順で計算
func ExtractBoundingBoxes(features []model.Feature) ([]model.BoundingBox, error) {
	boxes := make([]model.BoundingBox, 0, len(features))
	for i := range features {
		box, err := PolygonBoundingBox(features[i].Geometry)
		if err != nil {
			return nil, fmt.Errorf("フィーチャー #%d: %w", i, err)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// RectanglePolygon 境界ボックスから閉じた矩形ポリゴンを作成
// 頂点順: 左下 → 左上 → 右上 → 右下 → 左下
func RectanglePolygon(minX, minY, maxX, maxY float64) orb.Polygon {
	return orb.Polygon{
		orb.Ring{
			{minX, minY}, // 左下
			{minX, maxY}, // 左上
			{maxX, maxY}, // 右上
			{maxX, minY}, // 右下
			{minX, minY}, // 閉じる
		},
	}
}
