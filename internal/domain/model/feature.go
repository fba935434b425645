package model

import (
	"github.com/paulmach/orb"
)

// Feature 入力FeatureCollectionの1セル（細グリッドセル）
// 読み込み後は変更しない
type Feature struct {
	Properties map[string]Value // 属性（型付きの値）
	Geometry   orb.Polygon      // ポリゴン（外周リングのみ使用）
}

// Property 指定キーの属性値を取得する（存在しない場合はNull）
func (f *Feature) Property(key string) Value {
	if v, ok := f.Properties[key]; ok {
		return v
	}
	return NullValue()
}

// BoundingBox フィーチャーの軸平行境界ボックス
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width 境界ボックスの幅
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height 境界ボックスの高さ
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// MinCorner 左下の角（バケット分けのアンカー点）
func (b BoundingBox) MinCorner() orb.Point {
	return orb.Point{b.MinX, b.MinY}
}

// GridSpec 全フィーチャーから推定した細グリッドのセルサイズと原点
type GridSpec struct {
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
	OriginX    float64 `json:"origin_x"`
	OriginY    float64 `json:"origin_y"`
}

// IsZero 空入力時のゼロ値かどうか
func (g GridSpec) IsZero() bool {
	return g == GridSpec{}
}
