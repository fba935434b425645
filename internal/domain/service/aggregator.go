package service

import (
	"sort"

	"github.com/paulmach/orb"

	"GridAgg-App/internal/domain/helper"
	"GridAgg-App/internal/domain/model"
)

// NumericFields いずれかのフィーチャーで数値を持つプロパティキーを辞書順で返す
func NumericFields(features []model.Feature) []string {
	seen := make(map[string]struct{})
	for _, feature := range features {
		for key, value := range feature.Properties {
			if value.IsNumeric() {
				seen[key] = struct{}{}
			}
		}
	}

	fields := make([]string, 0, len(seen))
	for key := range seen {
		fields = append(fields, key)
	}
	sort.Strings(fields)
	return fields
}

// ParentPolygon 親セル全体を覆う矩形ポリゴン
func ParentPolygon(key model.ParentCellKey, grid model.GridSpec) orb.Polygon {
	spanX := grid.CellWidth * model.ParentCellSpan
	spanY := grid.CellHeight * model.ParentCellSpan

	minX := grid.OriginX + float64(key.Col)*spanX
	minY := grid.OriginY + float64(key.Row)*spanY

	return helper.RectanglePolygon(minX, minY, minX+spanX, minY+spanY)
}

// AggregateGroup 親セル1つ分の出力フィーチャーを作成する
// 各フィールドは数値を持つメンバーのみで平均し、該当なしの場合は出力しない
func AggregateGroup(group model.ParentGroup, grid model.GridSpec, fields []string) model.OutputFeature {
	props := make(model.OrderedProperties, 0, len(fields)+2)
	props = append(props,
		model.Property{Key: model.PropZoneID, Value: group.Key.ZoneID()},
		model.Property{Key: model.PropSourceCells, Value: len(group.Members)},
	)

	values := make([]float64, 0, len(group.Members))
	for _, field := range fields {
		values = values[:0]
		for i := range group.Members {
			if n, ok := group.Members[i].Property(field).Number(); ok {
				values = append(values, n)
			}
		}
		mean, ok := helper.Mean(values)
		if !ok {
			continue
		}
		props = append(props, model.Property{Key: field, Value: model.FieldMean(mean)})
	}

	return model.OutputFeature{
		Properties: props,
		Geometry:   ParentPolygon(group.Key, grid),
	}
}
