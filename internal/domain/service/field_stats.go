package service

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"GridAgg-App/internal/domain/helper"
	"GridAgg-App/internal/domain/model"
)

// ComputeFieldStats 指定フィールドの数値を集め、最小・最大・四分位と4階級の凡例を計算する
// 数値以外（文字列・真偽値・null・欠損）は対象外
func ComputeFieldStats(features []model.Feature, field string) (*model.FieldStats, error) {
	values := make([]float64, 0, len(features))
	for i := range features {
		if n, ok := features[i].Property(field).Number(); ok {
			values = append(values, n)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrNoNumericValues, field)
	}

	sort.Float64s(values)

	stats := &model.FieldStats{
		Field: field,
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Q1:    helper.SortedQuantile(values, 0.25),
		Q2:    helper.SortedQuantile(values, 0.50),
		Q3:    helper.SortedQuantile(values, 0.75),
	}
	stats.Classes = classBreaks(stats)

	return stats, nil
}

func classBreaks(s *model.FieldStats) []model.ClassBreak {
	bounds := []float64{s.Min, s.Q1, s.Q2, s.Q3}
	classes := make([]model.ClassBreak, len(bounds))
	for i, lower := range bounds {
		classes[i] = model.ClassBreak{Lower: lower, Color: model.ClassColors[i]}
		if i+1 < len(bounds) {
			upper := bounds[i+1]
			classes[i].Upper = &upper
		}
	}
	return classes
}
