package service

import (
	"fmt"

	"GridAgg-App/internal/domain/helper"
	"GridAgg-App/internal/domain/model"
)

// GridAggregationService 細グリッドを2×2の親グリッドへ集約するサービス
type GridAggregationService interface {
	// Aggregate 境界ボックス抽出 → セルサイズ推定 → バケット分け → 集約 を順に実行する
	Aggregate(features []model.Feature) (*model.AggregationResult, error)
}

type gridAggregationServiceImpl struct{}

// NewGridAggregationService 新しいGridAggregationServiceを作成
func NewGridAggregationService() GridAggregationService {
	return &gridAggregationServiceImpl{}
}

func (s *gridAggregationServiceImpl) Aggregate(features []model.Feature) (*model.AggregationResult, error) {
	if len(features) == 0 {
		return &model.AggregationResult{Features: []model.OutputFeature{}}, nil
	}

	boxes, err := helper.ExtractBoundingBoxes(features)
	if err != nil {
		return nil, fmt.Errorf("境界ボックスの抽出に失敗: %w", err)
	}

	grid, err := ComputeGridSpec(boxes)
	if err != nil {
		return nil, fmt.Errorf("グリッドサイズの推定に失敗: %w", err)
	}

	groups, err := BucketFeatures(features, boxes, grid)
	if err != nil {
		return nil, fmt.Errorf("バケット分けに失敗: %w", err)
	}

	fields := NumericFields(features)
	out := make([]model.OutputFeature, 0, len(groups))
	for _, group := range groups {
		out = append(out, AggregateGroup(group, grid, fields))
	}

	return &model.AggregationResult{
		Grid:       grid,
		Features:   out,
		InputCount: len(features),
	}, nil
}
