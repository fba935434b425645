package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/domain/repository"
	"GridAgg-App/internal/domain/service"
	"GridAgg-App/internal/infrastructure/geocodec"
	"GridAgg-App/internal/logger"
)

type AggregateUseCase interface {
	// Run 入力ドキュメントを読み込み、集約結果を出力先へ書き込む
	Run(ctx context.Context, inputPath, outputPath string) (*model.RunSummary, error)

	// AggregateDocument GeoJSONを集約し、シリアライズ済みの出力と結果を返す（ストアを使わない）
	AggregateDocument(data []byte) ([]byte, *model.AggregationResult, error)

	// FieldStats GeoJSONの指定フィールドについて四分位による4階級の凡例を計算する
	FieldStats(data []byte, field string) (*model.FieldStats, error)
}

// aggregateUseCaseImpl はAggregateUseCaseの実装
type aggregateUseCaseImpl struct {
	store          repository.DocumentStore
	service        service.GridAggregationService
	collectionName string
}

// NewAggregateUseCase は新しいAggregateUseCaseインスタンスを作成
func NewAggregateUseCase(
	store repository.DocumentStore,
	aggregationService service.GridAggregationService,
	collectionName string,
) AggregateUseCase {
	if collectionName == "" {
		collectionName = model.DefaultCollectionName
	}
	return &aggregateUseCaseImpl{
		store:          store,
		service:        aggregationService,
		collectionName: collectionName,
	}
}

func (u *aggregateUseCaseImpl) Run(ctx context.Context, inputPath, outputPath string) (*model.RunSummary, error) {
	runID := uuid.New().String()
	logger.Infow("🚀 グリッド集約開始", "run_id", runID, "input", inputPath, "output", outputPath)

	// Step 1: 入力ドキュメントの読み込み
	data, err := u.store.Read(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("入力ドキュメントの読み込みに失敗: %w", err)
	}

	// Step 2: 集約とシリアライズ
	out, result, err := u.AggregateDocument(data)
	if err != nil {
		return nil, err
	}
	logger.Debugw("📐 推定グリッド",
		"run_id", runID,
		"cell_width", result.Grid.CellWidth,
		"cell_height", result.Grid.CellHeight,
		"origin", wkt.MarshalString(orb.Point{result.Grid.OriginX, result.Grid.OriginY}),
	)

	// Step 3: 出力先への書き込み
	if err := u.store.Write(ctx, outputPath, out); err != nil {
		return nil, fmt.Errorf("出力ドキュメントの書き込みに失敗: %w", err)
	}

	logger.Infow("✅ グリッド集約完了", "run_id", runID, "input_cells", result.InputCount, "output_cells", len(result.Features))

	return &model.RunSummary{
		RunID:      runID,
		InputPath:  inputPath,
		OutputPath: outputPath,
		InputCount: result.InputCount,
		CellCount:  len(result.Features),
		Grid:       result.Grid,
	}, nil
}

func (u *aggregateUseCaseImpl) AggregateDocument(data []byte) ([]byte, *model.AggregationResult, error) {
	features, err := geocodec.DecodeFeatureCollection(data)
	if err != nil {
		return nil, nil, fmt.Errorf("入力ドキュメントの解析に失敗: %w", err)
	}

	result, err := u.service.Aggregate(features)
	if err != nil {
		return nil, nil, fmt.Errorf("グリッド集約に失敗: %w", err)
	}

	out, err := geocodec.EncodeFeatureCollection(u.collectionName, result.Features)
	if err != nil {
		return nil, nil, fmt.Errorf("出力ドキュメントのシリアライズに失敗: %w", err)
	}

	return out, result, nil
}

func (u *aggregateUseCaseImpl) FieldStats(data []byte, field string) (*model.FieldStats, error) {
	features, err := geocodec.DecodeFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("入力ドキュメントの解析に失敗: %w", err)
	}

	stats, err := service.ComputeFieldStats(features, field)
	if err != nil {
		return nil, fmt.Errorf("フィールド統計の計算に失敗: %w", err)
	}
	return stats, nil
}
