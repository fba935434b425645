package main

import (
	"context"
	"fmt"
	"os"

	"GridAgg-App/internal/config"
	"GridAgg-App/internal/domain/service"
	"GridAgg-App/internal/logger"
	"GridAgg-App/internal/repository"
	"GridAgg-App/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	if err := logger.Init(cfg.Log.Debug); err != nil {
		return err
	}

	ctx := context.Background()

	store, closeStore, err := repository.NewDocumentStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("ドキュメントストアの初期化に失敗: %w", err)
	}
	defer closeStore()

	aggregateUseCase := usecase.NewAggregateUseCase(store, service.NewGridAggregationService(), cfg.CollectionName)

	summary, err := aggregateUseCase.Run(ctx, cfg.InputPath, cfg.OutputPath)
	if err != nil {
		logger.Errorw("❌ グリッド集約に失敗", "error", err)
		return err
	}

	fmt.Println(summary.String())
	return nil
}
