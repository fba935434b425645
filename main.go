package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"GridAgg-App/internal/config"
	"GridAgg-App/internal/domain/service"
	"GridAgg-App/internal/handler"
	"GridAgg-App/internal/logger"
	"GridAgg-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	if err := logger.Init(cfg.Log.Debug); err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.GinMode)

	// HTTP経由の集約はストアを使わずリクエストボディを直接処理する
	aggregateUseCase := usecase.NewAggregateUseCase(nil, service.NewGridAggregationService(), cfg.CollectionName)
	router := handler.NewRouter(handler.NewAggregateHandler(aggregateUseCase))

	logger.Infow("GridAgg-App server starting", "addr", cfg.GetServerAddr())
	if err := router.Run(cfg.GetServerAddr()); err != nil {
		logger.Errorw("サーバー停止", "error", err)
		log.Fatal(err)
	}
}
