package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/logger"
	"GridAgg-App/internal/usecase"
)

const geoJSONContentType = "application/geo+json; charset=utf-8"

// AggregateHandler グリッド集約のHTTPハンドラー
type AggregateHandler struct {
	aggregateUseCase usecase.AggregateUseCase
}

// NewAggregateHandler AggregateHandlerの新しいインスタンスを作成
func NewAggregateHandler(aggregateUseCase usecase.AggregateUseCase) *AggregateHandler {
	return &AggregateHandler{
		aggregateUseCase: aggregateUseCase,
	}
}

// NewRouter ルーティングを設定したGinエンジンを作成
func NewRouter(h *AggregateHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/health", h.Health)

	v1 := router.Group("/api/v1")
	v1.POST("/aggregate", h.Aggregate)
	v1.POST("/stats", h.FieldStats)

	return router
}

// Health GET /api/health - ヘルスチェック
func (h *AggregateHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "GridAgg-App",
	})
}

// Aggregate POST /api/v1/aggregate - リクエストボディのFeatureCollectionを集約して返す
func (h *AggregateHandler) Aggregate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to read request body: " + err.Error(),
		})
		return
	}

	out, result, err := h.aggregateUseCase.AggregateDocument(body)
	if err != nil {
		status, code := classifyError(err)
		logger.Warnw("⚠️ 集約リクエスト失敗", "status", status, "error", err)
		c.JSON(status, gin.H{
			"error":   code,
			"message": err.Error(),
		})
		return
	}

	logger.Debugw("✅ 集約リクエスト完了", "input_cells", result.InputCount, "output_cells", len(result.Features))
	c.Data(http.StatusOK, geoJSONContentType, out)
}

// FieldStats POST /api/v1/stats?field=<name> - 指定フィールドの最小・最大・四分位と凡例を返す
func (h *AggregateHandler) FieldStats(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_field",
			"message": "field query parameter is required",
		})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to read request body: " + err.Error(),
		})
		return
	}

	stats, err := h.aggregateUseCase.FieldStats(body, field)
	if err != nil {
		status, code := classifyError(err)
		logger.Warnw("⚠️ 統計リクエスト失敗", "status", status, "field", field, "error", err)
		c.JSON(status, gin.H{
			"error":   code,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// classifyError エラー種別からHTTPステータスとエラーコードを決める
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInputUnreadable):
		return http.StatusBadRequest, "invalid_document"
	case errors.Is(err, model.ErrMalformedFeature):
		return http.StatusBadRequest, "malformed_feature"
	case errors.Is(err, model.ErrDegenerateGridSpec):
		return http.StatusUnprocessableEntity, "degenerate_grid"
	case errors.Is(err, model.ErrNoNumericValues):
		return http.StatusUnprocessableEntity, "no_numeric_values"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
