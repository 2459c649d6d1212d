package meal

import (
	"errors"
	"net/http"

	mealService "meal-finder/internal/core/meal"
	"meal-finder/internal/core/mealdb"
	"meal-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchResponse 食材搜尋回應
type SearchResponse struct {
	Query string                      `json:"query"`
	Count int                         `json:"count"`
	Meals []mealService.RecipeSummary `json:"meals"`
}

// DetailResponse 食譜詳情回應
// 除原始欄位外，一併附上正規化後的食材清單與逐行作法
type DetailResponse struct {
	ID           string                       `json:"id"`
	Name         string                       `json:"name"`
	Category     string                       `json:"category,omitempty"`
	Area         string                       `json:"area,omitempty"`
	Tags         []string                     `json:"tags,omitempty"`
	Thumb        string                       `json:"thumb,omitempty"`
	Video        string                       `json:"video,omitempty"`
	Ingredients  []mealService.IngredientLine `json:"ingredients"`
	Instructions []string                     `json:"instructions"`
}

// Handler 食譜查詢處理程序
type Handler struct {
	searchService *mealService.SearchService
	detailService *mealService.DetailService
}

// NewHandler 創建新的食譜查詢處理程序
func NewHandler(searchService *mealService.SearchService, detailService *mealService.DetailService) *Handler {
	return &Handler{
		searchService: searchService,
		detailService: detailService,
	}
}

// HandleSearch 依食材搜尋食譜
// GET /api/v1/meals/search?q=chicken,rice
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	query := c.Query("q")
	terms := mealService.ParseTerms(query)
	if len(terms) == 0 {
		common.LogWarn("搜尋查詢為空",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "query parameter q is required",
		})
		return
	}

	common.LogInfo("開始處理食材搜尋請求",
		zap.String("request_id", requestID),
		zap.String("query", query),
		zap.String("terms", common.StringSliceToString(terms)),
		zap.String("client_ip", c.ClientIP()),
	)

	meals, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		h.writeSearchError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query: query,
		Count: len(meals),
		Meals: meals,
	})
}

// HandleDetail 依編號查詢食譜詳情
// GET /api/v1/meals/:id
func (h *Handler) HandleDetail(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	id := c.Param("id")
	detail, err := h.detailService.FetchDetail(c.Request.Context(), id)
	if err != nil {
		h.writeDetailError(c, requestID, id, err)
		return
	}

	c.JSON(http.StatusOK, DetailResponse{
		ID:           detail.ID,
		Name:         detail.Name,
		Category:     detail.Category,
		Area:         detail.Area,
		Tags:         detail.Tags,
		Thumb:        detail.Thumb,
		Video:        detail.Video,
		Ingredients:  mealService.ExtractIngredients(detail),
		Instructions: mealService.FormatInstructions(detail.Instructions),
	})
}

// writeSearchError 將搜尋錯誤轉換為對應的 HTTP 回應
func (h *Handler) writeSearchError(c *gin.Context, requestID string, err error) {
	var noResults *mealService.NoResultsError
	var connectivity *mealdb.ConnectivityError
	var upstream *mealdb.UpstreamError

	switch {
	case errors.As(err, &noResults):
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Code:    common.ErrCodeNoResults,
			Message: common.ErrNoResults.Message,
			Terms:   noResults.Terms,
		})
	case errors.As(err, &connectivity):
		common.LogError("無法連線上游食譜服務",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrCodeConnectivity,
			Message: common.ErrConnectivity.Message,
		})
	case errors.As(err, &upstream):
		common.LogError("上游食譜服務回應異常",
			zap.Error(err),
			zap.Int("upstream_status", upstream.StatusCode),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadGateway, common.ErrorResponse{
			Code:    common.ErrCodeUpstream,
			Message: common.ErrUpstream.Message,
		})
	default:
		common.LogError("食材搜尋失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: common.ErrInternalError.Message,
		})
	}
}

// writeDetailError 將詳情查詢錯誤轉換為對應的 HTTP 回應
func (h *Handler) writeDetailError(c *gin.Context, requestID, id string, err error) {
	var connectivity *mealdb.ConnectivityError
	var upstream *mealdb.UpstreamError

	switch {
	case errors.Is(err, mealService.ErrEmptyID):
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "meal id is required",
		})
	case errors.Is(err, mealService.ErrNotFound):
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Code:    common.ErrCodeNotFound,
			Message: common.ErrNotFound.Message,
		})
	case errors.As(err, &connectivity):
		common.LogError("無法連線上游食譜服務",
			zap.Error(err),
			zap.String("meal_id", id),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrCodeConnectivity,
			Message: common.ErrConnectivity.Message,
		})
	case errors.As(err, &upstream):
		common.LogError("上游食譜服務回應異常",
			zap.Error(err),
			zap.Int("upstream_status", upstream.StatusCode),
			zap.String("meal_id", id),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadGateway, common.ErrorResponse{
			Code:    common.ErrCodeUpstream,
			Message: common.ErrUpstream.Message,
		})
	default:
		common.LogError("食譜詳情查詢失敗",
			zap.Error(err),
			zap.String("meal_id", id),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: common.ErrInternalError.Message,
		})
	}
}
