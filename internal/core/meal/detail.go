package meal

import (
	"context"

	"meal-finder/internal/core/mealdb"
	"meal-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// DetailService 食譜詳情查詢服務
type DetailService struct {
	client *mealdb.Client
}

// NewDetailService 創建詳情查詢服務
func NewDetailService(client *mealdb.Client) *DetailService {
	return &DetailService{
		client: client,
	}
}

// FetchDetail 依編號取得完整食譜資料
// 只負責取得原始資料；欄位正規化交由 ExtractIngredients 與
// FormatInstructions 處理
func (s *DetailService) FetchDetail(ctx context.Context, id string) (*RecipeDetail, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	detail, err := s.client.LookupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		common.LogInfo("查無此食譜",
			zap.String("meal_id", id),
		)
		return nil, ErrNotFound
	}

	return newRecipeDetail(detail), nil
}
