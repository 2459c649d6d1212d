package mealdb

import (
	"context"
	"net/http"

	"meal-finder/internal/infrastructure/config"
	"meal-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 上游食譜查詢服務的 HTTP 客戶端
// 兩個操作皆為唯讀、無需認證的 GET 請求，失敗時不自動重試
type Client struct {
	client *resty.Client
}

// NewClient 創建上游查詢客戶端
func NewClient(cfg *config.MealDBConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client: client,
	}
}

// FilterByIngredient 依食材名稱查詢食譜摘要列表
// 查無資料時回傳空列表（上游以 meals=null 表示），不視為錯誤
// 食材名稱由 resty 以 query 參數百分比編碼傳送
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]MealSummary, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", ingredient).
		Get("/filter.php")

	if err != nil {
		common.LogWarn("食材查詢傳輸失敗",
			zap.String("ingredient", ingredient),
			zap.Error(err),
		)
		return nil, &ConnectivityError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("食材查詢回應異常",
			zap.String("ingredient", ingredient),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	var result filterResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Err: err}
	}

	return result.Meals, nil
}

// LookupByID 依編號查詢完整食譜資料
// 查無資料時回傳 nil（上游以 meals=null 或空陣列表示），不視為錯誤
func (c *Client) LookupByID(ctx context.Context, id string) (*MealDetail, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", id).
		Get("/lookup.php")

	if err != nil {
		common.LogWarn("食譜查詢傳輸失敗",
			zap.String("meal_id", id),
			zap.Error(err),
		)
		return nil, &ConnectivityError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("食譜查詢回應異常",
			zap.String("meal_id", id),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	var result lookupResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Err: err}
	}

	if len(result.Meals) == 0 {
		return nil, nil
	}

	return &result.Meals[0], nil
}
