package meal

import (
	"strings"

	"meal-finder/internal/core/mealdb"
)

// RecipeSummary 搜尋結果中的單筆食譜摘要
// 除了 ID 用於集合運算外，其餘欄位僅供呈現使用
type RecipeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Thumb string `json:"thumb"`
}

// RecipeDetail 完整食譜資料
// 每次查詢都重新取得，不快取、不修改，詳情畫面關閉後即丟棄
type RecipeDetail struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Tags         []string
	Thumb        string
	Instructions string
	Video        string
	Slots        [20]mealdb.IngredientSlot
}

// IngredientLine 正規化後的（食材名稱、份量）配對
// 名稱必為去除空白後的非空字串；份量未填時為空字串
type IngredientLine struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// newRecipeSummary 將上游摘要轉換為領域摘要
func newRecipeSummary(m mealdb.MealSummary) RecipeSummary {
	return RecipeSummary{
		ID:    m.ID,
		Name:  m.Name,
		Thumb: m.Thumb,
	}
}

// newRecipeDetail 將上游完整資料轉換為領域資料
// 20 組編號欄位在此展開為固定長度陣列，保留欄位編號順序
func newRecipeDetail(d *mealdb.MealDetail) *RecipeDetail {
	detail := &RecipeDetail{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		Area:         d.Area,
		Thumb:        d.Thumb,
		Instructions: d.Instructions,
		Video:        d.Youtube,
		Slots:        d.Slots(),
	}

	// strTags 為逗號分隔字串，可能為空
	for _, tag := range strings.Split(d.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			detail.Tags = append(detail.Tags, tag)
		}
	}

	return detail
}
