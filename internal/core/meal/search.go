package meal

import (
	"context"
	"strings"
	"sync"
	"time"

	"meal-finder/internal/core/mealdb"
	"meal-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// SearchService 食材搜尋聚合服務
// 將逗號分隔的食材查詢展開為多筆上游查詢，並以食譜編號取交集
type SearchService struct {
	client *mealdb.Client
}

// NewSearchService 創建搜尋服務
func NewSearchService(client *mealdb.Client) *SearchService {
	return &SearchService{
		client: client,
	}
}

// ParseTerms 將逗號分隔的查詢字串拆成食材詞彙
// 每段去除前後空白，空白段落捨棄
func ParseTerms(query string) []string {
	var terms []string
	for _, piece := range strings.Split(query, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			terms = append(terms, piece)
		}
	}
	return terms
}

// termResult 單一食材詞彙的查詢結果
type termResult struct {
	term  string
	meals []mealdb.MealSummary
	err   error
}

// Search 依食材查詢食譜
// 單一詞彙：回傳上游順序的結果列表
// 多個詞彙：並行查詢所有詞彙，等待全部完成後以編號交集縮減，
// 輸出順序沿用第一個詞彙的結果順序
// 任一詞彙查無結果或查詢失敗時整體失敗，不回傳部分結果
func (s *SearchService) Search(ctx context.Context, query string) ([]RecipeSummary, error) {
	terms := ParseTerms(query)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	common.LogInfo("開始食材搜尋",
		zap.Strings("terms", terms),
	)

	// 每個詞彙一筆獨立查詢，結果寫入各自的欄位，無共享可變狀態
	results := make([]termResult, len(terms))
	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			meals, err := s.client.FilterByIngredient(ctx, term)
			results[i] = termResult{term: term, meals: meals, err: err}
		}(i, term)
	}

	// 收齊全部 N 筆結果後才開始裁決，不提前短路，
	// 查無結果的錯誤訊息才能列出所有查詢詞彙
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}
	for _, r := range results {
		if len(r.meals) == 0 {
			common.LogInfo("食材搜尋無結果",
				zap.String("empty_term", r.term),
				zap.Strings("terms", terms),
			)
			return nil, &NoResultsError{Terms: terms}
		}
	}

	matched := intersectByID(results)
	if len(matched) == 0 {
		common.LogInfo("食材交集為空",
			zap.Strings("terms", terms),
		)
		return nil, &NoResultsError{Terms: terms}
	}

	common.LogInfo("食材搜尋完成",
		zap.Strings("terms", terms),
		zap.Int("matched", len(matched)),
		zap.Duration("latency", time.Since(start)),
	)

	return matched, nil
}

// intersectByID 以食譜編號計算所有詞彙結果的交集
// 以第一個詞彙的結果順序為基準，僅保留出現在每個詞彙結果中的編號
// 摘要物件優先取自第一個詞彙的列表；若不在其中（理論上不會發生），
// 依查詢順序掃描其餘列表作為保底
func intersectByID(results []termResult) []RecipeSummary {
	base := results[0].meals
	if len(results) == 1 {
		matched := make([]RecipeSummary, 0, len(base))
		for _, m := range base {
			matched = append(matched, newRecipeSummary(m))
		}
		return matched
	}

	// 每個詞彙各建一份編號集合
	idSets := make([]map[string]mealdb.MealSummary, len(results))
	for i, r := range results {
		set := make(map[string]mealdb.MealSummary, len(r.meals))
		for _, m := range r.meals {
			set[m.ID] = m
		}
		idSets[i] = set
	}

	var matched []RecipeSummary
	for _, m := range base {
		inAll := true
		for _, set := range idSets[1:] {
			if _, ok := set[m.ID]; !ok {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}

		if found, ok := idSets[0][m.ID]; ok {
			matched = append(matched, newRecipeSummary(found))
			continue
		}
		for _, set := range idSets[1:] {
			if found, ok := set[m.ID]; ok {
				matched = append(matched, newRecipeSummary(found))
				break
			}
		}
	}

	return matched
}
