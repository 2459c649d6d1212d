package meal

import (
	"context"
	"errors"
	"sync"

	"meal-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// SearchState 一次搜尋的對外狀態快照
// 錯誤發生時 Results 一律為空，避免錯誤訊息旁殘留過期列表
type SearchState struct {
	Query      string
	Searching  bool
	Results    []RecipeSummary
	Err        error
	Generation uint64
}

// Session 追蹤最新一次搜尋的狀態
// 每次 Submit 遞增世代計數；先前仍在途的搜尋結果回來時，
// 世代已非最新者直接捨棄，對外狀態只反映最近一次搜尋的結果
// 搜尋本身不可中止，捨棄即等同取消
type Session struct {
	service *SearchService

	mu    sync.RWMutex
	gen   uint64
	state SearchState
}

// NewSession 創建搜尋會話
func NewSession(service *SearchService) *Session {
	return &Session{
		service: service,
	}
}

// Submit 發起新搜尋並使所有在途搜尋失效
// 查詢字串拆解後為空時不做任何事並回傳 nil（無操作，不是錯誤）
// 回傳的通道會在本次搜尋裁決完成後收到最終狀態快照；
// 若裁決時本次已非最新世代，收到的快照 Generation 會小於目前世代
func (s *Session) Submit(ctx context.Context, query string) <-chan SearchState {
	if len(ParseTerms(query)) == 0 {
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = SearchState{
		Query:      query,
		Searching:  true,
		Generation: gen,
	}
	s.mu.Unlock()

	done := make(chan SearchState, 1)
	go func() {
		results, err := s.service.Search(ctx, query)
		done <- s.complete(gen, query, results, err)
	}()
	return done
}

// Current 取得最近一次搜尋的狀態快照
func (s *Session) Current() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// complete 套用一次搜尋的結果；世代過期者捨棄
func (s *Session) complete(gen uint64, query string, results []RecipeSummary, err error) SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		common.LogDebug("捨棄過期搜尋結果",
			zap.String("query", query),
			zap.Uint64("generation", gen),
			zap.Uint64("current", s.gen),
		)
		return SearchState{Query: query, Generation: gen, Err: errors.New("superseded by a newer search")}
	}

	s.state = SearchState{
		Query:      query,
		Generation: gen,
		Err:        err,
	}
	if err == nil {
		s.state.Results = results
	}
	return s.state
}
