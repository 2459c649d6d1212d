package meal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyQuery 查詢字串拆解後沒有任何食材詞彙
	// 屬於無操作而非錯誤；呼叫端不應在空白輸入時發起搜尋
	ErrEmptyQuery = errors.New("empty ingredient query")

	// ErrEmptyID 食譜編號為空
	ErrEmptyID = errors.New("empty recipe id")

	// ErrNotFound 查無對應編號的食譜
	ErrNotFound = errors.New("recipe not found")
)

// NoResultsError 沒有任何食譜同時符合所有查詢食材
// 攜帶原始查詢詞彙，供呈現端組出友善訊息
type NoResultsError struct {
	Terms []string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no recipes found for %s", strings.Join(e.Terms, ", "))
}
