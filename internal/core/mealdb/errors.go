package mealdb

import "fmt"

// ConnectivityError 請求無法送達上游服務（傳輸層失敗）
// 與 HTTP 錯誤狀態碼區分：使用者端的補救方式不同
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("failed to reach meal service: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// UpstreamError 上游回傳非成功狀態碼，或回應無法解析
// 攜帶狀態碼供日誌診斷使用
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected meal service response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("unexpected meal service response (status %d)", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
