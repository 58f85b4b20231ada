// Package api 處理 HTTP 請求路由。
//
// handlers 子包負責驗證請求、呼叫 repository，並把結果轉換成 HTTP 回應。
package api
