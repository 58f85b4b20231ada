// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含存取日誌與 panic 攔截，所有路由共用。
package middleware
