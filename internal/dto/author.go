// Package dto 定義 HTTP 邊界上使用的作者資料形狀，與資料庫模型分離。
package dto

// AuthorRead 回應給客戶端的作者資料
type AuthorRead struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio"`
}

// AuthorCreate 建立作者的請求，ID 由伺服器產生
type AuthorCreate struct {
	FirstName string  `json:"firstName" binding:"required,max=50"`
	LastName  string  `json:"lastName" binding:"required,max=50"`
	Bio       *string `json:"bio" binding:"omitempty,max=2000"`
}

// AuthorUpdate 更新作者的請求，ID 必須與路徑參數一致
type AuthorUpdate struct {
	ID        int     `json:"id" binding:"required,min=1"`
	FirstName string  `json:"firstName" binding:"required,max=50"`
	LastName  string  `json:"lastName" binding:"required,max=50"`
	Bio       *string `json:"bio" binding:"omitempty,max=2000"`
}

// AuthorCreated 201 回應的內容
type AuthorCreated struct {
	Author AuthorRead `json:"author"`
}
