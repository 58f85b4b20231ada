package models

import "time"

// Book 只用來建立與 Author 的外鍵關係，目前沒有對外的 API
type Book struct {
	ID        uint    `gorm:"primaryKey"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Year      *int    `gorm:"type:integer"`
	ISBN      string  `gorm:"column:isbn;type:varchar(20);uniqueIndex;not null"`
	Summary   *string `gorm:"type:varchar(500)"`
	AuthorID  *uint   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Book) TableName() string {
	return "books"
}
