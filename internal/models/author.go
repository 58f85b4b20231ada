package models

import "time"

// Author 表示書店目錄中的一位作者
// ID 由資料庫在建立時產生，之後不可再變更
type Author struct {
	ID        uint    `gorm:"primaryKey"`
	FirstName string  `gorm:"type:varchar(50);not null"`
	LastName  string  `gorm:"type:varchar(50);not null"`
	Bio       *string `gorm:"type:varchar(2000)"`
	Books     []Book  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Author) TableName() string {
	return "authors"
}
