// Package mapper 負責資料庫模型與 dto 之間的轉換。
package mapper

import (
	"bookstore_api/internal/dto"
	"bookstore_api/internal/models"
)

func ToAuthorRead(a *models.Author) dto.AuthorRead {
	return dto.AuthorRead{
		ID:        int(a.ID),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
}

// ToAuthorReadList 永遠回傳非 nil 的切片，JSON 會是 [] 而不是 null
func ToAuthorReadList(authors []models.Author) []dto.AuthorRead {
	out := make([]dto.AuthorRead, 0, len(authors))
	for i := range authors {
		out = append(out, ToAuthorRead(&authors[i]))
	}
	return out
}

func FromAuthorCreate(in dto.AuthorCreate) *models.Author {
	return &models.Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
	}
}

func FromAuthorUpdate(in dto.AuthorUpdate) *models.Author {
	return &models.Author{
		ID:        uint(in.ID),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
	}
}

// ApplyAuthor 把 src 的可變欄位寫到 dst，ID 永遠不會被覆蓋
func ApplyAuthor(dst, src *models.Author) {
	dst.FirstName = src.FirstName
	dst.LastName = src.LastName
	dst.Bio = src.Bio
}
