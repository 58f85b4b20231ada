package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookstore_api/internal/mapper"
	"bookstore_api/internal/models"
	"bookstore_api/internal/storage"
)

// AuthorRepository 是唯一可以讀寫 authors 資料表的元件
// 回傳 nil 代表成功，其餘錯誤都是 *Error，可用 KindOf 取得類別
type AuthorRepository interface {
	FindAll(ctx context.Context) ([]models.Author, error)
	// FindByID 找不到時回傳 nil, nil
	FindByID(ctx context.Context, id uint) (*models.Author, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, author *models.Author) error
	Update(ctx context.Context, author *models.Author) error
	Delete(ctx context.Context, author *models.Author) error
}

type authorRepository struct {
	db *storage.PostgresDB
}

func NewAuthorRepository(db *storage.PostgresDB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) FindAll(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := r.db.WithContext(ctx).Order("id asc").Find(&authors).Error; err != nil {
		return nil, wrap("author.find_all", err)
	}
	return authors, nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.WithContext(ctx).First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("author.find_by_id", err)
	}
	return &author, nil
}

func (r *authorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Author{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, wrap("author.exists", err)
	}
	return count > 0, nil
}

// Create 寫入新作者，成功後 author.ID 會被設定
func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	// ID 只能由資料庫產生
	author.ID = 0
	return wrap("author.create", r.db.WithContext(ctx).Omit("Books").Create(author).Error)
}

// Update 在同一個交易內讀出目前資料、套用欄位差異後寫回
func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Author
		if err := tx.First(&current, author.ID).Error; err != nil {
			return err
		}

		mapper.ApplyAuthor(&current, author)

		return tx.Model(&current).Updates(map[string]interface{}{
			"first_name": current.FirstName,
			"last_name":  current.LastName,
			"bio":        current.Bio,
		}).Error
	})
	return wrap("author.update", err)
}

func (r *authorRepository) Delete(ctx context.Context, author *models.Author) error {
	result := r.db.WithContext(ctx).Delete(&models.Author{}, author.ID)
	if result.Error != nil {
		return wrap("author.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return &Error{Kind: KindNotFound, Op: "author.delete"}
	}
	return nil
}
