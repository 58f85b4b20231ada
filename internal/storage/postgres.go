package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookstore_api/internal/models"
	"bookstore_api/pkg/config"
	"bookstore_api/pkg/logger"
)

type PostgresDB struct {
	*gorm.DB
}

// NewPostgresDB 依設定連線到 PostgreSQL 並套用連線池參數
func NewPostgresDB(cfg config.DBConfig) (*PostgresDB, error) {
	db, err := Open(postgres.Open(cfg.DSN()))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Open 使用任意 gorm dialector 建立連線，測試時可傳入 sqlite
func Open(dialector gorm.Dialector) (*PostgresDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(log.Logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{DB: db}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 健康檢查用
func (db *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// AutoMigrate 建立或更新 authors 與 books 資料表
func (db *PostgresDB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Author{}, &models.Book{})
}
