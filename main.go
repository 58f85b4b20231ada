package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookstore_api/internal/api"
	"bookstore_api/internal/repository"
	"bookstore_api/internal/storage"
	"bookstore_api/pkg/config"
	"bookstore_api/pkg/logger"
)

func main() {
	// .env 不存在時直接使用環境變數與 config.yaml
	_ = godotenv.Load()

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal().Err(err).Msg("failed to auto migrate database")
		}
	}

	repos := repository.NewRepositories(db)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	api.SetupRoutes(r, repos, db)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", map[string]interface{}{"address": cfg.Server.Address})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to run server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", err)
		return
	}
	logger.Info("server exited", nil)
}
