package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore_api/internal/api/handlers"
	"bookstore_api/internal/middleware"
	"bookstore_api/internal/repository"
)

// SetupRoutes 註冊所有路由與共用中間件
func SetupRoutes(r *gin.Engine, repos *repository.Repositories, db handlers.Pinger) {
	r.Use(middleware.RequestLogger(), middleware.Recovery(handlers.InternalErrorMessage))

	authorHandler := handlers.NewAuthorHandler(repos.Author)
	healthHandler := handlers.NewHealthHandler(db)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	api := r.Group("/api")
	api.GET("/health", healthHandler.Health)

	// 路徑大小寫都接受
	for _, base := range []string{"/Authors", "/authors"} {
		authors := api.Group(base)
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.POST("", authorHandler.CreateAuthor)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}
	}
}
