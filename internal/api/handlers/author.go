package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore_api/internal/dto"
	"bookstore_api/internal/mapper"
	"bookstore_api/internal/repository"
)

// AuthorHandler 處理 /api/Authors 底下的請求
type AuthorHandler struct {
	authors repository.AuthorRepository
}

// NewAuthorHandler 創建一個新的 AuthorHandler 實例
func NewAuthorHandler(authors repository.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// parseID 解析路徑上的 id，非整數時 ok 為 false
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListAuthors 取得所有作者
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authors.FindAll(c.Request.Context())
	if err != nil {
		fail(c, opList, 0, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthorReadList(authors))
}

// GetAuthor 依 id 取得單一作者
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		badRequest(c, "Invalid author id", nil)
		return
	}
	if id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	author, err := h.authors.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, opGet, id, err)
		return
	}
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthorRead(author))
}

// CreateAuthor 建立新作者
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var input dto.AuthorCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid author", err)
		return
	}

	author := mapper.FromAuthorCreate(input)
	if err := h.authors.Create(c.Request.Context(), author); err != nil {
		fail(c, opCreate, 0, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Authors/%d", author.ID))
	c.JSON(http.StatusCreated, dto.AuthorCreated{Author: mapper.ToAuthorRead(author)})
}

// UpdateAuthor 以請求內容覆寫作者資料，路徑與 body 的 id 必須相同
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || id < 1 {
		badRequest(c, "Invalid author id", nil)
		return
	}

	var input dto.AuthorUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid author", err)
		return
	}
	if input.ID != id {
		badRequest(c, "Author id does not match the request path", nil)
		return
	}

	if err := h.authors.Update(c.Request.Context(), mapper.FromAuthorUpdate(input)); err != nil {
		fail(c, opUpdate, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAuthor 刪除作者，先確認存在才會呼叫 repository 的 Delete
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || id < 1 {
		badRequest(c, "Invalid author id", nil)
		return
	}

	ctx := c.Request.Context()
	author, err := h.authors.FindByID(ctx, uint(id))
	if err != nil {
		fail(c, opDelete, id, err)
		return
	}
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	if err := h.authors.Delete(ctx, author); err != nil {
		fail(c, opDelete, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}
