package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bookstore_api/internal/repository"
)

// InternalErrorMessage 所有 500 回應使用的固定訊息，不洩漏內部細節
const InternalErrorMessage = "Something went wrong"

type operation string

const (
	opList   operation = "author.list"
	opGet    operation = "author.get"
	opCreate operation = "author.create"
	opUpdate operation = "author.update"
	opDelete operation = "author.delete"
)

// statusByKind 錯誤類別對應的 HTTP 狀態碼，客戶端只會看到 400/404/500
var statusByKind = map[repository.Kind]int{
	repository.KindNotFound:   http.StatusNotFound,
	repository.KindConstraint: http.StatusBadRequest,
	repository.KindStorage:    http.StatusInternalServerError,
}

// overrides 個別操作的例外對應
// Update 不會先確認資料存在，更新不存在的作者回 500 而不是 404
var overrides = map[operation]map[repository.Kind]int{
	opUpdate: {repository.KindNotFound: http.StatusInternalServerError},
}

func statusFor(op operation, err error) int {
	kind := repository.KindOf(err)
	if m, ok := overrides[op]; ok {
		if status, ok := m[kind]; ok {
			return status
		}
	}
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func messageFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Author not found"
	case http.StatusBadRequest:
		return "Request conflicts with existing data"
	default:
		return InternalErrorMessage
	}
}

// fail 記錄錯誤並依對照表回應
func fail(c *gin.Context, op operation, id int, err error) {
	status := statusFor(op, err)

	var ev *zerolog.Event
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	} else {
		ev = log.Warn()
	}
	ev.Err(err).
		Str("op", string(op)).
		Int("author_id", id).
		Str("kind", repository.KindOf(err).String()).
		Int("status", status).
		Msg("author request failed")

	c.JSON(status, gin.H{"error": messageFor(status)})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// badRequest 回應 400，驗證錯誤會附上每個欄位的訊息
func badRequest(c *gin.Context, msg string, err error) {
	body := gin.H{"error": msg}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		body["details"] = details
	}

	c.JSON(http.StatusBadRequest, body)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

func init() {
	// 驗證錯誤使用 JSON 欄位名稱
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
