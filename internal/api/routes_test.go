package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore_api/internal/repository"
	"bookstore_api/internal/storage"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := storage.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)))
	require.NoError(t, err)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	r := gin.New()
	SetupRoutes(r, repository.NewRepositories(db), db)
	return r
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorLifecycle(t *testing.T) {
	r := newTestServer(t)

	w := call(r, http.MethodPost, "/api/Authors", `{"firstName":"Jane","lastName":"Austen"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Author struct {
			ID int `json:"id"`
		} `json:"author"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Author.ID
	require.Positive(t, id)
	path := fmt.Sprintf("/api/Authors/%d", id)

	w = call(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"firstName":"Jane","lastName":"Austen","bio":null}`, id), w.Body.String())

	w = call(r, http.MethodPut, path, fmt.Sprintf(`{"id":%d,"firstName":"Jane","lastName":"Austen","bio":"Novelist"}`, id))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = call(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"firstName":"Jane","lastName":"Austen","bio":"Novelist"}`, id), w.Body.String())

	w = call(r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = call(r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMissingAuthor(t *testing.T) {
	r := newTestServer(t)

	w := call(r, http.MethodPut, "/api/Authors/5", `{"id":5,"firstName":"Jane","lastName":"Austen"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
}

func TestListAuthors(t *testing.T) {
	r := newTestServer(t)

	w := call(r, http.MethodGet, "/api/Authors", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, name := range []string{"Leo", "Anton"} {
		w = call(r, http.MethodPost, "/api/authors", fmt.Sprintf(`{"firstName":%q,"lastName":"X"}`, name))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = call(r, http.MethodGet, "/api/authors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestHealthAndNoRoute(t *testing.T) {
	r := newTestServer(t)

	w := call(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(r, http.MethodGet, "/api/publishers", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
