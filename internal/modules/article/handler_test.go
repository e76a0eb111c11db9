package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	r := gin.New()
	admin := r.Group("/admin")
	public := r.Group("/public")
	NewHandler(NewService(db)).RegisterRoutes(admin, public)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
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

const validArticle = `{"title":"Hello","slug":"hello","excerpt":"Hi.","content":"Some words here.","published":true}`

func TestHandler_Create(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/articles", validArticle)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID          string            `json:"id"`
			Slug        string            `json:"slug"`
			ReadingTime int               `json:"readingTime"`
			Tags        []json.RawMessage `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.ID)
	assert.Equal(t, "hello", body.Data.Slug)
	assert.Equal(t, 1, body.Data.ReadingTime)
	assert.NotNil(t, body.Data.Tags)
}

func TestHandler_Create_SlugConflict(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/articles", validArticle)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/articles", validArticle)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Article with this slug already exists")
}

func TestHandler_Create_MalformedJSON(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/articles", `{broken`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON body")
}

func TestHandler_PublicSlug_HidesDrafts(t *testing.T) {
	r := newTestRouter(t)

	draft := `{"title":"Draft","slug":"draft","excerpt":"Hi.","content":"Words."}`
	w := doJSON(r, http.MethodPost, "/admin/articles", draft)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/public/articles/draft", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Article not found")
}

func TestHandler_Delete(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/articles", validArticle)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	w = doJSON(r, http.MethodDelete, "/admin/articles/"+body.Data.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Article deleted successfully")

	w = doJSON(r, http.MethodDelete, "/admin/articles/"+body.Data.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
