package audit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	r := gin.New()
	root := r.Group("")
	admin := r.Group("/admin")
	NewHandler(NewService(db)).RegisterRoutes(admin, root)
	return r, db
}

func postAudit(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Record_Created(t *testing.T) {
	r, db := newTestRouter(t)

	w := postAudit(r, `{"endpoint":"/public/articles","method":"GET"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ID)

	var stored models.AuditModel
	require.NoError(t, db.First(&stored, "id = ?", body.ID).Error)
	assert.Equal(t, "/public/articles", stored.Endpoint)
}

func TestHandler_Record_FallsBackToRequestHeaders(t *testing.T) {
	r, db := newTestRouter(t)

	w := postAudit(r, `{}`, map[string]string{
		"Referer":    "https://example.com/from",
		"User-Agent": "test-agent/1.0",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var stored models.AuditModel
	require.NoError(t, db.First(&stored, "id = ?", body.ID).Error)
	assert.Equal(t, "https://example.com/from", stored.Referrer)
	assert.Equal(t, "test-agent/1.0", stored.UserAgent)
	assert.Equal(t, http.MethodPost, stored.Method)
}

func TestHandler_Record_BodyFieldsWinOverHeaders(t *testing.T) {
	r, db := newTestRouter(t)

	w := postAudit(r, `{"referrer":"https://example.com/body","method":"GET"}`, map[string]string{
		"Referer": "https://example.com/header",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var stored models.AuditModel
	require.NoError(t, db.First(&stored, "id = ?", body.ID).Error)
	assert.Equal(t, "https://example.com/body", stored.Referrer)
	assert.Equal(t, "GET", stored.Method)
}

func TestHandler_Record_MalformedJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postAudit(r, `{not json`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON body")
}

func TestHandler_Record_IPHeaderPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "cloudfront viewer address wins and drops the port",
			headers: map[string]string{
				"CloudFront-Viewer-Address": "198.51.100.9:44321",
				"X-Forwarded-For":           "203.0.113.1",
				"X-Real-IP":                 "203.0.113.2",
			},
			want: "198.51.100.9",
		},
		{
			name: "forwarded-for takes its first hop",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.1, 10.0.0.1",
				"X-Real-IP":       "203.0.113.2",
			},
			want: "203.0.113.1",
		},
		{
			name:    "real-ip as last header fallback",
			headers: map[string]string{"X-Real-IP": "203.0.113.2"},
			want:    "203.0.113.2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, db := newTestRouter(t)

			w := postAudit(r, `{}`, tc.headers)
			require.Equal(t, http.StatusCreated, w.Code)

			var body struct {
				ID string `json:"id"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			var stored models.AuditModel
			require.NoError(t, db.First(&stored, "id = ?", body.ID).Error)
			assert.Equal(t, tc.want, stored.IP)
		})
	}
}

func TestHandler_Record_BodyIPWinsOverHeaders(t *testing.T) {
	r, db := newTestRouter(t)

	w := postAudit(r, `{"ip":"192.0.2.50"}`, map[string]string{"X-Real-IP": "203.0.113.2"})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var stored models.AuditModel
	require.NoError(t, db.First(&stored, "id = ?", body.ID).Error)
	assert.Equal(t, "192.0.2.50", stored.IP)
}

func TestHandler_List_Paginates(t *testing.T) {
	r, db := newTestRouter(t)
	svc := NewService(db)

	for i := 0; i < 5; i++ {
		_, err := svc.Record(&RecordDTO{Endpoint: "/x", Method: "GET"})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/audit?page=1&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool              `json:"success"`
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(5), body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
}
