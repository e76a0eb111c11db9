package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix  = "inkstone:http-cache:"
	defaultCacheTTL = 15 * time.Second
	maxCacheBody    = 1 << 20 // 1 MiB
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	BodyBase64  string `json:"body_base64"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.overflow || len(data) == 0 {
		return
	}
	if len(w.body)+len(data) > maxCacheBody {
		w.overflow = true
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache serves public GET responses from Redis for a short TTL. A nil
// client disables the middleware entirely, so Redis stays optional.
func HTTPCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet || IsAuthenticated(c) {
			c.Next()
			return
		}

		key := cacheKeyPrefix + c.Request.URL.RequestURI()
		if raw, err := rdb.Get(c.Request.Context(), key).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				if body, err := base64.StdEncoding.DecodeString(cached.BodyBase64); err == nil {
					c.Header("X-Cache", "HIT")
					c.Data(cached.Status, cached.ContentType, body)
					c.Abort()
					return
				}
			}
		}

		writer := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || writer.overflow || len(writer.body) == 0 {
			return
		}

		payload, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			BodyBase64:  base64.StdEncoding.EncodeToString(writer.body),
		})
		if err != nil {
			return
		}
		// Best effort: a cache write failure must not affect the response.
		rdb.Set(c.Request.Context(), key, payload, ttl)
	}
}
