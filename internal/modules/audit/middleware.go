package audit

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/models"
	"gorm.io/gorm"
)

// Middleware records each non-bot, unauthenticated public GET request as a
// visit event. Recording runs after the response and never fails the request.
func Middleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // handle request first to get status code

		if c.Request.Method != "GET" {
			return
		}
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if isBotUA(c.GetHeader("User-Agent")) {
			return
		}

		// Skip authenticated users (has Authorization header)
		if c.GetHeader("Authorization") != "" {
			return
		}

		ip := ClientIP(c)
		endpoint := c.Request.URL.Path
		method := c.Request.Method
		ua := orUnknown(c.GetHeader("User-Agent"))
		referrer := c.GetHeader("Referer")

		go func() {
			_ = db.Create(&models.AuditModel{
				IP:        orUnknown(ip),
				UserAgent: ua,
				Endpoint:  endpoint,
				Method:    method,
				Referrer:  referrer,
				VisitedAt: time.Now(),
			}).Error
		}()
	}
}

// isBotUA returns true if the User-Agent string indicates a bot/crawler.
func isBotUA(ua string) bool {
	lower := strings.ToLower(ua)
	botKeywords := []string{"bot", "crawler", "spider", "headless", "wget", "curl", "python-requests", "go-http", "java/", "scrapy"}
	for _, kw := range botKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
