package audit

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/pkg/pagination"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

// Handler handles audit HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the public recorder and the admin log listing.
func (h *Handler) RegisterRoutes(admin, root *gin.RouterGroup) {
	root.POST("/audit", h.record)
	admin.GET("/audit", h.list)
}

// record POST /audit
func (h *Handler) record(c *gin.Context) {
	var dto RecordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	if dto.IP == "" {
		dto.IP = ClientIP(c)
	}
	if dto.UserAgent == "" {
		dto.UserAgent = c.GetHeader("User-Agent")
	}
	if dto.Referrer == "" {
		dto.Referrer = c.GetHeader("Referer")
	}
	if dto.Method == "" {
		dto.Method = c.Request.Method
	}
	a, err := h.svc.Record(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": a.ID})
}

// list GET /admin/audit
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c, pagination.MaxAuditLimit)
	records, pg, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, records, pg)
}

// ClientIP resolves the caller address, preferring proxy headers that
// survive CDN hops over the socket peer.
func ClientIP(c *gin.Context) string {
	if v := c.GetHeader("CloudFront-Viewer-Address"); v != "" {
		return strings.SplitN(v, ":", 2)[0]
	}
	if v := c.GetHeader("X-Forwarded-For"); v != "" {
		return strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
	}
	if v := c.GetHeader("X-Real-IP"); v != "" {
		return v
	}
	return c.ClientIP()
}
