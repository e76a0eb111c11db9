package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

// Handler handles settings HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the admin and public settings routes.
func (h *Handler) RegisterRoutes(admin, public *gin.RouterGroup) {
	admin.GET("/settings", h.get)
	admin.PUT("/settings", h.update)
	public.GET("/settings", h.get)
}

// get GET /admin/settings, GET /public/settings
func (h *Handler) get(c *gin.Context) {
	settings, err := h.svc.Get()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}

// update PUT /admin/settings
func (h *Handler) update(c *gin.Context) {
	var dto UpdateSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	settings, err := h.svc.Update(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}
