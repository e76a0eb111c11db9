package tag

import (
	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

// Handler handles tag HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the admin and public tag routes.
func (h *Handler) RegisterRoutes(admin, public *gin.RouterGroup) {
	a := admin.Group("/tags")
	a.GET("", h.adminList)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)

	public.GET("/tags", h.publicList)
}

// adminList GET /admin/tags — counts cover all publish states.
func (h *Handler) adminList(c *gin.Context) {
	tags, err := h.svc.List(false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tags)
}

// publicList GET /public/tags — counts cover published articles only.
func (h *Handler) publicList(c *gin.Context) {
	tags, err := h.svc.List(true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tags)
}

// create POST /admin/tags
func (h *Handler) create(c *gin.Context) {
	var dto CreateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	t, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

// update PUT /admin/tags/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	t, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// delete DELETE /admin/tags/:id — cascades the reference removal.
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Tag deleted successfully")
}
