package article

import (
	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/pagination"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

// Handler handles article HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the admin and public article routes.
func (h *Handler) RegisterRoutes(admin, public *gin.RouterGroup) {
	a := admin.Group("/articles")
	a.GET("", h.adminList)
	a.GET("/:id", h.getByID)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)

	p := public.Group("/articles")
	p.GET("", h.publicList)
	p.GET("/:slug", h.getBySlug)
}

// adminList GET /admin/articles
func (h *Handler) adminList(c *gin.Context) {
	h.list(c, true)
}

// publicList GET /public/articles
func (h *Handler) publicList(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, includeUnpublished bool) {
	q := pagination.FromContext(c, pagination.MaxLimit)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	articles, pag, err := h.svc.List(c.Request.Context(), q, lq, includeUnpublished)
	if err != nil {
		response.Error(c, err)
		return
	}

	refs := make([]*models.ArticleModel, len(articles))
	for i := range articles {
		refs[i] = &articles[i]
	}
	tagsByID, err := h.svc.ResolveTags(refs...)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]Response, len(articles))
	for i := range articles {
		items[i] = toResponse(&articles[i], tagsByID)
	}
	response.Paged(c, items, pag)
}

// getByID GET /admin/articles/:id
func (h *Handler) getByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respondOne(c, a, false)
}

// getBySlug GET /public/articles/:slug — published articles only.
func (h *Handler) getBySlug(c *gin.Context) {
	a, err := h.svc.GetBySlug(c.Param("slug"), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respondOne(c, a, false)
}

// create POST /admin/articles
func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	a, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respondOne(c, a, true)
}

// update PUT /admin/articles/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	a, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respondOne(c, a, false)
}

// delete DELETE /admin/articles/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Article deleted successfully")
}

func (h *Handler) respondOne(c *gin.Context, a *models.ArticleModel, created bool) {
	tagsByID, err := h.svc.ResolveTags(a)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, toResponse(a, tagsByID))
		return
	}
	response.OK(c, toResponse(a, tagsByID))
}
