package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/middleware"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the auth routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
	a.POST("/logout", h.logout)
	a.GET("/me", authMW, h.me)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	result, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// logout POST /auth/logout — tokens are stateless, the client discards its copy.
func (h *Handler) logout(c *gin.Context) {
	response.Message(c, "Logged out successfully")
}

// me GET /auth/me
func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetCurrentUser(middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
