package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/middleware"
	"github.com/inkstone-blog/core/internal/modules/article"
	"github.com/inkstone-blog/core/internal/modules/audit"
	"github.com/inkstone-blog/core/internal/modules/auth"
	"github.com/inkstone-blog/core/internal/modules/settings"
	"github.com/inkstone-blog/core/internal/modules/tag"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	})

	r.GET("/healthz", a.health)

	api := r.Group(a.cfg.APIPrefix)
	api.Use(middleware.OptionalAuth())

	admin := api.Group("/admin", authMW)
	public := api.Group("/public")
	public.Use(middleware.HTTPCache(a.rdb, 0))
	public.Use(audit.Middleware(db))

	authSvc := auth.NewService(db)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)

	articleSvc := article.NewService(db)
	article.NewHandler(articleSvc).RegisterRoutes(admin, public)

	tagSvc := tag.NewService(db)
	tag.NewHandler(tagSvc).RegisterRoutes(admin, public)

	settingsSvc := settings.NewService(db)
	settings.NewHandler(settingsSvc).RegisterRoutes(admin, public)

	auditSvc := audit.NewService(db)
	auditAdmin := api.Group("/admin", authMW, middleware.AdminOnly())
	audit.NewHandler(auditSvc).RegisterRoutes(auditAdmin, api)
}

// health reports process liveness and database reachability.
func (a *App) health(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "database unreachable"})
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
