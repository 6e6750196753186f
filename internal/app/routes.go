package app

import (
	"net/http"
	"time"

	"github.com/eduforge/core/internal/middleware"
	"github.com/eduforge/core/internal/modules/analytics"
	"github.com/eduforge/core/internal/modules/content"
	"github.com/eduforge/core/internal/modules/library"
	"github.com/eduforge/core/internal/modules/marketplace"
	"github.com/eduforge/core/internal/modules/tutor"
	pkgredis "github.com/eduforge/core/internal/pkg/redis"
	"github.com/eduforge/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const tutorChatLimitPerMinute = 20

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Idempotence(rc.Raw()))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	librarySvc := library.NewService(db)
	library.NewHandler(librarySvc).RegisterRoutes(api, authMW)

	marketplaceSvc := marketplace.NewService(db, librarySvc, a.logger)
	marketplace.NewHandler(marketplaceSvc).RegisterRoutes(api, authMW)

	content.NewHandler(content.NewService(db)).RegisterRoutes(api, authMW)

	analyticsSvc := analytics.NewService(db)
	analytics.NewHandler(analyticsSvc).RegisterRoutes(api, authMW)

	tutorSvc := tutor.NewService(analyticsSvc, tutor.NewModelClient(a.cfg.AI), a.logger)
	chatLimitMW := middleware.RateLimit(rc.Raw(), tutorChatLimitPerMinute, time.Minute)
	tutor.NewHandler(tutorSvc).RegisterRoutes(api, authMW, chatLimitMW)
}
