package analytics

import (
	"errors"

	"github.com/eduforge/core/internal/middleware"
	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := rg.Group("/analytics", authMW)
	grp.GET("/platform", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), h.platform)
	grp.GET("/students/:id", h.student)
}

func (h *Handler) platform(c *gin.Context) {
	summary, err := h.svc.Platform(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}

func (h *Handler) student(c *gin.Context) {
	id := c.Param("id")
	// Students may only read their own aggregates.
	if middleware.CurrentUserRole(c) == models.RoleStudent && middleware.CurrentUserID(c) != id {
		response.Forbidden(c)
		return
	}
	summary, err := h.svc.Student(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}
