package marketplace

import (
	"errors"

	"github.com/eduforge/core/internal/middleware"
	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/pagination"
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
	items := rg.Group("/marketplace")
	items.GET("", h.list)
	items.GET("/:id", h.get)

	authed := items.Group("", authMW)
	authed.POST("", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), h.create)
	authed.DELETE("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), h.delete)
	authed.POST("/:id/purchase", h.purchase)
}

func (h *Handler) list(c *gin.Context) {
	items, page, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paginated(c, items, page)
}

func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, item)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(&dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidContent):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) purchase(c *gin.Context) {
	err := h.svc.Purchase(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrStudentNotFound):
			response.NotFoundMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, purchaseResponse{Success: true})
}
