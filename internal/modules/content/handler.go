package content

import (
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
	manageMW := middleware.RequireRole(models.RoleAdmin, models.RoleTeacher)

	sets := rg.Group("/question-sets")
	sets.GET("", h.listQuestionSets)
	sets.GET("/:id", h.getQuestionSet)
	sets.POST("", authMW, manageMW, h.createQuestionSet)

	courses := rg.Group("/courses")
	courses.GET("", h.listCourses)
	courses.GET("/:id", h.getCourse)
	courses.POST("", authMW, manageMW, h.createCourse)
}

func (h *Handler) listQuestionSets(c *gin.Context) {
	sets, page, err := h.svc.ListQuestionSets(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paginated(c, sets, page)
}

func (h *Handler) getQuestionSet(c *gin.Context) {
	set, err := h.svc.GetQuestionSet(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if set == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, set)
}

func (h *Handler) createQuestionSet(c *gin.Context) {
	var dto CreateQuestionSetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	set, err := h.svc.CreateQuestionSet(&dto, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, set)
}

func (h *Handler) listCourses(c *gin.Context) {
	courses, page, err := h.svc.ListCourses(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paginated(c, courses, page)
}

func (h *Handler) getCourse(c *gin.Context) {
	course, err := h.svc.GetCourse(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, course)
}

func (h *Handler) createCourse(c *gin.Context) {
	var dto CreateCourseDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	course, err := h.svc.CreateCourse(&dto, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, course)
}
