package tutor

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, rateLimitMW gin.HandlerFunc) {
	grp := rg.Group("/tutor", authMW)
	grp.POST("/greeting", h.greeting)
	grp.POST("/chat", rateLimitMW, h.chat)
}

func (h *Handler) greeting(c *gin.Context) {
	var dto greetingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	role, err := roleFromClaims(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	greeting, err := h.svc.Greet(
		c.Request.Context(), role,
		middleware.CurrentUserID(c), middleware.CurrentUserName(c),
		dto.SessionID,
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, chatResponse{Message: ChatMessage{Role: MessageRoleModel, Content: greeting}})
}

func (h *Handler) chat(c *gin.Context) {
	var dto chatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	role, err := roleFromClaims(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	question := dto.Question
	if dto.Analyze {
		question = analyzeQuestion
	}

	reply, err := h.svc.Respond(
		c.Request.Context(), role,
		middleware.CurrentUserID(c), middleware.CurrentUserName(c),
		dto.SessionID, question,
	)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) || errors.Is(err, ErrUnknownRole) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, chatResponse{Message: ChatMessage{Role: MessageRoleModel, Content: reply}})
}

// roleFromClaims maps the auth role claim onto the tutor's closed variant.
// Anything outside the two supported roles is rejected, never defaulted.
func roleFromClaims(c *gin.Context) (Role, error) {
	switch middleware.CurrentUserRole(c) {
	case models.RoleTeacher:
		return RoleTeacher, nil
	case models.RoleStudent:
		return RoleStudent, nil
	default:
		return "", ErrUnknownRole
	}
}
