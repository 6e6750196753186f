package library

import (
	"errors"

	"github.com/eduforge/core/internal/middleware"
	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service manages per-student content access grants.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Grant records that a student may access a question set. Repeated grants
// for the same pair are no-ops: the insert races on the composite unique
// index and conflicting rows are silently skipped.
func (s *Service) Grant(studentID, questionSetID string) error {
	if studentID == "" || questionSetID == "" {
		return errors.New("student id and question set id are required")
	}
	grant := models.LibraryGrantModel{
		StudentID:     studentID,
		QuestionSetID: questionSetID,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "question_set_id"}},
		DoNothing: true,
	}).Create(&grant).Error
}

// Has reports whether a student already holds a grant for a question set.
func (s *Service) Has(studentID, questionSetID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.LibraryGrantModel{}).
		Where("student_id = ? AND question_set_id = ?", studentID, questionSetID).
		Count(&count).Error
	return count > 0, err
}

// ListByStudent returns the question sets a student has access to.
func (s *Service) ListByStudent(studentID string) ([]models.QuestionSetModel, error) {
	var sets []models.QuestionSetModel
	err := s.db.
		Joins("JOIN library_grants ON library_grants.question_set_id = question_sets.id").
		Where("library_grants.student_id = ?", studentID).
		Order("library_grants.created_at DESC").
		Find(&sets).Error
	return sets, err
}

// Handler exposes the student's library over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/library", authMW, h.list)
}

func (h *Handler) list(c *gin.Context) {
	sets, err := h.svc.ListByStudent(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, sets)
}
