package content

import (
	"errors"

	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/pagination"
	"github.com/eduforge/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateQuestionSetDTO struct {
	Title         string `json:"title"   binding:"required"`
	Description   string `json:"description"`
	Subject       string `json:"subject" binding:"required"`
	QuestionCount int    `json:"question_count"`
}

type CreateCourseDTO struct {
	Title       string `json:"title"   binding:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" binding:"required"`
}

// Service owns the browsable catalog of question sets and courses.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListQuestionSets(q pagination.Query) ([]models.QuestionSetModel, response.Pagination, error) {
	sets := make([]models.QuestionSetModel, 0, q.Size)
	page, err := pagination.Paginate(
		s.db.Model(&models.QuestionSetModel{}).Order("created_at DESC"),
		q, &sets,
	)
	return sets, page, err
}

func (s *Service) GetQuestionSet(id string) (*models.QuestionSetModel, error) {
	var set models.QuestionSetModel
	if err := s.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (s *Service) CreateQuestionSet(dto *CreateQuestionSetDTO, authorID string) (*models.QuestionSetModel, error) {
	set := models.QuestionSetModel{
		Title:         dto.Title,
		Description:   dto.Description,
		Subject:       dto.Subject,
		QuestionCount: dto.QuestionCount,
		AuthorID:      authorID,
	}
	return &set, s.db.Create(&set).Error
}

func (s *Service) ListCourses(q pagination.Query) ([]models.CourseModel, response.Pagination, error) {
	courses := make([]models.CourseModel, 0, q.Size)
	page, err := pagination.Paginate(
		s.db.Model(&models.CourseModel{}).Order("created_at DESC"),
		q, &courses,
	)
	return courses, page, err
}

func (s *Service) GetCourse(id string) (*models.CourseModel, error) {
	var course models.CourseModel
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *Service) CreateCourse(dto *CreateCourseDTO, authorID string) (*models.CourseModel, error) {
	course := models.CourseModel{
		Title:       dto.Title,
		Description: dto.Description,
		Subject:     dto.Subject,
		AuthorID:    authorID,
	}
	return &course, s.db.Create(&course).Error
}
