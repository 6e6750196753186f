package analytics

import (
	"context"
	"errors"

	"github.com/eduforge/core/internal/models"
	"gorm.io/gorm"
)

const (
	// Subjects and students need a few answers before accuracy means anything.
	minSubjectAnswers = 3
	minRankingAnswers = 5
	listLimit         = 5
)

var ErrStudentNotFound = errors.New("student not found")

// Service computes read-only aggregations over answer events. Outputs are
// fixed-size regardless of platform scale.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Platform returns platform-wide aggregates for the teacher view.
func (s *Service) Platform(ctx context.Context) (*PlatformSummary, error) {
	db := s.db.WithContext(ctx)
	out := &PlatformSummary{}

	if err := db.Model(&models.UserModel{}).Where("role = ?", models.RoleStudent).Count(&out.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.QuestionSetModel{}).Count(&out.TotalQuestionSets).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CourseModel{}).Count(&out.TotalCourses).Error; err != nil {
		return nil, err
	}

	var overall struct {
		Answered int64
		Correct  int64
	}
	err := db.Model(&models.AnswerEventModel{}).
		Select("COUNT(*) AS answered, COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0) AS correct").
		Scan(&overall).Error
	if err != nil {
		return nil, err
	}
	out.TotalAnswers = overall.Answered
	if overall.Answered > 0 {
		out.OverallAccuracyPct = percent(overall.Correct, overall.Answered)
	}

	if out.HardestSubjects, err = s.subjectAccuracy(db, "", "accuracy_pct ASC"); err != nil {
		return nil, err
	}
	if out.EasiestSubjects, err = s.subjectAccuracy(db, "", "accuracy_pct DESC"); err != nil {
		return nil, err
	}
	if out.TopStudents, err = s.studentRanking(db, "accuracy_pct DESC"); err != nil {
		return nil, err
	}
	if out.MostActiveStudents, err = s.studentRanking(db, "answered DESC"); err != nil {
		return nil, err
	}
	return out, nil
}

// Student returns one student's progress aggregates for the mentor view.
func (s *Service) Student(ctx context.Context, studentID string) (*StudentSummary, error) {
	db := s.db.WithContext(ctx)

	var user models.UserModel
	if err := db.First(&user, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	out := &StudentSummary{StudentID: user.ID, Name: user.Name}

	var totals struct {
		Answered int64
		Correct  int64
	}
	err := db.Model(&models.AnswerEventModel{}).
		Select("COUNT(*) AS answered, COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("student_id = ?", studentID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	out.Answered = totals.Answered
	if totals.Answered > 0 {
		out.AccuracyPct = percent(totals.Correct, totals.Answered)
	}

	if err := db.Model(&models.LibraryGrantModel{}).Where("student_id = ?", studentID).Count(&out.QuestionSetsOwned).Error; err != nil {
		return nil, err
	}

	if out.Strengths, err = s.subjectAccuracy(db, studentID, "accuracy_pct DESC"); err != nil {
		return nil, err
	}
	if out.Weaknesses, err = s.subjectAccuracy(db, studentID, "accuracy_pct ASC"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) subjectAccuracy(db *gorm.DB, studentID, order string) ([]SubjectAccuracy, error) {
	query := db.Model(&models.AnswerEventModel{}).
		Select("subject, COUNT(*) AS answered, 100.0 * SUM(CASE WHEN correct THEN 1 ELSE 0 END) / COUNT(*) AS accuracy_pct").
		Group("subject").
		Having("COUNT(*) >= ?", minSubjectAnswers).
		Order(order).
		Limit(listLimit)
	if studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	rows := make([]SubjectAccuracy, 0, listLimit)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) studentRanking(db *gorm.DB, order string) ([]StudentScore, error) {
	rows := make([]StudentScore, 0, listLimit)
	err := db.Model(&models.AnswerEventModel{}).
		Select("answer_events.student_id, users.name, COUNT(*) AS answered, 100.0 * SUM(CASE WHEN answer_events.correct THEN 1 ELSE 0 END) / COUNT(*) AS accuracy_pct").
		Joins("JOIN users ON users.id = answer_events.student_id").
		Group("answer_events.student_id, users.name").
		Having("COUNT(*) >= ?", minRankingAnswers).
		Order(order).
		Limit(listLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func percent(part, total int64) float64 {
	return 100.0 * float64(part) / float64(total)
}
