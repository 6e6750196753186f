package marketplace

import (
	"errors"
	"fmt"

	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/modules/library"
	"github.com/eduforge/core/internal/pkg/pagination"
	"github.com/eduforge/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrItemNotFound    = errors.New("marketplace item not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidContent  = errors.New("content reference does not resolve")
)

// Service owns marketplace listings and the purchase/entitlement flow.
type Service struct {
	db      *gorm.DB
	library *library.Service
	log     *zap.Logger
}

func NewService(db *gorm.DB, librarySvc *library.Service, log *zap.Logger) *Service {
	return &Service{db: db, library: librarySvc, log: log}
}

// List returns one page of listings, newest first.
func (s *Service) List(q pagination.Query) ([]models.MarketplaceItemModel, response.Pagination, error) {
	items := make([]models.MarketplaceItemModel, 0, q.Size)
	page, err := pagination.Paginate(
		s.db.Model(&models.MarketplaceItemModel{}).Order("created_at DESC"),
		q, &items,
	)
	return items, page, err
}

// GetByID returns a listing or nil when it does not exist.
func (s *Service) GetByID(id string) (*models.MarketplaceItemModel, error) {
	var item models.MarketplaceItemModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create publishes a listing. The content kind is validated and fixed here,
// at the data-access boundary; nothing downstream re-derives it.
func (s *Service) Create(dto *CreateItemDTO) (*models.MarketplaceItemModel, error) {
	if dto.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if err := s.resolveContent(dto.ContentID, dto.ContentKind); err != nil {
		return nil, err
	}

	category := dto.Category
	if category == "" {
		category = models.DefaultItemCategory
	}

	item := models.MarketplaceItemModel{
		Title:       dto.Title,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    category,
		Image:       dto.Image,
		Author:      dto.Author,
		ContentID:   dto.ContentID,
		ContentKind: dto.ContentKind,
	}
	return &item, s.db.Create(&item).Error
}

// Delete removes a listing.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.MarketplaceItemModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Purchase turns a buy action into a durable access grant, exactly once.
//
// The Purchase row insert runs with ON CONFLICT DO NOTHING against the
// (student_id, item_id) unique index. Zero affected rows means the
// entitlement already exists: that is reported as success and no delivery
// is re-attempted. Concurrent duplicate attempts race to insert and the
// loser lands on the same path, so no application-level locking is needed.
func (s *Service) Purchase(studentID, itemID string) error {
	var studentCount int64
	if err := s.db.Model(&models.UserModel{}).Where("id = ?", studentID).Count(&studentCount).Error; err != nil {
		return fmt.Errorf("look up student: %w", err)
	}
	if studentCount == 0 {
		return ErrStudentNotFound
	}

	item, err := s.GetByID(itemID)
	if err != nil {
		return fmt.Errorf("look up item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	purchase := models.PurchaseModel{
		StudentID: studentID,
		ItemID:    item.ID,
		Price:     item.Price,
	}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(&purchase)
	if res.Error != nil {
		return fmt.Errorf("insert purchase: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Already owned: idempotent success, no re-grant.
		return nil
	}

	switch item.ContentKind {
	case models.ContentKindQuestionSet:
		// Best effort: the purchase row is the entitlement, a failed grant
		// must not roll it back or surface as a purchase failure.
		if err := s.library.Grant(studentID, item.ContentID); err != nil {
			s.log.Warn("library grant failed after purchase",
				zap.String("student_id", studentID),
				zap.String("question_set_id", item.ContentID),
				zap.Error(err),
			)
		}
	case models.ContentKindCourse:
		// Course delivery is intentionally not wired yet; the purchase row
		// still records the entitlement.
		s.log.Warn("course purchase recorded without a delivery action",
			zap.String("student_id", studentID),
			zap.String("course_id", item.ContentID),
		)
	}
	return nil
}

func (s *Service) resolveContent(contentID, contentKind string) error {
	var count int64
	switch contentKind {
	case models.ContentKindQuestionSet:
		if err := s.db.Model(&models.QuestionSetModel{}).Where("id = ?", contentID).Count(&count).Error; err != nil {
			return err
		}
	case models.ContentKindCourse:
		if err := s.db.Model(&models.CourseModel{}).Where("id = ?", contentID).Count(&count).Error; err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown content kind %q", ErrInvalidContent, contentKind)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %q", ErrInvalidContent, contentKind, contentID)
	}
	return nil
}
