package models

// Content kinds a marketplace item can deliver. The kind is decided once
// when the item is created, never re-derived from field presence.
const (
	ContentKindQuestionSet = "question_set"
	ContentKindCourse      = "course"
)

// DefaultItemCategory is assigned when an item is created without one.
const DefaultItemCategory = "Geral"

// MarketplaceItemModel is a purchasable listing pointing at a question set
// or a course. Immutable after creation except for deletion.
type MarketplaceItemModel struct {
	Base
	Title       string  `json:"title"        gorm:"not null"`
	Description string  `json:"description"  gorm:"type:text"`
	Price       float64 `json:"price"        gorm:"type:decimal(10,2);default:0"`
	Category    string  `json:"category"     gorm:"default:'Geral';index"`
	Image       string  `json:"image,omitempty"`
	Author      string  `json:"author,omitempty"`
	ContentID   string  `json:"content_id"   gorm:"index;not null"`
	ContentKind string  `json:"content_kind" gorm:"not null"`
}

func (MarketplaceItemModel) TableName() string { return "marketplace_items" }

// PurchaseModel records that a student bought an item. The composite unique
// index is the single cross-request coordination point for duplicate buys:
// concurrent attempts race to insert and exactly one row survives.
type PurchaseModel struct {
	Base
	StudentID string  `json:"student_id" gorm:"uniqueIndex:idx_purchases_student_item;not null"`
	ItemID    string  `json:"item_id"    gorm:"uniqueIndex:idx_purchases_student_item;not null"`
	Price     float64 `json:"price"      gorm:"type:decimal(10,2);default:0"`
}

func (PurchaseModel) TableName() string { return "purchases" }

// LibraryGrantModel marks a question set as accessible to a student.
// Inserted with ON CONFLICT DO NOTHING so repeated grants are no-ops.
type LibraryGrantModel struct {
	Base
	StudentID     string `json:"student_id"      gorm:"uniqueIndex:idx_grants_student_set;not null"`
	QuestionSetID string `json:"question_set_id" gorm:"uniqueIndex:idx_grants_student_set;not null"`
}

func (LibraryGrantModel) TableName() string { return "library_grants" }
