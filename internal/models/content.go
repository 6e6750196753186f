package models

// QuestionSetModel is a purchasable bundle of practice questions.
type QuestionSetModel struct {
	Base
	Title         string `json:"title"          gorm:"not null"`
	Description   string `json:"description"    gorm:"type:text"`
	Subject       string `json:"subject"        gorm:"index"`
	QuestionCount int    `json:"question_count" gorm:"default:0"`
	AuthorID      string `json:"author_id"      gorm:"index"`
}

func (QuestionSetModel) TableName() string { return "question_sets" }

// CourseModel is long-form course content.
type CourseModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Subject     string `json:"subject"     gorm:"index"`
	AuthorID    string `json:"author_id"   gorm:"index"`
}

func (CourseModel) TableName() string { return "courses" }
