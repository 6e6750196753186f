package models

// AnswerEventModel is one answered question. Analytics never exposes these
// rows directly, only fixed-size aggregations over them.
type AnswerEventModel struct {
	Base
	StudentID     string `json:"student_id"      gorm:"index;not null"`
	QuestionSetID string `json:"question_set_id" gorm:"index;not null"`
	Subject       string `json:"subject"         gorm:"index;not null"`
	Correct       bool   `json:"correct"`
}

func (AnswerEventModel) TableName() string { return "answer_events" }
