package analytics

// SubjectAccuracy is a bounded per-subject aggregate.
type SubjectAccuracy struct {
	Subject     string  `json:"subject"`
	Answered    int64   `json:"answered"`
	AccuracyPct float64 `json:"accuracy_pct"`
}

// StudentScore is a bounded per-student aggregate used in rankings.
type StudentScore struct {
	StudentID   string  `json:"student_id"`
	Name        string  `json:"name"`
	Answered    int64   `json:"answered"`
	AccuracyPct float64 `json:"accuracy_pct"`
}

// PlatformSummary aggregates platform-wide activity. All lists are capped;
// raw per-answer rows never leave this package.
type PlatformSummary struct {
	TotalStudents      int64             `json:"total_students"`
	TotalQuestionSets  int64             `json:"total_question_sets"`
	TotalCourses       int64             `json:"total_courses"`
	TotalAnswers       int64             `json:"total_answers"`
	OverallAccuracyPct float64           `json:"overall_accuracy_pct"`
	HardestSubjects    []SubjectAccuracy `json:"hardest_subjects"`
	EasiestSubjects    []SubjectAccuracy `json:"easiest_subjects"`
	TopStudents        []StudentScore    `json:"top_students"`
	MostActiveStudents []StudentScore    `json:"most_active_students"`
}

// StudentSummary aggregates one student's progress.
type StudentSummary struct {
	StudentID         string            `json:"student_id"`
	Name              string            `json:"name"`
	Answered          int64             `json:"answered"`
	AccuracyPct       float64           `json:"accuracy_pct"`
	QuestionSetsOwned int64             `json:"question_sets_owned"`
	Strengths         []SubjectAccuracy `json:"strengths"`
	Weaknesses        []SubjectAccuracy `json:"weaknesses"`
}
