package tutor

import (
	"fmt"
	"strings"

	"github.com/eduforge/core/internal/modules/analytics"
)

// Context blocks are rendered from fixed-size aggregations only, so the
// assembled prompt stays bounded no matter how large the platform grows.

func renderTeacherContext(ps *analytics.PlatformSummary) string {
	var b strings.Builder
	b.WriteString("PLATFORM OVERVIEW\n")
	fmt.Fprintf(&b, "- Students: %d\n", ps.TotalStudents)
	fmt.Fprintf(&b, "- Question sets: %d, courses: %d\n", ps.TotalQuestionSets, ps.TotalCourses)
	fmt.Fprintf(&b, "- Questions answered: %d (overall accuracy %.1f%%)\n", ps.TotalAnswers, ps.OverallAccuracyPct)

	if len(ps.HardestSubjects) > 0 {
		b.WriteString("Hardest subjects (lowest accuracy):\n")
		writeSubjects(&b, ps.HardestSubjects)
	}
	if len(ps.EasiestSubjects) > 0 {
		b.WriteString("Easiest subjects (highest accuracy):\n")
		writeSubjects(&b, ps.EasiestSubjects)
	}
	if len(ps.TopStudents) > 0 {
		b.WriteString("Top students by accuracy:\n")
		writeStudents(&b, ps.TopStudents)
	}
	if len(ps.MostActiveStudents) > 0 {
		b.WriteString("Most active students:\n")
		writeStudents(&b, ps.MostActiveStudents)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStudentContext(ss *analytics.StudentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "STUDENT: %s\n", ss.Name)
	fmt.Fprintf(&b, "- Questions answered: %d (accuracy %.1f%%)\n", ss.Answered, ss.AccuracyPct)
	fmt.Fprintf(&b, "- Question sets in library: %d\n", ss.QuestionSetsOwned)

	if len(ss.Strengths) > 0 {
		b.WriteString("Strongest topics:\n")
		writeSubjects(&b, ss.Strengths)
	}
	if len(ss.Weaknesses) > 0 {
		b.WriteString("Weakest topics:\n")
		writeSubjects(&b, ss.Weaknesses)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSubjects(b *strings.Builder, subjects []analytics.SubjectAccuracy) {
	for _, s := range subjects {
		fmt.Fprintf(b, "  - %s: %.1f%% over %d answers\n", s.Subject, s.AccuracyPct, s.Answered)
	}
}

func writeStudents(b *strings.Builder, students []analytics.StudentScore) {
	for _, s := range students {
		fmt.Fprintf(b, "  - %s: %.1f%% over %d answers\n", s.Name, s.AccuracyPct, s.Answered)
	}
}
