package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/testutil"
	"gorm.io/gorm"
)

func seedAnswers(t *testing.T, db *gorm.DB, studentID, subject string, correct, wrong int) {
	t.Helper()
	for i := 0; i < correct; i++ {
		ev := models.AnswerEventModel{StudentID: studentID, QuestionSetID: "set-1", Subject: subject, Correct: true}
		if err := db.Create(&ev).Error; err != nil {
			t.Fatalf("seed answer: %v", err)
		}
	}
	for i := 0; i < wrong; i++ {
		ev := models.AnswerEventModel{StudentID: studentID, QuestionSetID: "set-1", Subject: subject, Correct: false}
		if err := db.Create(&ev).Error; err != nil {
			t.Fatalf("seed answer: %v", err)
		}
	}
}

func TestPlatformSummary(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	alice := models.UserModel{Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent}
	bob := models.UserModel{Name: "Bob", Email: "bob@example.com", Role: models.RoleStudent}
	teacher := models.UserModel{Name: "Prof", Email: "prof@example.com", Role: models.RoleTeacher}
	for _, u := range []*models.UserModel{&alice, &bob, &teacher} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	// Renal is the weak subject, Cardio the strong one. Both students answer
	// enough to clear the ranking threshold.
	seedAnswers(t, db, alice.ID, "Renal", 1, 3)
	seedAnswers(t, db, alice.ID, "Cardio", 4, 0)
	seedAnswers(t, db, bob.ID, "Renal", 2, 2)
	seedAnswers(t, db, bob.ID, "Cardio", 4, 0)

	ps, err := svc.Platform(context.Background())
	if err != nil {
		t.Fatalf("platform: %v", err)
	}

	if ps.TotalStudents != 2 {
		t.Fatalf("total students = %d, want 2 (teachers excluded)", ps.TotalStudents)
	}
	if ps.TotalAnswers != 16 {
		t.Fatalf("total answers = %d, want 16", ps.TotalAnswers)
	}
	if ps.OverallAccuracyPct != 68.75 {
		t.Fatalf("overall accuracy = %v, want 68.75", ps.OverallAccuracyPct)
	}

	if len(ps.HardestSubjects) == 0 || ps.HardestSubjects[0].Subject != "Renal" {
		t.Fatalf("hardest subjects = %+v, want Renal first", ps.HardestSubjects)
	}
	if len(ps.EasiestSubjects) == 0 || ps.EasiestSubjects[0].Subject != "Cardio" {
		t.Fatalf("easiest subjects = %+v, want Cardio first", ps.EasiestSubjects)
	}
	if len(ps.TopStudents) != 2 || ps.TopStudents[0].Name != "Bob" {
		t.Fatalf("top students = %+v, want Bob first", ps.TopStudents)
	}
}

func TestSubjectThresholdHidesSparseSubjects(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	student := models.UserModel{Name: "Solo", Email: "solo@example.com"}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// Two answers is below the per-subject minimum, so the subject must not
	// show up in either direction even though its accuracy is extreme.
	seedAnswers(t, db, student.ID, "Derm", 0, 2)
	seedAnswers(t, db, student.ID, "Renal", 2, 1)

	ps, err := svc.Platform(context.Background())
	if err != nil {
		t.Fatalf("platform: %v", err)
	}
	for _, row := range ps.HardestSubjects {
		if row.Subject == "Derm" {
			t.Fatalf("sparse subject leaked into rankings: %+v", ps.HardestSubjects)
		}
	}
	if len(ps.HardestSubjects) != 1 || ps.HardestSubjects[0].Subject != "Renal" {
		t.Fatalf("hardest subjects = %+v, want only Renal", ps.HardestSubjects)
	}

	// Rankings count answers across subjects, so five total clears the
	// per-student minimum even though each subject is sparse.
	if len(ps.TopStudents) != 1 {
		t.Fatalf("top students = %+v, want the one student with 5 answers", ps.TopStudents)
	}
}

func TestStudentSummary(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	student := models.UserModel{Name: "Maria", Email: "maria@example.com"}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	seedAnswers(t, db, student.ID, "Renal", 1, 3)
	seedAnswers(t, db, student.ID, "Cardio", 3, 0)

	grant := models.LibraryGrantModel{StudentID: student.ID, QuestionSetID: "set-1"}
	if err := db.Create(&grant).Error; err != nil {
		t.Fatalf("seed grant: %v", err)
	}

	ss, err := svc.Student(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("student: %v", err)
	}
	if ss.Name != "Maria" {
		t.Fatalf("name = %q, want Maria", ss.Name)
	}
	if ss.Answered != 7 {
		t.Fatalf("answered = %d, want 7", ss.Answered)
	}
	if ss.QuestionSetsOwned != 1 {
		t.Fatalf("owned = %d, want 1", ss.QuestionSetsOwned)
	}
	if len(ss.Weaknesses) == 0 || ss.Weaknesses[0].Subject != "Renal" {
		t.Fatalf("weaknesses = %+v, want Renal first", ss.Weaknesses)
	}
	if len(ss.Strengths) == 0 || ss.Strengths[0].Subject != "Cardio" {
		t.Fatalf("strengths = %+v, want Cardio first", ss.Strengths)
	}
}

func TestStudentNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	if _, err := svc.Student(context.Background(), "ghost"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestEmptyPlatformIsZeroValued(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	ps, err := svc.Platform(context.Background())
	if err != nil {
		t.Fatalf("platform: %v", err)
	}
	if ps.TotalAnswers != 0 || ps.OverallAccuracyPct != 0 {
		t.Fatalf("empty platform = %+v, want zero totals", ps)
	}
	if len(ps.HardestSubjects) != 0 || len(ps.TopStudents) != 0 {
		t.Fatalf("empty platform produced rankings: %+v", ps)
	}
}
