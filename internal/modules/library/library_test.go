package library

import (
	"testing"

	"github.com/eduforge/core/internal/models"
	"github.com/eduforge/core/internal/pkg/testutil"
)

func TestGrantIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	for i := 0; i < 3; i++ {
		if err := svc.Grant("student-1", "set-1"); err != nil {
			t.Fatalf("grant attempt %d: %v", i+1, err)
		}
	}

	var count int64
	db.Model(&models.LibraryGrantModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("grant rows = %d, want 1", count)
	}

	owned, err := svc.Has("student-1", "set-1")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !owned {
		t.Fatal("expected grant to exist")
	}
}

func TestGrantRequiresIDs(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	if err := svc.Grant("", "set-1"); err == nil {
		t.Fatal("expected error for empty student id")
	}
	if err := svc.Grant("student-1", ""); err == nil {
		t.Fatal("expected error for empty question set id")
	}
}

func TestListByStudentReturnsOnlyOwnedSets(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	owned := models.QuestionSetModel{Title: "Owned", Subject: "Renal"}
	other := models.QuestionSetModel{Title: "Not owned", Subject: "Cardio"}
	if err := db.Create(&owned).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Grant("student-1", owned.ID); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := svc.Grant("student-2", other.ID); err != nil {
		t.Fatalf("grant: %v", err)
	}

	sets, err := svc.ListByStudent("student-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 1 || sets[0].ID != owned.ID {
		t.Fatalf("list = %+v, want exactly the owned set", sets)
	}

	empty, err := svc.ListByStudent("student-3")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty library, got %d sets", len(empty))
	}
}
