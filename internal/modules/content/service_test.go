package content

import (
	"fmt"
	"testing"

	"github.com/eduforge/core/internal/pkg/pagination"
	"github.com/eduforge/core/internal/pkg/testutil"
)

func TestListQuestionSetsPaginates(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	for i := 0; i < 7; i++ {
		dto := CreateQuestionSetDTO{
			Title:   fmt.Sprintf("Set %d", i),
			Subject: "Renal",
		}
		if _, err := svc.CreateQuestionSet(&dto, "teacher-1"); err != nil {
			t.Fatalf("seed set %d: %v", i, err)
		}
	}

	sets, page, err := svc.ListQuestionSets(pagination.Query{Page: 1, Size: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("page size = %d, want 3", len(sets))
	}
	if page.Total != 7 || page.TotalPage != 3 || !page.HasNextPage {
		t.Fatalf("pagination = %+v", page)
	}

	last, page, err := svc.ListQuestionSets(pagination.Query{Page: 3, Size: 3})
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if len(last) != 1 || page.HasNextPage {
		t.Fatalf("last page = %d sets, pagination = %+v", len(last), page)
	}
}

func TestGetQuestionSetMissingReturnsNil(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	set, err := svc.GetQuestionSet("ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if set != nil {
		t.Fatalf("set = %+v, want nil for missing id", set)
	}
}

func TestCreateCourseStampsAuthor(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	course, err := svc.CreateCourse(&CreateCourseDTO{Title: "Cardio 101", Subject: "Cardio"}, "teacher-9")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.AuthorID != "teacher-9" {
		t.Fatalf("author = %q, want teacher-9", course.AuthorID)
	}

	got, err := svc.GetCourse(course.ID)
	if err != nil || got == nil {
		t.Fatalf("get course: %v, %v", got, err)
	}
}
