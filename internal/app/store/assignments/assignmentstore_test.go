package assignmentstore_test

import (
	"errors"
	"testing"
	"time"

	assignmentstore "github.com/cafehubapp/cafehub/internal/app/store/assignments"
	"github.com/cafehubapp/cafehub/internal/app/system/indexes"
	"github.com/cafehubapp/cafehub/internal/domain/models"
	"github.com/cafehubapp/cafehub/internal/testutil"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestInsertAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := assignmentstore.New(db)
	cafeID := uuid.NewString()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := store.Insert(ctx, models.Assignment{
		EmployeeID: "UIAAAAAA1",
		CafeID:     cafeID,
		StartDate:  start,
	}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := store.GetByEmployee(ctx, "UIAAAAAA1")
	if err != nil {
		t.Fatalf("GetByEmployee: %v", err)
	}
	if got.CafeID != cafeID {
		t.Errorf("CafeID = %q, want %q", got.CafeID, cafeID)
	}
	if !got.StartDate.Equal(start) {
		t.Errorf("StartDate = %v, want %v", got.StartDate, start)
	}
}

func TestGetUnassigned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := assignmentstore.New(db).GetByEmployee(ctx, "UIMISSING"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("got %v, want mongo.ErrNoDocuments", err)
	}
}

// One assignment per employee is enforced by the unique index, not by
// application-level checks, so a second insert for the same employee must
// fail even though it references a different café.
func TestInsertSecondAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	store := assignmentstore.New(db)
	now := time.Now().UTC()

	if err := store.Insert(ctx, models.Assignment{EmployeeID: "UIBBBBBB2", CafeID: uuid.NewString(), StartDate: now}); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	err := store.Insert(ctx, models.Assignment{EmployeeID: "UIBBBBBB2", CafeID: uuid.NewString(), StartDate: now})
	if !errors.Is(err, assignmentstore.ErrDuplicateAssignment) {
		t.Errorf("got %v, want ErrDuplicateAssignment", err)
	}
}

func TestUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := assignmentstore.New(db)
	first := uuid.NewString()
	second := uuid.NewString()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Upsert creates the row when the employee has none.
	if err := store.Upsert(ctx, models.Assignment{EmployeeID: "UICCCCCC3", CafeID: first, StartDate: t0}); err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	got, err := store.GetByEmployee(ctx, "UICCCCCC3")
	if err != nil {
		t.Fatalf("GetByEmployee: %v", err)
	}
	if got.CafeID != first || !got.StartDate.Equal(t0) {
		t.Errorf("after create: %+v", got)
	}

	// and replaces cafe_id/start_date when it already exists.
	if err := store.Upsert(ctx, models.Assignment{EmployeeID: "UICCCCCC3", CafeID: second, StartDate: t1}); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	got, err = store.GetByEmployee(ctx, "UICCCCCC3")
	if err != nil {
		t.Fatalf("GetByEmployee: %v", err)
	}
	if got.CafeID != second || !got.StartDate.Equal(t1) {
		t.Errorf("after replace: %+v", got)
	}
}

func TestDeleteByEmployee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateAssignment(ctx, "UIDDDDDD4", uuid.NewString(), time.Now())
	store := assignmentstore.New(db)

	deleted, err := store.DeleteByEmployee(ctx, "UIDDDDDD4")
	if err != nil {
		t.Fatalf("DeleteByEmployee: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	deleted, err = store.DeleteByEmployee(ctx, "UIDDDDDD4")
	if err != nil {
		t.Fatalf("second DeleteByEmployee: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second delete = %d, want 0", deleted)
	}
}

func TestDeleteByCafe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	target := uuid.NewString()
	other := uuid.NewString()
	now := time.Now()
	fx.CreateAssignment(ctx, "UIEEEEEE5", target, now)
	fx.CreateAssignment(ctx, "UIFFFFFF6", target, now)
	fx.CreateAssignment(ctx, "UIGGGGGG7", other, now)
	store := assignmentstore.New(db)

	deleted, err := store.DeleteByCafe(ctx, target)
	if err != nil {
		t.Fatalf("DeleteByCafe: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	// The unrelated café's assignment survives.
	if _, err := store.GetByEmployee(ctx, "UIGGGGGG7"); err != nil {
		t.Errorf("assignment for other café was removed: %v", err)
	}
}
