package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/cafehubapp/cafehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCafe inserts a café with a generated id and a placeholder logo
// reference. Returns the stored record.
func (f *Fixtures) CreateCafe(ctx context.Context, name, location string) models.Cafe {
	f.t.Helper()

	now := time.Now().UTC()
	cafe := models.Cafe{
		CafeID:      uuid.NewString(),
		Name:        name,
		Description: "Test cafe description",
		Location:    location,
		LocationCI:  text.Fold(location),
		LogoID:      "000000000000000000000000",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("cafes").InsertOne(ctx, cafe); err != nil {
		f.t.Fatalf("failed to create test cafe: %v", err)
	}
	return cafe
}

// CreateEmployee inserts an employee with the given business id.
func (f *Fixtures) CreateEmployee(ctx context.Context, employeeID, name string) models.Employee {
	f.t.Helper()

	now := time.Now().UTC()
	emp := models.Employee{
		EmployeeID:   employeeID,
		Name:         name,
		EmailAddress: name + "@example.com",
		PhoneNumber:  "91234567",
		Gender:       "Other",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("employees").InsertOne(ctx, emp); err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return emp
}

// CreateAssignment links an employee to a café starting at start.
func (f *Fixtures) CreateAssignment(ctx context.Context, employeeID, cafeID string, start time.Time) models.Assignment {
	f.t.Helper()

	a := models.Assignment{
		EmployeeID: employeeID,
		CafeID:     cafeID,
		StartDate:  start.UTC(),
	}

	if _, err := f.db.Collection("assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}
