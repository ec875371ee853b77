// Package assignmentstore persists the employee→café assignment rows.
//
// Assignment is a dependent join record: only the coordinator writes here,
// as a side effect of employee or café mutations. The unique index on
// employee_id (see system/indexes) is the storage-level guard that an
// employee never holds two assignments, even under racing writers.
package assignmentstore

import (
	"context"
	"errors"

	"github.com/cafehubapp/cafehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assignments")}
}

// ErrDuplicateAssignment is returned when an insert collides with an
// existing assignment for the same employee.
var ErrDuplicateAssignment = errors.New("employee already has an assignment")

// Insert stores a new assignment row.
func (s *Store) Insert(ctx context.Context, a models.Assignment) error {
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// GetByEmployee loads the current assignment for an employee.
// Returns mongo.ErrNoDocuments if the employee is unassigned.
func (s *Store) GetByEmployee(ctx context.Context, employeeID string) (*models.Assignment, error) {
	var a models.Assignment
	if err := s.c.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert writes the assignment for a.EmployeeID, creating the row if the
// employee has none and replacing cafe_id/start_date if it does.
func (s *Store) Upsert(ctx context.Context, a models.Assignment) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"employee_id": a.EmployeeID},
		bson.M{"$set": bson.M{"cafe_id": a.CafeID, "start_date": a.StartDate}},
		options.Update().SetUpsert(true),
	)
	return err
}

// DeleteByEmployee removes the assignment for one employee, returning the
// number of rows deleted (0 or 1).
func (s *Store) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByCafe removes every assignment referencing a café. Used by the
// café-delete cascade inside its transaction.
func (s *Store) DeleteByCafe(ctx context.Context, cafeID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"cafe_id": cafeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
