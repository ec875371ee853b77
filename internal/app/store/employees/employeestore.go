package employeestore

import (
	"context"
	"errors"
	"time"

	"github.com/cafehubapp/cafehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("employees")}
}

// ErrDuplicateEmployeeID is returned when an insert collides with an
// existing employee_id. The coordinator retries with a freshly generated
// id rather than surfacing this to the caller.
var ErrDuplicateEmployeeID = errors.New("an employee with this id already exists")

// Insert stores a new employee. EmployeeID must already be set; timestamps
// are filled in here.
func (s *Store) Insert(ctx context.Context, emp models.Employee) (models.Employee, error) {
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, emp); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Employee{}, ErrDuplicateEmployeeID
		}
		return models.Employee{}, err
	}
	return emp, nil
}

// GetByEmployeeID loads an employee by business id.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var e models.Employee
	if err := s.c.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update holds the mutable fields of an employee.
type Update struct {
	Name         string
	EmailAddress string
	PhoneNumber  string
	Gender       string
}

// Update applies upd to the employee with the given id and returns the
// number of matched documents (0 when the employee does not exist).
func (s *Store) Update(ctx context.Context, employeeID string, upd Update) (int64, error) {
	set := bson.M{
		"name":          upd.Name,
		"email_address": upd.EmailAddress,
		"phone_number":  upd.PhoneNumber,
		"gender":        upd.Gender,
		"updated_at":    time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"employee_id": employeeID}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes an employee by business id and returns the number of
// documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
