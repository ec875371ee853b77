// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique indexes are load-bearing: cafe_id and employee_id are the
business keys, and the unique index on assignments.employee_id is what
enforces "at most one assignment per employee" under concurrent writes.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCafes(ctx, db); err != nil {
		problems = append(problems, "cafes: "+err.Error())
	}
	if err := ensureEmployees(ctx, db); err != nil {
		problems = append(problems, "employees: "+err.Error())
	}
	if err := ensureAssignments(ctx, db); err != nil {
		problems = append(problems, "assignments: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCafes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("cafes").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "cafe_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_cafe_id"),
		},
		{
			Keys:    bson.D{{Key: "location_ci", Value: 1}},
			Options: options.Index().SetName("location_ci"),
		},
	})
	return ignoreConflict(err)
}

func ensureEmployees(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("employees").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_employee_id"),
		},
	})
	return ignoreConflict(err)
}

func ensureAssignments(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("assignments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_assignment_employee_id"),
		},
		{
			Keys:    bson.D{{Key: "cafe_id", Value: 1}},
			Options: options.Index().SetName("assignment_cafe_id"),
		},
	})
	return ignoreConflict(err)
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name. Treat that as ensured.
func ignoreConflict(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "IndexOptionsConflict") {
		return nil
	}
	return err
}
