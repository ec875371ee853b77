// Package roster derives the employee listing: each employee left-joined
// with their current assignment and the assigned café, plus tenure in
// whole days. Employees with no assignment appear with nil café and nil
// DaysWorked, unless a café filter is active, which restricts the listing
// to that café's employees at the assignment join.
package roster

import (
	"context"
	"sort"
	"time"

	"github.com/cafehubapp/cafehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRow struct {
	models.Employee `bson:",inline"`

	Cafe       *models.Cafe `bson:"cafe,omitempty" json:"cafe,omitempty"`
	StartDate  *time.Time   `json:"startDate,omitempty"`
	DaysWorked *int64       `json:"daysWorked"`
}

// List returns the employee roster. cafeID, when non-empty, restricts the
// result to employees currently assigned to that café. DaysWorked is
// floor((now − start_date) / 24h), computed against the supplied clock so
// callers and tests agree on "now".
func List(ctx context.Context, db *mongo.Database, cafeID string, now time.Time) ([]EmployeeRow, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "assignments",
			"localField":   "employee_id",
			"foreignField": "employee_id",
			"as":           "assignment",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$assignment",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	// A café filter binds at the assignment join: unassigned employees
	// drop out only when the filter is active.
	if cafeID != "" {
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{"assignment.cafe_id": cafeID}}})
	}

	pipe = append(pipe,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "cafes",
			"localField":   "assignment.cafe_id",
			"foreignField": "cafe_id",
			"as":           "cafe",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$cafe",
			"preserveNullAndEmptyArrays": true,
		}}},
	)

	cur, err := db.Collection("employees").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []struct {
		models.Employee `bson:",inline"`
		Assignment      *models.Assignment `bson:"assignment"`
		Cafe            *models.Cafe       `bson:"cafe"`
	}
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	out := make([]EmployeeRow, 0, len(raw))
	for _, r := range raw {
		row := EmployeeRow{Employee: r.Employee}
		// A café reference is only surfaced when the café record exists;
		// an assignment whose café has vanished reads as unassigned.
		if r.Assignment != nil && r.Cafe != nil {
			row.Cafe = r.Cafe
			start := r.Assignment.StartDate
			row.StartDate = &start
			days := DaysWorked(start, now)
			row.DaysWorked = &days
		}
		out = append(out, row)
	}

	// Descending tenure, unassigned (nil) last; employee id breaks ties
	// so output order is deterministic.
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DaysWorked, out[j].DaysWorked
		switch {
		case di == nil && dj == nil:
			return out[i].EmployeeID < out[j].EmployeeID
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di > *dj
		default:
			return out[i].EmployeeID < out[j].EmployeeID
		}
	})
	return out, nil
}

// DaysWorked is the number of whole days elapsed from start to now, never
// negative: a start in the future counts as zero days worked.
func DaysWorked(start, now time.Time) int64 {
	if start.After(now) {
		return 0
	}
	return int64(now.Sub(start) / (24 * time.Hour))
}
