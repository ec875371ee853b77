// Package cafecounts derives the café listing with per-café employee
// counts. The counts are recomputed from the assignments collection on
// every call; nothing is cached.
package cafecounts

import (
	"context"
	"sort"

	cafestore "github.com/cafehubapp/cafehub/internal/app/store/cafes"
	"github.com/cafehubapp/cafehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CafeWithCount struct {
	models.Cafe   `bson:",inline"`
	EmployeeCount int64 `json:"employeeCount"`
}

// ListWithCounts returns cafés joined with their assignment counts, sorted
// by count descending (name ascending on ties, so zero-count cafés trail
// in a stable order). locationFilter, when non-empty, narrows cafés by
// case-insensitive substring match on location before counting.
func ListWithCounts(ctx context.Context, db *mongo.Database, locationFilter string) ([]CafeWithCount, error) {
	cafes, err := cafestore.New(db).List(ctx, locationFilter)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return []CafeWithCount{}, nil
	}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$cafe_id",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := db.Collection("assignments").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var grouped []struct {
		CafeID string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &grouped); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(grouped))
	for _, g := range grouped {
		counts[g.CafeID] = g.Count
	}

	// Left join: cafés with no assignments report count 0.
	out := make([]CafeWithCount, 0, len(cafes))
	for _, c := range cafes {
		out = append(out, CafeWithCount{Cafe: c, EmployeeCount: counts[c.CafeID]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EmployeeCount != out[j].EmployeeCount {
			return out[i].EmployeeCount > out[j].EmployeeCount
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
