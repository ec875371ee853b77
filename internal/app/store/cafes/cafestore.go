package cafestore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/cafehubapp/cafehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("cafes")}
}

// ErrDuplicateCafeID is returned when an insert collides with an existing
// cafe_id. With uuid v4 ids this signals a generator retry, not user error.
var ErrDuplicateCafeID = errors.New("a cafe with this id already exists")

// Insert stores a new café. CafeID and LogoID must already be set by the
// caller; LocationCI and timestamps are filled in here.
func (s *Store) Insert(ctx context.Context, cafe models.Cafe) (models.Cafe, error) {
	cafe.LocationCI = text.Fold(cafe.Location)
	now := time.Now().UTC()
	cafe.CreatedAt = now
	cafe.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, cafe); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Cafe{}, ErrDuplicateCafeID
		}
		return models.Cafe{}, err
	}
	return cafe, nil
}

// GetByCafeID loads a café by business id.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByCafeID(ctx context.Context, cafeID string) (*models.Cafe, error) {
	var c models.Cafe
	if err := s.c.FindOne(ctx, bson.M{"cafe_id": cafeID}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update holds the mutable fields of a café. LogoID is applied only when
// non-empty, so field-only edits leave the stored logo reference alone.
type Update struct {
	Name        string
	Description string
	Location    string
	LogoID      string
}

// Update applies upd to the café with the given id and returns the number
// of matched documents (0 when the café does not exist).
func (s *Store) Update(ctx context.Context, cafeID string, upd Update) (int64, error) {
	set := bson.M{
		"name":        upd.Name,
		"description": upd.Description,
		"location":    upd.Location,
		"location_ci": text.Fold(upd.Location),
		"updated_at":  time.Now().UTC(),
	}
	if upd.LogoID != "" {
		set["logo_id"] = upd.LogoID
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"cafe_id": cafeID}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a café by business id and returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, cafeID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"cafe_id": cafeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns cafés, optionally narrowed by a case-insensitive substring
// match on location. Results are ordered by name for stable output; callers
// that need count ordering re-sort after joining employee counts.
func (s *Store) List(ctx context.Context, locationFilter string) ([]models.Cafe, error) {
	filter := bson.M{}
	if locationFilter != "" {
		filter["location_ci"] = primitive.Regex{Pattern: regexp.QuoteMeta(text.Fold(locationFilter))}
	}

	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Cafe
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
