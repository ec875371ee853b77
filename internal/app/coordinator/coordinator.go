// Package coordinator orchestrates the multi-step write paths that keep
// cafés, employees and assignments consistent with each other and with
// the logo blob store.
//
// All record writes that must be atomic run inside one txn.Run scope.
// Blob writes are out-of-band: uploads happen before the record write
// (an orphaned blob on failure is logged and tolerated), deletes happen
// after a successful commit (best effort). External callers never touch
// the assignments collection except through these operations.
package coordinator

import (
	"errors"
	"time"

	assignmentstore "github.com/cafehubapp/cafehub/internal/app/store/assignments"
	cafestore "github.com/cafehubapp/cafehub/internal/app/store/cafes"
	employeestore "github.com/cafehubapp/cafehub/internal/app/store/employees"
	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"github.com/cafehubapp/cafehub/internal/app/system/apperr"
	"github.com/cafehubapp/cafehub/internal/app/system/ids"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// idRetries bounds the retry-with-new-id loop on generated-id collisions.
const idRetries = 3

type Coordinator struct {
	db          *mongo.Database
	cafes       *cafestore.Store
	employees   *employeestore.Store
	assignments *assignmentstore.Store
	logos       *logostore.Store
	log         *zap.Logger

	// Generation strategies, swappable in tests.
	NewCafeID     func() string
	NewEmployeeID func() string
	NewBlobName   func(originalName string) string
	Now           func() time.Time
}

func New(db *mongo.Database, logos *logostore.Store, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		db:          db,
		cafes:       cafestore.New(db),
		employees:   employeestore.New(db),
		assignments: assignmentstore.New(db),
		logos:       logos,
		log:         logger,

		NewCafeID:     ids.NewCafeID,
		NewEmployeeID: ids.NewEmployeeID,
		NewBlobName:   ids.NewBlobName,
		Now:           time.Now,
	}
}

// storage wraps a raw store/driver error as unavailable, leaving errors
// that already carry a kind untouched.
func storage(err error) error {
	if err == nil {
		return nil
	}
	if apperr.IsValidation(err) || apperr.IsNotFound(err) || apperr.IsConflict(err) || apperr.IsUnavailable(err) {
		return err
	}
	return apperr.Unavailable(err)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
