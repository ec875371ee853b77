// Package cafes serves the café JSON API: listing with employee counts,
// create/update/delete through the coordinator, and logo streaming.
package cafes

import (
	"github.com/cafehubapp/cafehub/internal/app/coordinator"
	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultMaxLogoBytes caps multipart logo uploads unless configured.
const DefaultMaxLogoBytes = 8 << 20

type Handler struct {
	DB           *mongo.Database
	Coord        *coordinator.Coordinator
	Logos        *logostore.Store
	MaxLogoBytes int64
	Log          *zap.Logger
}

func NewHandler(db *mongo.Database, coord *coordinator.Coordinator, logos *logostore.Store, maxLogoBytes int64, logger *zap.Logger) *Handler {
	if maxLogoBytes <= 0 {
		maxLogoBytes = DefaultMaxLogoBytes
	}
	return &Handler{
		DB:           db,
		Coord:        coord,
		Logos:        logos,
		MaxLogoBytes: maxLogoBytes,
		Log:          logger,
	}
}
