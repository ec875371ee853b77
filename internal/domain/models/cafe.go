// internal/domain/models/cafe.go
package models

import (
	"errors"
	"strings"
	"time"
)

// Cafe is a physical location with a required logo image stored in GridFS.
//
// CafeID is the business key (uuid v4, immutable after creation) and is
// distinct from the Mongo _id; every cross-collection reference uses CafeID.
type Cafe struct {
	CafeID      string `bson:"cafe_id" json:"cafeId"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Location    string `bson:"location" json:"location"`
	LocationCI  string `bson:"location_ci" json:"-"` // lowercase, diacritics-stripped

	// LogoID is the hex id of the GridFS file holding the logo.
	// Required at creation; replaced (old blob deleted) on logo update.
	LogoID string `bson:"logo_id" json:"logoId"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

var (
	ErrCafeNameRequired        = errors.New("cafe name is required")
	ErrCafeDescriptionRequired = errors.New("cafe description is required")
	ErrCafeLocationRequired    = errors.New("cafe location is required")
)

// ValidateCafeFields checks the caller-supplied fields of a café.
// Generated fields (CafeID, LogoID, timestamps) are the stores' concern.
func ValidateCafeFields(name, description, location string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCafeNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return ErrCafeDescriptionRequired
	}
	if strings.TrimSpace(location) == "" {
		return ErrCafeLocationRequired
	}
	return nil
}
