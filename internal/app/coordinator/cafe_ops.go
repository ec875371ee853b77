package coordinator

import (
	"context"
	"errors"
	"io"

	cafestore "github.com/cafehubapp/cafehub/internal/app/store/cafes"
	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"github.com/cafehubapp/cafehub/internal/app/system/apperr"
	"github.com/cafehubapp/cafehub/internal/app/system/htmlsanitize"
	"github.com/cafehubapp/cafehub/internal/app/system/txn"
	"github.com/cafehubapp/cafehub/internal/domain/models"
	"go.uber.org/zap"
)

// CafeInput carries the caller-supplied café fields. Logo is nil when no
// image was uploaded; LogoFilename is the upload's original name, kept
// only for its extension.
type CafeInput struct {
	Name         string
	Description  string
	Location     string
	Logo         io.Reader
	LogoFilename string
}

func (in *CafeInput) sanitize() {
	in.Name = htmlsanitize.Strip(in.Name)
	in.Description = htmlsanitize.Strip(in.Description)
	in.Location = htmlsanitize.Strip(in.Location)
}

// CreateCafe validates the input, stores the logo blob, then inserts the
// café record referencing it. A café cannot be created without a logo.
// If the record insert fails after the blob was stored, the orphaned blob
// is logged and left in place; blob storage is outside the transaction
// scope and a stray file is not a correctness problem.
func (c *Coordinator) CreateCafe(ctx context.Context, in CafeInput) (models.Cafe, error) {
	in.sanitize()
	if err := models.ValidateCafeFields(in.Name, in.Description, in.Location); err != nil {
		return models.Cafe{}, apperr.Validation(err)
	}
	if in.Logo == nil {
		return models.Cafe{}, apperr.Validationf("logo image is required")
	}

	logoID, err := c.logos.Put(ctx, c.NewBlobName(in.LogoFilename), in.Logo)
	if err != nil {
		if errors.Is(err, logostore.ErrEmptyUpload) {
			return models.Cafe{}, apperr.Validation(err)
		}
		return models.Cafe{}, apperr.Unavailable(err)
	}

	cafe := models.Cafe{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		LogoID:      logoID,
	}

	var created models.Cafe
	for attempt := 0; attempt < idRetries; attempt++ {
		cafe.CafeID = c.NewCafeID()
		created, err = c.cafes.Insert(ctx, cafe)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, cafestore.ErrDuplicateCafeID) {
			break
		}
	}

	c.log.Warn("cafe insert failed after logo upload; blob orphaned",
		zap.String("logo_id", logoID),
		zap.Error(err))
	if errors.Is(err, cafestore.ErrDuplicateCafeID) {
		return models.Cafe{}, apperr.Conflict(err)
	}
	return models.Cafe{}, storage(err)
}

// UpdateCafe applies a field update to an existing café. When a new logo
// is supplied the old blob is deleted (best effort), the new one stored,
// and the record's logo reference replaced; otherwise the stored logo is
// untouched.
func (c *Coordinator) UpdateCafe(ctx context.Context, cafeID string, in CafeInput) (*models.Cafe, error) {
	in.sanitize()
	if err := models.ValidateCafeFields(in.Name, in.Description, in.Location); err != nil {
		return nil, apperr.Validation(err)
	}

	var newLogoID string
	if in.Logo != nil {
		existing, err := c.cafes.GetByCafeID(ctx, cafeID)
		if err != nil {
			if isNoDocuments(err) {
				return nil, apperr.NotFoundf("cafe %s not found", cafeID)
			}
			return nil, storage(err)
		}

		if err := c.logos.Delete(ctx, existing.LogoID); err != nil {
			c.log.Warn("failed to delete replaced logo",
				zap.String("cafe_id", cafeID),
				zap.String("logo_id", existing.LogoID),
				zap.Error(err))
		}

		newLogoID, err = c.logos.Put(ctx, c.NewBlobName(in.LogoFilename), in.Logo)
		if err != nil {
			if errors.Is(err, logostore.ErrEmptyUpload) {
				return nil, apperr.Validation(err)
			}
			return nil, apperr.Unavailable(err)
		}
	}

	matched, err := c.cafes.Update(ctx, cafeID, cafestore.Update{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		LogoID:      newLogoID,
	})
	if err != nil {
		return nil, storage(err)
	}
	if matched == 0 {
		return nil, apperr.NotFoundf("cafe %s not found", cafeID)
	}

	updated, err := c.cafes.GetByCafeID(ctx, cafeID)
	if err != nil {
		return nil, storage(err)
	}
	return updated, nil
}

// DeleteCafe removes the café and, in the same transaction, every
// assignment referencing it. On commit the logo blob is deleted best
// effort: a failure there is logged, never surfaced, since the records
// are already consistently gone.
func (c *Coordinator) DeleteCafe(ctx context.Context, cafeID string) error {
	cafe, err := c.cafes.GetByCafeID(ctx, cafeID)
	if err != nil {
		if isNoDocuments(err) {
			return apperr.NotFoundf("cafe %s not found", cafeID)
		}
		return storage(err)
	}

	err = txn.Run(ctx, c.db, c.log, func(ctx context.Context) error {
		deleted, err := c.cafes.Delete(ctx, cafeID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperr.NotFoundf("cafe %s not found", cafeID)
		}
		_, err = c.assignments.DeleteByCafe(ctx, cafeID)
		return err
	})
	if err != nil {
		return storage(err)
	}

	if err := c.logos.Delete(ctx, cafe.LogoID); err != nil {
		c.log.Warn("failed to delete logo after cafe delete",
			zap.String("cafe_id", cafeID),
			zap.String("logo_id", cafe.LogoID),
			zap.Error(err))
	}
	return nil
}
