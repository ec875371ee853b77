package cafes

import (
	"context"
	"errors"
	"net/http"

	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleLogo serves GET /cafes/logo/{id}, streaming the stored image.
func (h *Handler) HandleLogo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	w.Header().Set("Content-Type", "application/octet-stream")
	n, err := h.Logos.Download(ctx, id, w)
	if err != nil {
		if n > 0 {
			// Headers and part of the body are already written; all we
			// can do is log and drop the connection state.
			h.Log.Error("logo stream aborted mid-body",
				zap.String("logo_id", id),
				zap.Int64("bytes_written", n),
				zap.Error(err))
			return
		}
		if errors.Is(err, logostore.ErrNotFound) || errors.Is(err, logostore.ErrBadID) {
			respond.JSON(w, http.StatusNotFound, map[string]string{"error": "image not found"})
			return
		}
		respond.Err(w, h.Log, "logo fetch failed", err)
	}
}
