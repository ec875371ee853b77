package cafes

import (
	"context"
	"net/http"

	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete serves DELETE /cafes/{id}. The café, its assignments and
// its logo are all removed.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	cafeID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Coord.DeleteCafe(ctx, cafeID); err != nil {
		respond.Err(w, h.Log, "cafe delete failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "cafe and associated assignments deleted"})
}
