package cafes

import (
	"context"
	"net/http"
	"strings"

	"github.com/cafehubapp/cafehub/internal/app/store/queries/cafecounts"
	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
)

// HandleList serves GET /cafes?location=. Each café carries the number of
// employees currently assigned to it; the list is ordered by that count,
// highest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	location := strings.TrimSpace(r.URL.Query().Get("location"))

	rows, err := cafecounts.ListWithCounts(ctx, h.DB, location)
	if err != nil {
		respond.Err(w, h.Log, "cafe list failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}
