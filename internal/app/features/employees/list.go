package employees

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cafehubapp/cafehub/internal/app/store/queries/roster"
	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
)

// HandleList serves GET /employees?cafeId=. Employees are ordered by days
// worked, longest tenure first; unassigned employees trail with null café
// details and null daysWorked.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cafeID := strings.TrimSpace(r.URL.Query().Get("cafeId"))

	rows, err := roster.List(ctx, h.DB, cafeID, time.Now().UTC())
	if err != nil {
		respond.Err(w, h.Log, "employee list failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}
