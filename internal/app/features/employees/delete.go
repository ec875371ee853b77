package employees

import (
	"context"
	"net/http"

	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete serves DELETE /employees/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Coord.DeleteEmployee(ctx, employeeID); err != nil {
		respond.Err(w, h.Log, "employee delete failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}
