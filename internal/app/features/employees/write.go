package employees

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleCreate serves POST /employees. A non-empty cafeId assigns the new
// employee to that café starting now.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body employeeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	emp, err := h.Coord.CreateEmployee(ctx, body.toInput())
	if err != nil {
		respond.Err(w, h.Log, "employee create failed", err)
		return
	}
	respond.JSON(w, http.StatusCreated, emp)
}

// HandleUpdate serves PUT /employees/{id}. cafeId moves the employee
// between cafés (resetting tenure only on an actual change); an empty
// cafeId unassigns them.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	var body employeeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	emp, err := h.Coord.UpdateEmployee(ctx, employeeID, body.toInput())
	if err != nil {
		respond.Err(w, h.Log, "employee update failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, emp)
}
