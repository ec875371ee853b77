// internal/app/features/employees/routes.go
package employees

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the employee endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList) // mounted under /employees
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
