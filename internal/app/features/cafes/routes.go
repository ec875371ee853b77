// internal/app/features/cafes/routes.go
package cafes

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the café endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)           // mounted under /cafes
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Get("/logo/{id}", h.HandleLogo)
	return r
}
