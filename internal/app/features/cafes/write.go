package cafes

import (
	"context"
	"net/http"
	"strings"

	"github.com/cafehubapp/cafehub/internal/app/coordinator"
	"github.com/cafehubapp/cafehub/internal/app/system/respond"
	"github.com/cafehubapp/cafehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// cafeInputFromForm reads the multipart café form: text fields plus an
// optional "image" file part. The file handle, when present, is returned
// open; the caller closes it.
func (h *Handler) cafeInputFromForm(r *http.Request) (coordinator.CafeInput, func(), error) {
	if err := r.ParseMultipartForm(h.MaxLogoBytes); err != nil {
		return coordinator.CafeInput{}, func() {}, err
	}

	in := coordinator.CafeInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Location:    strings.TrimSpace(r.FormValue("location")),
	}

	file, header, err := r.FormFile("image")
	if err == nil && header != nil {
		in.Logo = file
		in.LogoFilename = header.Filename
		return in, func() { file.Close() }, nil
	}
	return in, func() {}, nil
}

// HandleCreate serves POST /cafes (multipart form, logo required).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, closeFile, err := h.cafeInputFromForm(r)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	defer closeFile()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	cafe, err := h.Coord.CreateCafe(ctx, in)
	if err != nil {
		respond.Err(w, h.Log, "cafe create failed", err)
		return
	}
	respond.JSON(w, http.StatusCreated, cafe)
}

// HandleUpdate serves PUT /cafes/{id} (multipart form, logo optional).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	cafeID := chi.URLParam(r, "id")

	in, closeFile, err := h.cafeInputFromForm(r)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	defer closeFile()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	cafe, err := h.Coord.UpdateCafe(ctx, cafeID, in)
	if err != nil {
		respond.Err(w, h.Log, "cafe update failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, cafe)
}
