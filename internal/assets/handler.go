// AngelaMos | 2026
// handler.go

package assets

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrovia-exports/go-backend/internal/core"
)

type Handler struct {
	store    *Store
	maxBytes int64
}

func NewHandler(store *Store, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{
		store:    store,
		maxBytes: maxBytes,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/upload", h.Upload)
		r.Delete("/delete-image", h.DeleteImage)
	})
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		core.BadRequest(w, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		core.BadRequest(w, "file field is required")
		return
	}
	defer file.Close() //nolint:errcheck // read-only handle

	path, err := h.store.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unsupported file type")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]string{"path": path})
}

// DeleteImage removes an uploaded file by its public path. Idempotent:
// deleting a missing file succeeds with a distinguishing message.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		core.BadRequest(w, "path query parameter is required")
		return
	}

	removed, err := h.store.Delete(path)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "path must be under "+PublicPrefix)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	message := "image deleted"
	if !removed {
		message = "image did not exist"
	}

	slog.Info("asset delete",
		"path", path,
		"removed", removed,
	)

	core.OK(w, map[string]string{"message": message})
}
