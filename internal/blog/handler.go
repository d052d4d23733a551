// AngelaMos | 2026
// handler.go

package blog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/agrovia-exports/go-backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{postID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Patch("/{postID}", h.Update)
			r.Delete("/{postID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBlogPostResponseList(posts))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.service.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBlogPostResponse(post))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	post, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToBlogPostResponse(post))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	post, err := h.service.Update(r.Context(), postID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBlogPostResponse(post))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	if err := h.service.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "blog post deleted"})
}
