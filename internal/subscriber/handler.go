// AngelaMos | 2026
// handler.go

package subscriber

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

// RegisterRoutes wires the subscriber endpoints. Signup is public and
// rate limited; the count is public so the site can show list size.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	signupLimiter func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.Count)

		r.Group(func(r chi.Router) {
			if signupLimiter != nil {
				r.Use(signupLimiter)
			}
			r.Post("/", h.Subscribe)
		})
	})
}

func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CountResponse{Count: count})
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	// Normalize before validating so case and whitespace variants of a
	// valid address are accepted and collapse to one subscriber.
	req.Email = NormalizeEmail(req.Email)

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	sub, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			core.Conflict(w, "already subscribed")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, sub)
}
