// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/agrovia-exports/go-backend/internal/core"
	"github.com/agrovia-exports/go-backend/internal/middleware"
)

type Handler struct {
	service    *Service
	validator  *validator.Validate
	cookieName string
	secure     bool
}

func NewHandler(service *Service, cookieName string, secure bool) *Handler {
	return &Handler{
		service:    service,
		validator:  validator.New(validator.WithRequiredStructEnabled()),
		cookieName: cookieName,
		secure:     secure,
	}
}

// RegisterRoutes wires the auth endpoints. Login carries its own rate
// limit on top of the global one; logout is unauthenticated since
// clearing a cookie needs no proof of identity.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, loginLimiter func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if loginLimiter != nil {
				r.Use(loginLimiter)
			}
			r.Post("/login", h.Login)
		})

		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/verify", h.Verify)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, principal, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid username or password"),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.service.TokenManager().Expiry().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	core.OK(w, LoginResponse{
		Success: true,
		User: UserResponse{
			Username: principal.Username,
			Role:     principal.Role,
		},
	})
}

// Verify runs behind the authenticator, so reaching it means the token
// already checked out; it only echoes the principal back.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	if principal == nil {
		core.Unauthorized(w, "")
		return
	}

	core.OK(w, VerifyResponse{
		Valid: true,
		User: UserResponse{
			Username: principal.Username,
			Role:     principal.Role,
		},
	})
}

// Logout clears the auth cookie. Tokens are stateless, so this is the
// only form of client-side revocation available.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	core.OK(w, map[string]string{"message": "logged out"})
}
