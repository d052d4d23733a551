// AngelaMos | 2026
// handler.go

package newsletter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/agrovia-exports/go-backend/internal/core"
)

// SubscriberSource supplies the recipient list, newest first.
type SubscriberSource interface {
	ListEmails(ctx context.Context) ([]string, error)
}

// SendRequest carries the newsletter body. At least one of html and
// text must be present; html becomes the main part, text the plain
// alternative.
type SendRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type Handler struct {
	sender      Sender
	subscribers SubscriberSource
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewHandler(
	sender Sender,
	subscribers SubscriberSource,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sender:      sender,
		subscribers: subscribers,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// RegisterRoutes wires the newsletter endpoints, all admin-only.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/newsletter", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/send", h.Send)
		r.Get("/export", h.Export)
	})
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if req.HTML == "" && req.Text == "" {
		core.BadRequest(w, ErrNoContent.Error())
		return
	}

	emails, err := h.subscribers.ListEmails(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if err := h.sender.Send(r.Context(), req.Subject, req.HTML, req.Text, emails); err != nil {
		switch {
		case errors.Is(err, ErrNoRecipients):
			core.BadRequest(w, "no subscribers to send to")
		case errors.Is(err, ErrNoSubject), errors.Is(err, ErrNoContent):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	h.logger.Info("newsletter sent",
		"recipients", len(emails),
		"subject", req.Subject,
	)

	core.OK(w, map[string]string{
		"message": fmt.Sprintf("newsletter sent to %d subscribers", len(emails)),
	})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	emails, err := h.subscribers.ListEmails(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if len(emails) == 0 {
		core.NotFound(w, "subscribers")
		return
	}

	body, err := marshalEmailsCSV(emails)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	filename := fmt.Sprintf(
		"newsletter-emails-%s.csv",
		time.Now().UTC().Format("2006-01-02"),
	)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename),
	)
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck // streaming to client
}

// marshalEmailsCSV renders a one-column CSV with an Email header, LF
// line endings and standard quoting.
func marshalEmailsCSV(emails []string) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Email"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, email := range emails {
		if err := writer.Write([]string{email}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
