// AngelaMos | 2026
// service.go

package subscriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agrovia-exports/go-backend/internal/core"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("already subscribed")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// NormalizeEmail lowercases and trims the address so that case and
// whitespace variants of the same mailbox collapse to one subscriber.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Subscribe(
	ctx context.Context,
	req SubscribeRequest,
) (*SubscriberResponse, error) {
	email := NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	sub := &Subscriber{Email: email}
	if err := s.repo.Create(ctx, sub); err != nil {
		// The unique index catches races the pre-check missed.
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	s.logger.Info("new subscriber", "email", email)

	resp := ToSubscriberResponse(sub)
	return &resp, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ListEmails returns every subscriber address, newest first.
func (s *Service) ListEmails(ctx context.Context) ([]string, error) {
	subscribers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscriber emails: %w", err)
	}

	emails := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		emails = append(emails, sub.Email)
	}

	return emails, nil
}
