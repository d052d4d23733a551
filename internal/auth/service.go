// AngelaMos | 2026
// service.go

package auth

import (
	"errors"

	"github.com/agrovia-exports/go-backend/internal/config"
	"github.com/agrovia-exports/go-backend/internal/core"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service exchanges the configured admin credentials for a signed
// token. There is exactly one administrative principal in this system;
// nothing outside this package can mint a valid one.
type Service struct {
	tokens *TokenManager
	admin  config.AdminConfig
}

func NewService(tokens *TokenManager, admin config.AdminConfig) *Service {
	return &Service{
		tokens: tokens,
		admin:  admin,
	}
}

// Login returns a signed token and the principal it encodes. Both the
// username and password comparisons run regardless of which one fails,
// and the caller gets the same generic error either way, so responses
// do not distinguish "bad username" from "bad password".
func (s *Service) Login(username, password string) (string, core.Principal, error) {
	usernameOK := core.ConstantTimeEquals(username, s.admin.Username)

	passwordOK, err := core.VerifyCredential(password, s.admin.Password)
	if err != nil {
		return "", core.Principal{}, err
	}

	if !usernameOK || !passwordOK {
		return "", core.Principal{}, ErrInvalidCredentials
	}

	principal := core.Principal{
		UserID:   core.AdminUserID,
		Username: s.admin.Username,
		Role:     core.RoleAdmin,
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		return "", core.Principal{}, err
	}

	return token, principal, nil
}

func (s *Service) Verify(token string) (*core.Principal, error) {
	return s.tokens.Verify(token)
}

func (s *Service) TokenManager() *TokenManager {
	return s.tokens
}
