// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovia-exports/go-backend/internal/config"
	"github.com/agrovia-exports/go-backend/internal/core"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret: "0123456789abcdef0123456789abcdef",
		TokenExpire: 24 * time.Hour,
		Issuer:      "agrovia-api",
	}
}

func testPrincipal() core.Principal {
	return core.Principal{
		UserID:   core.AdminUserID,
		Username: "admin",
		Role:     core.RoleAdmin,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, err := manager.Issue(testPrincipal())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := manager.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, core.AdminUserID, principal.UserID)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, core.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestTokenManager_DefaultExpiry(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenExpire = 0

	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, manager.Expiry())
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	issuedAt := time.Now()
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.Issue(testPrincipal())
	require.NoError(t, err)

	// Still valid just before the 24h mark.
	manager.now = func() time.Time {
		return issuedAt.Add(24*time.Hour - time.Minute)
	}
	_, err = manager.Verify(token)
	require.NoError(t, err)

	// Dead just after it.
	manager.now = func() time.Time {
		return issuedAt.Add(24*time.Hour + time.Minute)
	}
	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	manager, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, err := manager.Issue(testPrincipal())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = manager.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.TokenSecret = "ffffffffffffffffffffffffffffffff"
	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestTokenManager_GarbageToken(t *testing.T) {
	manager, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	_, err = manager.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenSecret = ""

	_, err := NewTokenManager(cfg)
	require.Error(t, err)
}
