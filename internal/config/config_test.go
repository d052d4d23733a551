// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "agrovia",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "swordfish",
		},
		Auth: AuthConfig{
			TokenSecret: "0123456789abcdef0123456789abcdef",
		},
		SMTP: SMTPConfig{
			Host: "smtp.example.com",
			From: "news@agrovia.example",
		},
	}
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, validate(validConfig()))
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing mongo uri", func(c *Config) { c.Mongo.URI = "" }},
		{"missing admin username", func(c *Config) { c.Admin.Username = "" }},
		{"missing admin password", func(c *Config) { c.Admin.Password = "" }},
		{"missing token secret", func(c *Config) { c.Auth.TokenSecret = "" }},
		{"short token secret", func(c *Config) { c.Auth.TokenSecret = "tooshort" }},
		{"missing smtp host", func(c *Config) { c.SMTP.Host = "" }},
		{"missing smtp from", func(c *Config) { c.SMTP.From = "" }},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }},
		{"zero write timeout", func(c *Config) { c.Server.WriteTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, validate(cfg))
		})
	}
}

func TestValidate_WildcardOriginWithCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.CORS.AllowCredentials = true
	cfg.CORS.AllowedOrigins = []string{"*"}

	assert.Error(t, validate(cfg))
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "mongo.uri", envKeyReplacer("MONGODB_URI"))
	assert.Equal(t, "auth.token_secret", envKeyReplacer("AUTH_TOKEN_SECRET"))
	assert.Equal(t, "", envKeyReplacer("PATH"), "unmapped vars are dropped")
}
