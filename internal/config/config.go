// AngelaMos | 2026
// config.go

package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Redis     RedisConfig     `koanf:"redis"`
	Admin     AdminConfig     `koanf:"admin"`
	Auth      AuthConfig      `koanf:"auth"`
	SMTP      SMTPConfig      `koanf:"smtp"`
	Uploads   UploadsConfig   `koanf:"uploads"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	MaxPoolSize    uint64        `koanf:"max_pool_size"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

// AdminConfig holds the single privileged identity. There is no user
// table; the one admin account is configured out-of-band. Password may
// be plaintext or an argon2id encoded hash ($argon2id$...).
type AdminConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type AuthConfig struct {
	TokenSecret string        `koanf:"token_secret"`
	TokenExpire time.Duration `koanf:"token_expire"`
	Issuer      string        `koanf:"issuer"`
	CookieName  string        `koanf:"cookie_name"`
}

type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
}

type UploadsConfig struct {
	Dir          string `koanf:"dir"`
	MaxSizeBytes int64  `koanf:"max_size_bytes"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		k := koanf.New(".")

		if err := loadDefaults(k); err != nil {
			loadErr = fmt.Errorf("load defaults: %w", err)
			return
		}

		// The config file is optional; environment variables alone can
		// fully configure the service.
		if configPath != "" {
			if _, err := os.Stat(configPath); err == nil {
				if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
					loadErr = fmt.Errorf("load config file: %w", err)
					return
				}
			}
		}

		if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
			loadErr = fmt.Errorf("load env vars: %w", err)
			return
		}

		cfg = &Config{}
		if err := k.Unmarshal("", cfg); err != nil {
			loadErr = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		if err := validate(cfg); err != nil {
			loadErr = fmt.Errorf("validate config: %w", err)
			return
		}
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Agrovia Exports API",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"mongo.database":        "agrovia",
		"mongo.connect_timeout": "10s",
		"mongo.max_pool_size":   50,

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"auth.token_expire": "24h",
		"auth.issuer":       "agrovia-api",
		"auth.cookie_name":  "auth-token",

		"smtp.port": 587,

		"uploads.dir":            "uploads",
		"uploads.max_size_bytes": int64(10 << 20),

		"rate_limit.requests": 30,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    10,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PATCH",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "agrovia-api",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"MONGODB_URI":         "mongo.uri",
	"MONGODB_DATABASE":    "mongo.database",
	"REDIS_URL":           "redis.url",
	"ENVIRONMENT":         "app.environment",
	"HOST":                "server.host",
	"PORT":                "server.port",
	"LOG_LEVEL":           "log.level",
	"LOG_FORMAT":          "log.format",
	"ADMIN_USERNAME":      "admin.username",
	"ADMIN_PASSWORD":      "admin.password",
	"AUTH_TOKEN_SECRET":   "auth.token_secret",
	"AUTH_TOKEN_EXPIRE":   "auth.token_expire",
	"AUTH_ISSUER":         "auth.issuer",
	"SMTP_HOST":           "smtp.host",
	"SMTP_PORT":           "smtp.port",
	"SMTP_USERNAME":       "smtp.username",
	"SMTP_PASSWORD":       "smtp.password",
	"SMTP_FROM":           "smtp.from",
	"UPLOAD_DIR":          "uploads.dir",
	"UPLOAD_MAX_BYTES":    "uploads.max_size_bytes",
	"RATE_LIMIT_REQUESTS": "rate_limit.requests",
	"RATE_LIMIT_WINDOW":   "rate_limit.window",
	"RATE_LIMIT_BURST":    "rate_limit.burst",
	"OTEL_ENDPOINT":       "otel.endpoint",
	"OTEL_SERVICE_NAME":   "otel.service_name",
	"OTEL_ENABLED":        "otel.enabled",
	"OTEL_INSECURE":       "otel.insecure",
	"OTEL_SAMPLE_RATE":    "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}

	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET is required")
	}

	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be at least 32 bytes")
	}

	// The mailer refuses to construct without a full SMTP block; missing
	// mail configuration is a startup failure, never a silent no-op.
	if c.SMTP.Host == "" || c.SMTP.From == "" {
		return fmt.Errorf("SMTP_HOST and SMTP_FROM are required")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
