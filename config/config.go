package config

import (
	"os"
	"strings"
	"time"

	"servicehub/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPasswordMinLength  = 6
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RateLimit throttles the credential endpoints per client IP
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Metrics exposes Prometheus collectors on the API server
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for order receipts
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the receipt worker binary
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// WorkerConfig defines the receipt worker listener
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// WorkerPort returns the receipt worker port, falling back to the API port.
func (c *Config) WorkerPort() int {
	if c.Worker != nil && c.Worker.Port > 0 {
		return c.Worker.Port
	}

	return c.HTTP.Port
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	PasswordMinLength int           `json:"passwordMinLength" yaml:"passwordMinLength"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines the token bucket applied per client
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	IdleTTL           time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience expected in push OIDC tokens; defaults to the push URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the email claim of push tokens
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// New loads config.yaml from the first config directory found and applies
// defaults. It fails fast on settings the binaries cannot start without.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Environ())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	cfg.Auth.PasswordMinLength = orDefault(cfg.Auth.PasswordMinLength, defaultPasswordMinLength)
	cfg.Auth.AccessTokenTTL = orDefault(cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = constants.PubSubProviderLocal
	}
}

func orDefault[T int | time.Duration](v, fallback T) T {
	if v <= 0 {
		return fallback
	}

	return v
}

// Validate reports settings that would only fail later at request time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be set")
	}

	switch c.PubSub.Provider {
	case constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
	default:
		return errors.Errorf("unknown pubsub provider %q", c.PubSub.Provider)
	}

	return nil
}
