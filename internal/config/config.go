package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultPort             = 8080
	DefaultBackendTimeout   = 15
	DefaultIdleTTLMinutes   = 30
	DefaultTokenCookie      = "token"
	DefaultConfirmations    = "purchase_confirmations"
	DefaultConfigFile       = "painel.toml"
	defaultAWSRegion        = "us-east-1"
	defaultLocalCredentials = "local"
)

// AppConfig is the service configuration: painel.toml first, then env overrides.
type AppConfig struct {
	Server        ServerConfig        `toml:"server"`
	Backend       BackendConfig       `toml:"backend"`
	Views         ViewsConfig         `toml:"views"`
	Confirmations ConfirmationsConfig `toml:"confirmations"`
	AWS           AWSConfig           `toml:"aws"`
}

type ServerConfig struct {
	Port        int    `toml:"port"`
	TokenCookie string `toml:"token_cookie"`
}

type BackendConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type ViewsConfig struct {
	IdleTTLMinutes int `toml:"idle_ttl_minutes"`
}

// ConfirmationsConfig controls the DynamoDB purchase confirmation journal.
type ConfirmationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Table   string `toml:"table"`
}

type AWSConfig struct {
	Region          string `toml:"region"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	Endpoint        string `toml:"dynamodb_endpoint"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server:        ServerConfig{Port: DefaultPort, TokenCookie: DefaultTokenCookie},
		Backend:       BackendConfig{TimeoutSeconds: DefaultBackendTimeout},
		Views:         ViewsConfig{IdleTTLMinutes: DefaultIdleTTLMinutes},
		Confirmations: ConfirmationsConfig{Enabled: true, Table: DefaultConfirmations},
		AWS: AWSConfig{
			Region:          defaultAWSRegion,
			AccessKeyID:     defaultLocalCredentials,
			SecretAccessKey: defaultLocalCredentials,
		},
	}
}

func (c *AppConfig) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func (c *AppConfig) ViewIdleTTL() time.Duration {
	return time.Duration(c.Views.IdleTTLMinutes) * time.Minute
}

// Load reads the file named by PAINEL_CONFIG (default painel.toml) and applies
// environment overrides. A missing file is not an error.
func Load() (*AppConfig, error) {
	return LoadFile(getenvDefault("PAINEL_CONFIG", DefaultConfigFile))
}

func LoadFile(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.TokenCookie, "AUTH_TOKEN_COOKIE")
	setString(&cfg.Backend.BaseURL, "ERP_API_BASE_URL")
	setInt(&cfg.Backend.TimeoutSeconds, "ERP_API_TIMEOUT_SECONDS")
	setInt(&cfg.Views.IdleTTLMinutes, "VIEWS_IDLE_TTL_MINUTES")
	setString(&cfg.Confirmations.Table, "CONFIRMATIONS_TABLE")
	setBool(&cfg.Confirmations.Enabled, "CONFIRMATIONS_JOURNAL_ENABLED")
	setString(&cfg.AWS.Region, "AWS_REGION")
	setString(&cfg.AWS.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.AWS.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.AWS.Endpoint, "DYNAMODB_ENDPOINT")
}

// normalize puts defaults back where a file or env value was unusable.
func normalize(cfg *AppConfig) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = DefaultPort
	}
	if strings.TrimSpace(cfg.Server.TokenCookie) == "" {
		cfg.Server.TokenCookie = DefaultTokenCookie
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = DefaultBackendTimeout
	}
	if cfg.Views.IdleTTLMinutes <= 0 {
		cfg.Views.IdleTTLMinutes = DefaultIdleTTLMinutes
	}
	if strings.TrimSpace(cfg.Confirmations.Table) == "" {
		cfg.Confirmations.Table = DefaultConfirmations
	}
	cfg.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}
