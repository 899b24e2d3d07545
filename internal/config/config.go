package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultConfigPath   = "configs/hotel.yaml"
	defaultStoreDriver  = DriverJSON
	defaultJSONPath     = "bookings.json"
	defaultSQLitePath   = "bookings.db"
	defaultAutosave     = "false"
	defaultAPIAddr      = "127.0.0.1:8080"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "12h"
	defaultMetrics      = "true"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

type Config struct {
	AppEnv string      `yaml:"app_env"`
	Store  StoreConfig `yaml:"store"`
	API    APIConfig   `yaml:"api"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
	Autosave    bool   `yaml:"autosave"`
}

type APIConfig struct {
	Addr                 string        `yaml:"addr"`
	JWTSecret            string        `yaml:"jwt_secret"`
	JWTAccessTTL         time.Duration `yaml:"jwt_access_ttl"`
	OperatorPasswordHash string        `yaml:"operator_password_hash"`
	CORSAllowedOrigins   []string      `yaml:"cors_allowed_origins"`
	MetricsEnabled       bool          `yaml:"metrics_enabled"`
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file and the process environment, later sources winning.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := defaults()
	if err != nil {
		return nil, err
	}

	path, required := configPath()
	if err := cfg.mergeYAML(path, required); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillStoreDefaults()

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s store_driver=%s store=%s autosave=%t",
		cfg.AppEnv, cfg.Store.Driver, cfg.StoreTarget(), cfg.Store.Autosave)

	return cfg, nil
}

func defaults() (*Config, error) {
	ttl, err := time.ParseDuration(defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	return &Config{
		AppEnv: "dev",
		Store: StoreConfig{
			Driver:   defaultStoreDriver,
			Autosave: parseBool(defaultAutosave),
		},
		API: APIConfig{
			Addr:               defaultAPIAddr,
			JWTSecret:          defaultJWTSecret,
			JWTAccessTTL:       ttl,
			CORSAllowedOrigins: append([]string(nil), defaultCORSOrigins...),
			MetricsEnabled:     parseBool(defaultMetrics),
		},
	}, nil
}

func configPath() (string, bool) {
	if p := strings.TrimSpace(os.Getenv("HOTEL_CONFIG")); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}

func (cfg *Config) mergeYAML(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) applyEnv() error {
	if v := envValue("APP_ENV", "ENV"); v != "" {
		cfg.AppEnv = v
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if v := envValue("HOTEL_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	if v := envValue("HOTEL_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := envValue("HOTEL_DATABASE_URL", "DATABASE_URL"); v != "" {
		cfg.Store.DatabaseURL = v
	}
	if v := envValue("HOTEL_AUTOSAVE"); v != "" {
		cfg.Store.Autosave = parseBool(v)
	}

	if v := envValue("HOTEL_API_ADDR"); v != "" {
		cfg.API.Addr = v
	}
	if v := envValue("JWT_SECRET"); v != "" {
		cfg.API.JWTSecret = v
	}
	if v := envValue("JWT_ACCESS_TTL"); v != "" {
		d, err := parseDuration("JWT_ACCESS_TTL", v)
		if err != nil {
			return err
		}
		cfg.API.JWTAccessTTL = d
	}
	if v := envValue("OPERATOR_PASSWORD_HASH"); v != "" {
		cfg.API.OperatorPasswordHash = v
	}
	if v := envValue("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.API.CORSAllowedOrigins = splitList(v)
	}
	if v := envValue("METRICS_ENABLED"); v != "" {
		cfg.API.MetricsEnabled = parseBool(v)
	}
	return nil
}

func (cfg *Config) fillStoreDefaults() {
	if cfg.Store.Path != "" {
		return
	}
	switch cfg.Store.Driver {
	case DriverJSON:
		cfg.Store.Path = defaultJSONPath
	case DriverSQLite:
		cfg.Store.Path = defaultSQLitePath
	}
}

// StoreTarget is the file path or DSN the configured driver writes to.
func (cfg *Config) StoreTarget() string {
	if cfg.Store.Driver == DriverPostgres {
		return cfg.Store.DatabaseURL
	}
	return cfg.Store.Path
}

func (cfg *Config) IsProdLike() bool {
	return isProdLike(cfg.AppEnv)
}

func validateConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case DriverJSON, DriverSQLite:
		if strings.TrimSpace(cfg.Store.Path) == "" {
			return fmt.Errorf("HOTEL_STORE_PATH must not be empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(cfg.Store.DatabaseURL) == "" {
			return fmt.Errorf("HOTEL_DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("HOTEL_STORE_DRIVER must be one of: json, sqlite, postgres")
	}
	if cfg.API.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	return nil
}

// ValidateAPI adds the checks that only matter when the HTTP desk runs.
func (cfg *Config) ValidateAPI() error {
	if strings.TrimSpace(cfg.API.Addr) == "" {
		return fmt.Errorf("HOTEL_API_ADDR must not be empty")
	}
	if strings.TrimSpace(cfg.API.OperatorPasswordHash) == "" {
		return fmt.Errorf("OPERATOR_PASSWORD_HASH must be set to run the HTTP desk")
	}
	if cfg.IsProdLike() && isEmptyOrDefault(cfg.API.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDuration(name, value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBool(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// envValue returns the first non-empty variable among names.
func envValue(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
