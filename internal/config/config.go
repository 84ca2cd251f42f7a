package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/panekit/panekit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "panekit.json"

	// DefaultAddress is the default listen address.
	DefaultAddress = ":8080"

	// DefaultServicePath is where script services are mounted.
	DefaultServicePath = "/_panekit/services"

	// DefaultSyncPath is the WebSocket synchronization endpoint.
	DefaultSyncPath = "/_panekit/sync"
)

// Config represents the complete panekit.json configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Services ServicesConfig `json:"services"`
	Sync     SyncConfig     `json:"sync"`
	Metrics  MetricsConfig  `json:"metrics"`
	S3       S3Config       `json:"s3"`
	Logging  LoggingConfig  `json:"logging"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address         string `json:"address,omitempty"`
	ReadTimeout     string `json:"readTimeout,omitempty"`
	WriteTimeout    string `json:"writeTimeout,omitempty"`
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// ServicesConfig configures script service serving.
type ServicesConfig struct {
	Path        string `json:"path,omitempty"`
	Versioned   bool   `json:"versioned,omitempty"`
	CacheMaxAge string `json:"cacheMaxAge,omitempty"`
}

// SyncConfig configures the synchronization endpoint.
type SyncConfig struct {
	Path string `json:"path,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Path disables it.
type MetricsConfig struct {
	Path      string `json:"path,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// S3Config configures libraries hosted in an S3 bucket.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Region   string `json:"region,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// Libraries are registered as services and loaded on every pass.
	Libraries []LibraryConfig `json:"libraries,omitempty"`
}

// LibraryConfig names one S3-hosted library.
type LibraryConfig struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `json:"level,omitempty"`
	Format string `json:"format,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads panekit.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !Exists(dir) {
		cfg := New()
		cfg.applyEnv()
		return cfg, cfg.Validate()
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E121").WithDetail(path).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E121").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "60s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "15s"
	}

	if c.Services.Path == "" {
		c.Services.Path = DefaultServicePath
	}
	if c.Services.CacheMaxAge == "" {
		c.Services.CacheMaxAge = "24h"
	}

	if c.Sync.Path == "" {
		c.Sync.Path = DefaultSyncPath
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "panekit"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// applyEnv applies environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("PANEKIT_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("PANEKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	durations := []struct {
		field string
		value string
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"services.cacheMaxAge", c.Services.CacheMaxAge},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(d.value)
		if err != nil || v <= 0 {
			return errors.New("E120").
				WithDetailf("%s must be a positive duration, got %q", d.field, d.value)
		}
	}

	for _, p := range []struct{ field, value string }{
		{"services.path", c.Services.Path},
		{"sync.path", c.Sync.Path},
	} {
		if !strings.HasPrefix(p.value, "/") {
			return errors.New("E120").WithDetailf("%s must start with /, got %q", p.field, p.value)
		}
	}
	if c.Metrics.Path != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E120").WithDetailf("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	if len(c.S3.Libraries) > 0 && c.S3.Bucket == "" {
		return errors.New("E120").
			WithDetail("s3.libraries requires s3.bucket").
			WithSuggestion("Set s3.bucket or remove s3.libraries")
	}
	for _, lib := range c.S3.Libraries {
		if lib.ID == "" || lib.Location == "" {
			return errors.New("E120").WithDetail("every s3 library needs an id and a location")
		}
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return errors.New("E120").WithDetailf("logging.level %q", c.Logging.Level).Wrap(err)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return errors.New("E120").WithDetailf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// ReadTimeout returns server.readTimeout. The value is validated on load.
func (c *Config) ReadTimeout() time.Duration {
	return mustDuration(c.Server.ReadTimeout)
}

// WriteTimeout returns server.writeTimeout.
func (c *Config) WriteTimeout() time.Duration {
	return mustDuration(c.Server.WriteTimeout)
}

// ShutdownTimeout returns server.shutdownTimeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return mustDuration(c.Server.ShutdownTimeout)
}

// CacheMaxAge returns services.cacheMaxAge.
func (c *Config) CacheMaxAge() time.Duration {
	return mustDuration(c.Services.CacheMaxAge)
}

// NewLogger builds a slog.Logger from the logging section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
