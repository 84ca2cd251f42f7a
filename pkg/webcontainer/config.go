package webcontainer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

// Config configures a Container.
type Config struct {
	// ServicePath is where script services are served.
	// Default: "/_panekit/services".
	ServicePath string

	// SyncPath is the WebSocket synchronization endpoint.
	// Only mounted when Root is set. Default: "/_panekit/sync".
	SyncPath string

	// MetricsPath exposes Prometheus metrics. Empty disables the endpoint.
	MetricsPath string

	// MetricsNamespace prefixes every metric. Default: "panekit".
	MetricsNamespace string

	// Registry receives the container's collectors.
	// Default: a private prometheus.Registry.
	Registry prometheus.Registerer

	// Gatherer backs MetricsPath. Defaults to Registry when it is a Gatherer.
	Gatherer prometheus.Gatherer

	// Versioned appends content versions to library URLs and lets clients
	// cache services for CacheMaxAge.
	Versioned bool

	// CacheMaxAge is the Cache-Control max-age for versioned services.
	// Default: 24 hours.
	CacheMaxAge time.Duration

	// Services are extra services registered after the peers', such as
	// libraries hosted in S3.
	Services []service.Service

	// Libraries are ids of services added to every synchronization pass
	// after the core runtime. Each must be registered.
	Libraries []string

	// Root returns the components to synchronize for a WebSocket client.
	Root func() []app.Component

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: same-origin only.
	CheckOrigin func(r *http.Request) bool

	// ReadTimeout bounds the wait for a client frame. Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout bounds a server message write. Default: 10 seconds.
	WriteTimeout time.Duration

	// Logger is the container logger.
	// Default: slog.Default().With("component", "webcontainer").
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ServicePath:      "/_panekit/services",
		SyncPath:         "/_panekit/sync",
		MetricsNamespace: "panekit",
		CacheMaxAge:      24 * time.Hour,
		ReadTimeout:      60 * time.Second,
		WriteTimeout:     10 * time.Second,
	}
}

// withDefaults returns a copy of c with unset fields filled in.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		c = defaults
	}
	out := *c
	if out.ServicePath == "" {
		out.ServicePath = defaults.ServicePath
	}
	if out.SyncPath == "" {
		out.SyncPath = defaults.SyncPath
	}
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = defaults.MetricsNamespace
	}
	if out.CacheMaxAge == 0 {
		out.CacheMaxAge = defaults.CacheMaxAge
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = defaults.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.Registry == nil {
		reg := prometheus.NewRegistry()
		out.Registry = reg
		if out.Gatherer == nil {
			out.Gatherer = reg
		}
	}
	if out.Gatherer == nil {
		if g, ok := out.Registry.(prometheus.Gatherer); ok {
			out.Gatherer = g
		}
	}
	if out.Logger == nil {
		out.Logger = slog.Default().With("component", "webcontainer")
	}
	return &out
}
