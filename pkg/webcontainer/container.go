package webcontainer

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/panekit/panekit/internal/errors"
	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/assets"
	"github.com/panekit/panekit/pkg/service"
)

const tracerName = "panekit/webcontainer"

// Container owns the service registry and peer table of a process and
// exposes them over HTTP.
type Container struct {
	config   *Config
	registry *service.Registry
	peers    *PeerTable
	resolver assets.Resolver
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router
}

// New creates a Container and runs the startup registration phase for
// peers. With no peers, DefaultPeers is used.
func New(config *Config, peers ...ComponentSynchronizePeer) (*Container, error) {
	config = config.withDefaults()
	if len(peers) == 0 {
		peers = DefaultPeers()
	}

	c := &Container{
		config:  config,
		peers:   NewPeerTable(),
		metrics: newMetrics(config.Registry, config.MetricsNamespace),
		tracer:  otel.Tracer(tracerName),
	}
	c.registry = service.NewRegistry(
		service.WithLogger(config.Logger.With("subsystem", "registry")),
		service.WithOnAdd(func(service.Service) { c.metrics.servicesRegistered.Inc() }),
	)

	if err := c.registerPeers(peers); err != nil {
		return nil, err
	}

	if config.Versioned {
		manifest, err := assets.Build(context.Background(), c.registry)
		if err != nil {
			return nil, err
		}
		config.Logger.Debug("service manifest built", "entries", manifest.Len())
		c.resolver = assets.NewResolver(manifest, servicePrefix(config.ServicePath))
	} else {
		c.resolver = assets.NewPassthroughResolver(servicePrefix(config.ServicePath))
	}

	c.upgrader = websocket.Upgrader{CheckOrigin: config.CheckOrigin}
	c.router = c.routes()

	config.Logger.Info("web container started",
		"services", c.registry.Len(),
		"peers", len(peers))
	return c, nil
}

// registerPeers moves every peer from unregistered to registered. The core
// runtime is added first so peer libraries always load after it.
func (c *Container) registerPeers(peers []ComponentSynchronizePeer) error {
	if err := c.registry.Add(CoreService); err != nil {
		return err
	}
	for _, peer := range peers {
		if err := c.peers.Register(peer); err != nil {
			return err
		}
		for _, svc := range peer.Services() {
			if err := c.registry.Add(svc); err != nil {
				return err
			}
		}
		c.config.Logger.Debug("peer registered", "type", peer.ComponentType())
	}
	for _, svc := range c.config.Services {
		if err := c.registry.Add(svc); err != nil {
			return err
		}
	}
	for _, id := range c.config.Libraries {
		if !c.registry.Has(id) {
			return errors.New("E103").
				WithDetailf("library %q is not registered", id).
				WithSuggestion("Add the service to Config.Services")
		}
	}
	return nil
}

func servicePrefix(path string) string {
	return strings.TrimSuffix(path, "/") + "/"
}

// Registry returns the service registry.
func (c *Container) Registry() *service.Registry {
	return c.registry
}

// Peers returns the peer dispatch table.
func (c *Container) Peers() *PeerTable {
	return c.peers
}

// Resolver returns the resolver used for library URLs.
func (c *Container) Resolver() assets.Resolver {
	return c.resolver
}

// Handler returns the container's HTTP handler.
func (c *Container) Handler() http.Handler {
	return c.router
}

// Close tears down the registry.
func (c *Container) Close() error {
	c.registry.Close()
	c.metrics.servicesRegistered.Set(0)
	c.config.Logger.Info("web container closed")
	return nil
}

func (c *Container) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	opts := []service.HandlerOption{
		service.WithTracer(c.tracer),
		service.WithHandlerLogger(c.config.Logger.With("subsystem", "services")),
		service.WithObserver(c.metrics.observeService(c.registry.Has)),
	}
	if c.config.Versioned {
		opts = append(opts, service.WithMaxAge(c.config.CacheMaxAge))
	}
	r.Mount(c.config.ServicePath, service.Handler(c.registry, opts...))

	if c.config.Root != nil {
		r.Get(c.config.SyncPath, c.serveSync)
	}
	if c.config.MetricsPath != "" && c.config.Gatherer != nil {
		r.Handle(c.config.MetricsPath, promhttp.HandlerFor(c.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Synchronize runs one synchronization pass over roots and their
// descendants. The core runtime and configured libraries come first, then
// each peer's library in first-use order. Init is called once per peer per
// pass. A component reached twice, through a cycle or a second parent,
// fails the pass with E106.
func (c *Container) Synchronize(ctx context.Context, roots ...app.Component) (*OutputContext, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "panekit.synchronize",
		trace.WithAttributes(attribute.Int("panekit.roots", len(roots))))
	defer span.End()

	oc := NewOutputContext(ctx, c.resolver)
	msg := oc.ServerMessage()
	msg.AddLibrary(CoreService.ID())
	for _, id := range c.config.Libraries {
		msg.AddLibrary(id)
	}

	initialized := make(map[app.ComponentType]bool)
	var err error
	for _, root := range roots {
		if err = c.synchronizeComponent(oc, root, "", initialized); err != nil {
			break
		}
	}

	c.metrics.observeSync(err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("panekit.components", len(msg.Components())))
	return oc, nil
}

func (c *Container) synchronizeComponent(oc *OutputContext, comp app.Component, parentID string, initialized map[app.ComponentType]bool) error {
	msg := oc.ServerMessage()
	if _, seen := msg.Component(comp.RenderID()); seen {
		return errors.New("E106").
			WithDetailf("%s %s under parent %q", comp.ComponentType(), comp.RenderID(), parentID)
	}

	peer, err := c.peers.Lookup(comp.ComponentType())
	if err != nil {
		return err
	}
	if !initialized[comp.ComponentType()] {
		peer.Init(oc)
		initialized[comp.ComponentType()] = true
	}

	msg.AddComponent(comp, parentID)
	for _, name := range comp.PropertyNames() {
		if v, ok := peer.OutputProperty(oc, comp, name); ok {
			msg.SetProperty(comp.RenderID(), name, v)
		}
	}

	for _, child := range comp.Children() {
		if err := c.synchronizeComponent(oc, child, comp.RenderID(), initialized); err != nil {
			return err
		}
	}
	return nil
}
