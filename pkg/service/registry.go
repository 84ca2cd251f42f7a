package service

import (
	"log/slog"
	"sync"

	"github.com/panekit/panekit/internal/errors"
)

// Registry is the catalog of services keyed by id.
// Writes are serialized; reads may run concurrently.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string
	onAdd    func(Service)
	logger   *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithOnAdd sets a callback run after a new id is added.
// It is not called for no-op re-registrations.
func WithOnAdd(fn func(Service)) RegistryOption {
	return func(r *Registry) {
		r.onAdd = fn
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		services: make(map[string]Service),
		logger:   slog.Default().With("component", "service-registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a service.
//
// Re-adding an id with the same location, content type and source is a
// no-op. A different resource under an existing id returns an E100 error
// and the registry is left unchanged.
func (r *Registry) Add(s Service) error {
	if s == nil || s.ID() == "" || s.Location() == "" {
		return errors.New("E105")
	}

	r.mu.Lock()
	existing, ok := r.services[s.ID()]
	if ok {
		r.mu.Unlock()
		if sameResource(existing, s) {
			return nil
		}
		r.logger.Error("conflicting service registration",
			"id", s.ID(),
			"registered", existing.Location(),
			"rejected", s.Location())
		return errors.New("E100").
			WithDetailf("service %q is already registered from a different resource (%s)", s.ID(), existing.Location()).
			WithSuggestion("Give each client library a unique service id")
	}
	r.services[s.ID()] = s
	r.order = append(r.order, s.ID())
	onAdd := r.onAdd
	r.mu.Unlock()

	r.logger.Debug("service registered", "id", s.ID(), "location", s.Location())
	if onAdd != nil {
		onAdd(s)
	}
	return nil
}

// Get returns the service for id.
func (r *Registry) Get(id string) (Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	return s, ok
}

// Lookup is Get with an E103 error for unknown ids.
func (r *Registry) Lookup(id string) (Service, error) {
	s, ok := r.Get(id)
	if !ok {
		return nil, errors.New("E103").WithDetailf("service %q", id)
	}
	return s, nil
}

// Has returns true if id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.services)
}

// Close removes every service. It is called at shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services = make(map[string]Service)
	r.order = nil
}
