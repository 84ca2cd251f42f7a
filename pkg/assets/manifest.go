// Package assets resolves service ids to the URLs clients load them from.
//
// A Manifest maps each service id to a short content version. Versions are
// computed from the registered payloads at startup (see Build).
//
// A Resolver turns an id into the URL written into the server message:
//
//	manifest, _ := assets.Build(ctx, registry)
//	resolver := assets.NewResolver(manifest, "/_panekit/services/")
//	resolver.Asset("Echo.ContentPane") // "/_panekit/services/Echo.ContentPane?v=e5f6a7b8"
package assets

import (
	"context"
	"sync"

	"github.com/panekit/panekit/pkg/service"
)

// Manifest holds the mapping from service ids to content versions.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Build loads every registered service and records its content version.
// It fails on the first service whose payload cannot be loaded.
func Build(ctx context.Context, reg *service.Registry) (*Manifest, error) {
	m := NewManifest()
	for _, id := range reg.IDs() {
		svc, ok := reg.Get(id)
		if !ok {
			continue
		}
		data, err := svc.Load(ctx)
		if err != nil {
			return nil, err
		}
		m.Set(id, service.ContentVersion(data))
	}
	return m, nil
}

// Version returns the content version for id, or "" if unknown.
func (m *Manifest) Version(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.entries[id]
}

// Set adds or updates an entry in the manifest.
func (m *Manifest) Set(id, version string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = version
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
