package assets

import "net/url"

// Resolver provides service URL resolution.
type Resolver interface {
	// Asset resolves a service id to the URL the client loads it from.
	Asset(id string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver that appends the manifest version as a
// "v" query parameter, so long-lived caches are busted on content change.
//
//	resolver := assets.NewResolver(manifest, "/_panekit/services/")
//	resolver.Asset("Echo.Row") // "/_panekit/services/Echo.Row?v=a1b2c3d4"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(id string) string {
	u := r.prefix + url.PathEscape(id)
	if v := r.manifest.Version(id); v != "" {
		u += "?v=" + url.QueryEscape(v)
	}
	return u
}

// passthrough returns ids with only the prefix applied.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver without versioning.
// Use this in development mode where payloads change between requests.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(id string) string {
	return p.prefix + url.PathEscape(id)
}
