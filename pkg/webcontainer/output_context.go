package webcontainer

import (
	"context"
	"encoding/json"

	"github.com/panekit/panekit/pkg/assets"
)

// OutputContext is the mutable state of one render/synchronization pass.
type OutputContext struct {
	ctx      context.Context
	resolver assets.Resolver
	message  *ServerMessage
}

// NewOutputContext creates an output context. A nil resolver emits bare ids.
func NewOutputContext(ctx context.Context, resolver assets.Resolver) *OutputContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if resolver == nil {
		resolver = assets.NewPassthroughResolver("")
	}
	return &OutputContext{
		ctx:      ctx,
		resolver: resolver,
		message:  newServerMessage(),
	}
}

// Context returns the context of the pass.
func (c *OutputContext) Context() context.Context {
	return c.ctx
}

// ServerMessage returns the message being built for the client.
func (c *OutputContext) ServerMessage() *ServerMessage {
	return c.message
}

// libraryRef is the encoded form of a library reference.
type libraryRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type wireMessage struct {
	Libraries  []libraryRef       `json:"libraries"`
	Components []*ComponentUpdate `json:"components"`
}

// Encode returns the JSON form of the server message. Library ids are
// collapsed to their first occurrence and resolved to URLs.
func (c *OutputContext) Encode() ([]byte, error) {
	libs := c.message.Libraries()
	seen := make(map[string]bool, len(libs))
	refs := make([]libraryRef, 0, len(libs))
	for _, id := range libs {
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, libraryRef{ID: id, URL: c.resolver.Asset(id)})
	}

	return json.Marshal(wireMessage{
		Libraries:  refs,
		Components: c.message.Components(),
	})
}
