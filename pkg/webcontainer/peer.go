package webcontainer

import (
	"fmt"

	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

// ComponentSynchronizePeer synchronizes one component type with its client
// renderer. Peers are stateless; they act only on the components and
// contexts passed to them.
type ComponentSynchronizePeer interface {
	// ComponentType returns the component type this peer services.
	// It must return the same value on every call.
	ComponentType() app.ComponentType

	// Services returns the script services the peer needs registered.
	Services() []service.Service

	// Init adds the peer's library to ctx. It mutates only ctx.
	Init(ctx *OutputContext)

	// OutputProperty returns the client form of a component property.
	// ok is false when the property should not be sent.
	OutputProperty(ctx *OutputContext, c app.Component, name string) (value any, ok bool)
}

// AbstractPeer provides the default property output. Concrete peers embed it.
type AbstractPeer struct{}

// OutputProperty sends set properties, using the String form of values
// that have one.
func (AbstractPeer) OutputProperty(_ *OutputContext, c app.Component, name string) (any, bool) {
	v := c.Property(name)
	if v == nil {
		return nil, false
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return v, true
}

// DefaultPeers returns the peers for the built-in components.
func DefaultPeers() []ComponentSynchronizePeer {
	return []ComponentSynchronizePeer{
		&ContentPanePeer{},
		&RowPeer{},
		&ColumnPeer{},
	}
}
