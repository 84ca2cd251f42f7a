package webcontainer

import (
	"github.com/panekit/panekit/pkg/app"
)

// ComponentUpdate is the synchronized state of one component.
type ComponentUpdate struct {
	RenderID   string            `json:"id"`
	Type       app.ComponentType `json:"type"`
	Parent     string            `json:"parent,omitempty"`
	Properties map[string]any    `json:"properties,omitempty"`
}

// ServerMessage collects the output of one synchronization pass.
// It is owned by a single OutputContext and is not safe for concurrent use.
type ServerMessage struct {
	libraries  []string
	components []*ComponentUpdate
	index      map[string]*ComponentUpdate
}

func newServerMessage() *ServerMessage {
	return &ServerMessage{
		index: make(map[string]*ComponentUpdate),
	}
}

// AddLibrary appends a service id to the libraries the client must load.
// Duplicates are kept; they are collapsed when the message is encoded.
func (m *ServerMessage) AddLibrary(serviceID string) {
	m.libraries = append(m.libraries, serviceID)
}

// Libraries returns the added service ids in insertion order.
func (m *ServerMessage) Libraries() []string {
	out := make([]string, len(m.libraries))
	copy(out, m.libraries)
	return out
}

// AddComponent starts an update for c. Adding the same render id twice
// returns the existing update.
func (m *ServerMessage) AddComponent(c app.Component, parentID string) *ComponentUpdate {
	if u, ok := m.index[c.RenderID()]; ok {
		return u
	}
	u := &ComponentUpdate{
		RenderID: c.RenderID(),
		Type:     c.ComponentType(),
		Parent:   parentID,
	}
	m.components = append(m.components, u)
	m.index[u.RenderID] = u
	return u
}

// SetProperty records a property value for an added component.
// It returns false if renderID was never added.
func (m *ServerMessage) SetProperty(renderID, name string, value any) bool {
	u, ok := m.index[renderID]
	if !ok {
		return false
	}
	if u.Properties == nil {
		u.Properties = make(map[string]any)
	}
	u.Properties[name] = value
	return true
}

// Component returns the update for renderID.
func (m *ServerMessage) Component(renderID string) (*ComponentUpdate, bool) {
	u, ok := m.index[renderID]
	return u, ok
}

// Components returns the updates in the order components were added.
func (m *ServerMessage) Components() []*ComponentUpdate {
	out := make([]*ComponentUpdate, len(m.components))
	copy(out, m.components)
	return out
}
