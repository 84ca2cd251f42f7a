package webcontainer

import (
	"sort"
	"sync"

	"github.com/panekit/panekit/internal/errors"
	"github.com/panekit/panekit/pkg/app"
)

// PeerTable maps component types to their peers.
type PeerTable struct {
	mu    sync.RWMutex
	peers map[app.ComponentType]ComponentSynchronizePeer
}

// NewPeerTable creates an empty table.
func NewPeerTable() *PeerTable {
	return &PeerTable{
		peers: make(map[app.ComponentType]ComponentSynchronizePeer),
	}
}

// Register adds a peer. A second peer for the same type is rejected with E102.
func (t *PeerTable) Register(peer ComponentSynchronizePeer) error {
	typ := peer.ComponentType()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.peers[typ]; ok {
		return errors.New("E102").WithDetailf("component type %q", typ)
	}
	t.peers[typ] = peer
	return nil
}

// Lookup returns the peer for a component type, or E101.
func (t *PeerTable) Lookup(typ app.ComponentType) (ComponentSynchronizePeer, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	peer, ok := t.peers[typ]
	if !ok {
		return nil, errors.New("E101").WithDetailf("component type %q", typ)
	}
	return peer, nil
}

// Types returns the registered component types in sorted order.
func (t *PeerTable) Types() []app.ComponentType {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]app.ComponentType, 0, len(t.peers))
	for typ := range t.peers {
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
