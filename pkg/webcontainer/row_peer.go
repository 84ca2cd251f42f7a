package webcontainer

import (
	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

var rowService = service.ForResource("Echo.Row", "resource/js/Render.Row.js", resourceSource)

// RowPeer is the synchronization peer for Rows.
type RowPeer struct {
	AbstractPeer
}

// ComponentType returns app.TypeRow.
func (p *RowPeer) ComponentType() app.ComponentType {
	return app.TypeRow
}

// Services returns the core runtime and the Row renderer.
func (p *RowPeer) Services() []service.Service {
	return []service.Service{CoreService, rowService}
}

// Init adds the Row renderer library to the server message.
func (p *RowPeer) Init(ctx *OutputContext) {
	ctx.ServerMessage().AddLibrary(rowService.ID())
}
