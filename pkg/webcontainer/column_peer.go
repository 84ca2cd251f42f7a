package webcontainer

import (
	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

var columnService = service.ForResource("Echo.Column", "resource/js/Render.Column.js", resourceSource)

// ColumnPeer is the synchronization peer for Columns.
type ColumnPeer struct {
	AbstractPeer
}

// ComponentType returns app.TypeColumn.
func (p *ColumnPeer) ComponentType() app.ComponentType {
	return app.TypeColumn
}

// Services returns the core runtime and the Column renderer.
func (p *ColumnPeer) Services() []service.Service {
	return []service.Service{CoreService, columnService}
}

// Init adds the Column renderer library to the server message.
func (p *ColumnPeer) Init(ctx *OutputContext) {
	ctx.ServerMessage().AddLibrary(columnService.ID())
}
