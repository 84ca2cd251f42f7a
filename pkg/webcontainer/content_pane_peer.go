package webcontainer

import (
	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

var contentPaneService = service.ForResource("Echo.ContentPane", "resource/js/Render.ContentPane.js", resourceSource)

// ContentPanePeer is the synchronization peer for ContentPanes.
type ContentPanePeer struct {
	AbstractPeer
}

// ComponentType returns app.TypeContentPane.
func (p *ContentPanePeer) ComponentType() app.ComponentType {
	return app.TypeContentPane
}

// Services returns the core runtime and the ContentPane renderer.
func (p *ContentPanePeer) Services() []service.Service {
	return []service.Service{CoreService, contentPaneService}
}

// Init adds the ContentPane renderer library to the server message.
func (p *ContentPanePeer) Init(ctx *OutputContext) {
	ctx.ServerMessage().AddLibrary(contentPaneService.ID())
}
