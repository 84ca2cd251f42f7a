package webcontainer

import (
	"embed"

	"github.com/panekit/panekit/pkg/service"
)

//go:embed resource/js/*.js
var resources embed.FS

// resourceSource serves the embedded client libraries.
var resourceSource = service.NewFSSource(resources)

// CoreService is the client runtime every peer library depends on.
// The container registers it before any peer and adds it to every pass.
var CoreService = service.ForResource("Echo.Render", "resource/js/Render.js", resourceSource)
