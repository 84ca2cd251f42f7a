// Package service holds the client script resources a web container serves.
//
// A Service is an immutable named resource: a stable id (such as
// "Echo.ContentPane"), the location of its payload, and the source that
// payload is read from. Services live in a Registry, the process-wide
// catalog that peers register into at startup and that the HTTP layer
// reads from when a browser requests a library.
//
//	reg := service.NewRegistry()
//	svc := service.ForResource("Echo.Row", "resource/js/Render.Row.js", service.NewFSSource(resources))
//	if err := reg.Add(svc); err != nil {
//	    log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Mount("/_panekit/services", service.Handler(reg))
//
// # Duplicate registration
//
// Adding a service whose id is already present is a no-op when the
// location and content type match, so every peer may list shared
// libraries. A different resource under an existing id is rejected with
// error code E100 and the original entry is kept.
package service
