// Package webcontainer synchronizes server-side components with the
// browser client.
//
// Every component type has a ComponentSynchronizePeer. A peer declares
// the component type it services, lists the client script services that
// render that type, and on Init adds its library to the output context of
// the current pass.
//
// # Startup
//
// New runs an explicit registration phase: the core runtime service and
// every peer's services are added to the container's service registry, and
// each peer is entered into the dispatch table, in the order the peers are
// given. A conflicting service id is fatal and New returns the error.
//
//	c, err := webcontainer.New(&webcontainer.Config{
//	    Root: func() []app.Component { return []app.Component{pane} },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", c.Handler())
//
// # Synchronization
//
// Synchronize walks the given components, dispatches each to its peer by
// component type, calls Init once per peer and writes the component's
// properties into the server message.
package webcontainer
