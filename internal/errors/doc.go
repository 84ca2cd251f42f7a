// Package errors provides coded, actionable errors for panekit.
//
// Every error raised by the framework carries a stable code (e.g. "E100")
// that maps to a registered template with a short message, a longer
// explanation and a documentation link.
//
// # Error Categories
//
//   - registry: service registration conflicts and lookups
//   - peer: synchronization peer dispatch
//   - resource: loading client script payloads
//   - config: configuration file problems
//
// # Usage
//
//	err := errors.New("E100").
//	    WithDetail(`service "Echo.Row" already registered at /a.js`).
//	    WithSuggestion("Give each peer library a unique service id")
//
//	if errors.IsCode(err, "E100") {
//	    // duplicate registration
//	}
package errors
