package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Registry and Peer Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryRegistry,
		Message:  "Duplicate service",
		Detail:   "A service with this id is already registered with a different resource. A service id must map to one resource for the life of the process.",
		DocURL:   "https://panekit.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryPeer,
		Message:  "Peer not found",
		Detail:   "No synchronization peer is registered for the component type.",
		DocURL:   "https://panekit.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryPeer,
		Message:  "Duplicate peer",
		Detail:   "A synchronization peer is already registered for the component type.",
		DocURL:   "https://panekit.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryRegistry,
		Message:  "Service not found",
		Detail:   "The requested service id is not present in the registry.",
		DocURL:   "https://panekit.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryResource,
		Message:  "Service resource load failed",
		Detail:   "The payload behind a registered service could not be read from its source.",
		DocURL:   "https://panekit.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryRegistry,
		Message:  "Invalid service",
		Detail:   "A service must have a non-empty id and location.",
		DocURL:   "https://panekit.dev/docs/errors/E105",
	},
	"E106": {
		Category: CategoryPeer,
		Message:  "Component repeated in tree",
		Detail:   "A component was reached twice while synchronizing. Each component must have a single parent and the tree must not contain cycles.",
		DocURL:   "https://panekit.dev/docs/errors/E106",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The panekit.json file contains an invalid value.",
		DocURL:   "https://panekit.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config file unreadable",
		Detail:   "The panekit.json file could not be read or parsed.",
		DocURL:   "https://panekit.dev/docs/errors/E121",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
