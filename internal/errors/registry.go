package errors

// template holds the registered fields for an error code.
type template struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates. Codes are grouped by
// hundreds per category and never reused once released.
var registry = map[string]template{
	// Configuration (E1xx)
	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "glint looks for glint.json in the working directory and its ancestors.",
		DocURL:   "https://glint.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "glint.json exists but could not be parsed.",
		DocURL:   "https://glint.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://glint.dev/docs/errors/E102",
	},

	// Index (E2xx)
	"E200": {
		Category: CategoryIndex,
		Message:  "Snapshot file not found",
		DocURL:   "https://glint.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryIndex,
		Message:  "Invalid snapshot file",
		Detail:   "The snapshot exists but is not valid YAML of the expected shape.",
		DocURL:   "https://glint.dev/docs/errors/E201",
	},

	// Rendering (E3xx)
	"E300": {
		Category: CategoryRender,
		Message:  "Markup rendering failed",
		DocURL:   "https://glint.dev/docs/errors/E300",
	},

	// Server (E4xx)
	"E400": {
		Category: CategoryServer,
		Message:  "Server failed to start",
		DocURL:   "https://glint.dev/docs/errors/E400",
	},
}

// Registered reports whether a code is in the registry.
func Registered(code string) bool {
	_, ok := registry[code]
	return ok
}
