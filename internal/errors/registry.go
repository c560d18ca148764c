package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Resolver diagnostics (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryMerge,
		Message:  "Event handlers not chained",
		Detail:   "The base handler's parameters cannot be satisfied by the consumer handler's arguments, so only the consumer handler runs.",
	},
	"E011": {
		Category: CategoryRender,
		Message:  "Invalid render override",
		Detail:   "A render override must be an element or a function. The default element was rendered instead.",
	},

	// ============================================
	// Configuration errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "renderprop.json could not be read or parsed.",
	},
	"E021": {
		Category: CategoryConfig,
		Message:  "Configuration value out of range",
	},

	// ============================================
	// Fixture errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryFixture,
		Message:  "Invalid fixture file",
		Detail:   "The fixture could not be read or does not match the fixture schema.",
	},
	"E031": {
		Category: CategoryFixture,
		Message:  "Unknown fixture variant",
		Detail:   "Fixtures must declare variant slot, stateful, or container.",
	},
	"E032": {
		Category: CategoryFixture,
		Message:  "Fixture template failed",
		Detail:   "A className or children template could not be parsed or executed against the fixture state.",
	},
	"E033": {
		Category: CategoryFixture,
		Message:  "Fixture not found",
	},
	"E034": {
		Category: CategoryFixture,
		Message:  "Fixture expectation failed",
		Detail:   "The rendered HTML does not match the fixture's expect section.",
	},

	// ============================================
	// Gallery and CLI errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryGallery,
		Message:  "Gallery server failed",
	},
	"E041": {
		Category: CategoryCLI,
		Message:  "Render is not idempotent",
		Detail:   "Rendering the same fixture twice produced different trees.",
	},
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// GetAllCodes returns all registered codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
