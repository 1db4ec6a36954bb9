package view

// Settings is the subset of host configuration the view layer reads.
// Settings are owned externally and outlive any single view; the view
// layer never mutates them.
type Settings struct {
	// MaxRecursiveRenderDepth bounds value-rendering recursion. Values
	// nested deeper render as a truncation placeholder.
	MaxRecursiveRenderDepth int `json:"maxRecursiveRenderDepth"`

	// RenderNullAs is the markup string rendered for null values.
	RenderNullAs string `json:"renderNullAs"`

	// RefreshEnabled gates revision-triggered recomputes. Visibility
	// transitions still recompute when false.
	RefreshEnabled bool `json:"refreshEnabled"`

	// DateFormat is the layout for dates with no time-of-day component.
	DateFormat string `json:"dateFormat"`

	// DateTimeFormat is the layout for dates with a time-of-day
	// component.
	DateTimeFormat string `json:"dateTimeFormat"`
}

// DefaultSettings returns the default view settings.
func DefaultSettings() *Settings {
	return &Settings{
		MaxRecursiveRenderDepth: 4,
		RenderNullAs:            "\\-",
		RefreshEnabled:          true,
		DateFormat:              "January 02, 2006",
		DateTimeFormat:          "3:04 PM - January 02, 2006",
	}
}
