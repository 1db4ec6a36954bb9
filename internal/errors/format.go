package errors

import (
	"fmt"
	"strings"
)

// Format renders an error for CLI output. GlintErrors get their detail,
// suggestion, and documentation link on separate lines; other errors
// fall back to Error().
func Format(err error) string {
	if err == nil {
		return ""
	}

	ge, ok := err.(*GlintError)
	if !ok {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "error: %s", ge.Error())

	if ge.Detail != "" {
		fmt.Fprintf(&b, "\n  %s", ge.Detail)
	}
	if ge.Wrapped != nil {
		fmt.Fprintf(&b, "\n  caused by: %s", ge.Wrapped.Error())
	}
	if ge.Suggestion != "" {
		fmt.Fprintf(&b, "\n  hint: %s", ge.Suggestion)
	}
	if ge.DocURL != "" {
		fmt.Fprintf(&b, "\n  see: %s", ge.DocURL)
	}

	return b.String()
}
