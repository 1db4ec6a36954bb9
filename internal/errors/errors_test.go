package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("E100")
	if err.Code != "E100" || err.Category != CategoryConfig {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !strings.Contains(err.Error(), "E100") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("unknown code message = %q", err.Message)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := New("E101").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}

	var ge *GlintError
	if !stderrors.As(err, &ge) || ge.Code != "E101" {
		t.Error("errors.As failed to recover GlintError")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	orig := New("E200")
	if got := FromError(orig, "E201"); got != orig {
		t.Error("FromError must not re-wrap a GlintError")
	}
	if FromError(nil, "E201") != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestFormat(t *testing.T) {
	err := New("E100").
		WithDetail("no glint.json in /tmp/project").
		WithSuggestion("run 'glint init' to create one")

	out := Format(err)
	for _, want := range []string{"E100", "no glint.json", "hint:", "see: https://glint.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}

	if got := Format(stderrors.New("plain")); got != "plain" {
		t.Errorf("plain error format = %q", got)
	}
	if Format(nil) != "" {
		t.Error("Format(nil) should be empty")
	}
}
