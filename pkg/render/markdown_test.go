package render

import (
	"testing"

	"github.com/glint-dev/glint/pkg/markup"
)

func renderNodes(t *testing.T, nodes []*markup.Node) string {
	t.Helper()
	r := NewRenderer(Config{})
	html, err := r.RenderToString(markup.Fragment(nil, nodes))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func TestMarkdownParagraphs(t *testing.T) {
	md := NewMarkdown()
	nodes := md.Parse("first para\n\nsecond para")

	if len(nodes) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(nodes))
	}
	for _, n := range nodes {
		if !n.IsElement("p") {
			t.Errorf("expected p element, got %v/%s", n.Kind, n.Tag)
		}
	}
}

func TestMarkdownInline(t *testing.T) {
	md := NewMarkdown()

	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "<p>plain text</p>"},
		{"has `code` span", "<p>has <code>code</code> span</p>"},
		{"very *emphatic*", "<p>very <em>emphatic</em></p>"},
		{"so **strong**", "<p>so <strong>strong</strong></p>"},
		{"a [link](https://example.com) here", `<p>a <a href="https://example.com">link</a> here</p>`},
		{"unterminated *star", "<p>unterminated *star</p>"},
	}

	for _, tt := range tests {
		got := renderNodes(t, md.Parse(tt.in))
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMarkdownNestedEmphasisInLink(t *testing.T) {
	md := NewMarkdown()
	got := renderNodes(t, md.Parse("[see *this*](/x)"))
	want := `<p><a href="/x">see <em>this</em></a></p>`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMarkdownEmptyInput(t *testing.T) {
	md := NewMarkdown()
	if nodes := md.Parse("   \n\n  "); len(nodes) != 0 {
		t.Errorf("expected no nodes for blank input, got %d", len(nodes))
	}
}
