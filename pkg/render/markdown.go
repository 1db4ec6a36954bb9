package render

import (
	"strings"

	"github.com/glint-dev/glint/pkg/markup"
)

// Markdown converts a small markdown subset into markup nodes. It is
// the default implementation behind the view layer's markup delegation:
// paragraphs, inline code spans, emphasis, strong emphasis, and links.
// Anything else passes through as literal text.
//
// It is intentionally not a full dialect; hosts with richer needs plug
// in their own renderer at the bridge.
type Markdown struct{}

// NewMarkdown creates a Markdown converter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Parse converts text to markup nodes. Blank lines separate paragraphs;
// each paragraph becomes a <p> element so inline contexts can unwrap it.
func (m *Markdown) Parse(text string) []*markup.Node {
	var nodes []*markup.Node

	for _, para := range splitParagraphs(text) {
		p := &markup.Node{Kind: markup.KindElement, Tag: "p"}
		p.Children = m.parseInline(para)
		nodes = append(nodes, p)
	}

	return nodes
}

// splitParagraphs splits on blank lines, trimming surrounding space.
func splitParagraphs(text string) []string {
	var paras []string
	for _, chunk := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			paras = append(paras, chunk)
		}
	}
	return paras
}

// parseInline scans a paragraph for code spans, strong, emphasis, and
// links, emitting text nodes between them.
func (m *Markdown) parseInline(text string) []*markup.Node {
	var nodes []*markup.Node
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, markup.Text(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		switch {
		case text[i] == '`':
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				flush()
				nodes = append(nodes, markup.El("code", text[i+1:i+1+end]))
				i += end + 2
				continue
			}
		case strings.HasPrefix(text[i:], "**"):
			if end := strings.Index(text[i+2:], "**"); end >= 0 {
				flush()
				strong := markup.El("strong")
				strong.Children = m.parseInline(text[i+2 : i+2+end])
				nodes = append(nodes, strong)
				i += end + 4
				continue
			}
		case text[i] == '*':
			if end := strings.IndexByte(text[i+1:], '*'); end >= 0 {
				flush()
				em := markup.El("em")
				em.Children = m.parseInline(text[i+1 : i+1+end])
				nodes = append(nodes, em)
				i += end + 2
				continue
			}
		case text[i] == '[':
			if label, href, rest, ok := parseLink(text[i:]); ok {
				flush()
				a := markup.ElAttr("a", markup.Attrs{"href": href})
				a.Children = m.parseInline(label)
				nodes = append(nodes, a)
				i += len(text[i:]) - len(rest)
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}

	flush()
	return nodes
}

// parseLink parses a leading "[label](href)" and returns the remainder.
func parseLink(s string) (label, href, rest string, ok bool) {
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", "", false
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", "", false
	}
	label = s[1:closeBracket]
	href = s[closeBracket+2 : closeBracket+2+closeParen]
	rest = s[closeBracket+closeParen+3:]
	return label, href, rest, true
}
