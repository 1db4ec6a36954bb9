package view

import (
	"context"
	"time"

	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/value"
)

// Fixed placeholder tokens. These are data-shape degradations, never
// errors: rendering always produces output.
const (
	truncationPlaceholder  = "…"
	funcPlaceholder        = "<function>"
	emptyListPlaceholder   = "<empty list>"
	emptyRecordPlaceholder = "<empty record>"
)

// listSeparator joins children in non-inline list and record contexts.
const listSeparator = ", "

// ValueRenderer renders values of the dynamic model into markup nodes.
// Rendering is pure with respect to external state and never fails
// observably: unrecognized shapes, unsafe records, and over-deep
// nesting all degrade to placeholders.
type ValueRenderer struct {
	rc *RenderContext
}

// NewValueRenderer creates a renderer bound to a render context.
func NewValueRenderer(rc *RenderContext) *ValueRenderer {
	return &ValueRenderer{rc: rc}
}

// Render renders v. sourcePath names the document the value came from
// (passed through to markup delegation); inline selects the compact
// layout; depth is the current recursion depth, bounded by
// Settings.MaxRecursiveRenderDepth regardless of value shape. The
// value model is untrusted and may contain cycles; the depth bound is
// what makes rendering total.
func (r *ValueRenderer) Render(v value.Value, sourcePath string, inline bool, depth int) *markup.Node {
	metricValueRenders.Inc()

	if depth >= r.rc.Settings.MaxRecursiveRenderDepth {
		metricDepthTruncations.Inc()
		return markup.Text(truncationPlaceholder)
	}

	switch x := v.(type) {
	case nil, value.Null:
		return r.renderMarkdown(r.rc.Settings.RenderNullAs, sourcePath)
	case value.String:
		return r.renderMarkdown(string(x), sourcePath)
	case value.Number:
		return markup.Text(x.Text())
	case value.Bool:
		return markup.Text(x.Text())
	case value.Date:
		return markup.Text(FormatDate(x.Time, r.rc.Settings))
	case value.Duration:
		return markup.Text(FormatDuration(time.Duration(x)))
	case value.Link:
		return r.renderMarkdown(x.Markdown(), sourcePath)
	case value.Markup:
		// Pre-built subtree: embed directly, no re-parsing.
		if x.Node == nil {
			return markup.Text("")
		}
		return x.Node
	case value.Func:
		return markup.Text(funcPlaceholder)
	case value.List:
		return r.renderList(x, sourcePath, inline, depth)
	case *value.Record:
		return r.renderRecord(x, sourcePath, inline, depth)
	default:
		// Unrecognized shape: textual dump, never an error.
		return markup.Textf("%v", v)
	}
}

// renderList renders a list. Inline contexts get a real list element;
// non-inline contexts flatten children into a separator-joined row,
// which keeps nested collections from stacking visible list markup.
func (r *ValueRenderer) renderList(list value.List, sourcePath string, inline bool, depth int) *markup.Node {
	if inline {
		ul := markup.El("ul")
		ul.Attrs = markup.Attrs{"class": "value-list"}
		for _, item := range list {
			li := markup.El("li")
			li.Children = append(li.Children, r.Render(item, sourcePath, true, depth+1))
			ul.Children = append(ul.Children, li)
		}
		return ul
	}

	if len(list) == 0 {
		return markup.Text(emptyListPlaceholder)
	}

	row := markup.Fragment()
	for i, item := range list {
		if i > 0 {
			row.Children = append(row.Children, markup.Text(listSeparator))
		}
		row.Children = append(row.Children, r.Render(item, sourcePath, false, depth+1))
	}
	return row
}

// renderRecord renders a plain mapping with the list layout rules, each
// entry as "key: renderedValue". Records carrying a runtime type tag
// are opaque: they render as a type-name placeholder and are never
// descended into, even when their fields are plain.
func (r *ValueRenderer) renderRecord(rec *value.Record, sourcePath string, inline bool, depth int) *markup.Node {
	if !rec.IsPlain() {
		return markup.Textf("<%s>", rec.TypeName)
	}

	if inline {
		ul := markup.El("ul")
		ul.Attrs = markup.Attrs{"class": "value-record"}
		for _, key := range rec.Keys() {
			field, _ := rec.Get(key)
			li := markup.El("li")
			li.Children = append(li.Children,
				markup.Text(key+": "),
				r.Render(field, sourcePath, true, depth+1))
			ul.Children = append(ul.Children, li)
		}
		return ul
	}

	if rec.Len() == 0 {
		return markup.Text(emptyRecordPlaceholder)
	}

	row := markup.Fragment()
	for i, key := range rec.Keys() {
		field, _ := rec.Get(key)
		if i > 0 {
			row.Children = append(row.Children, markup.Text(listSeparator))
		}
		row.Children = append(row.Children,
			markup.Text(key+": "),
			r.Render(field, sourcePath, false, depth+1))
	}
	return row
}

// renderMarkdown delegates text to the markup collaborator into a
// scratch container, unwraps paragraph wrappers for inline embedding,
// and returns the result as a fragment. Delegation failure degrades to
// plain text here: the value renderer never fails observably.
func (r *ValueRenderer) renderMarkdown(text, sourcePath string) *markup.Node {
	scratch := NewContainer()
	if err := r.rc.Markup.RenderMarkup(context.Background(), text, sourcePath, scratch); err != nil {
		return markup.Text(text)
	}

	UnwrapParagraphs(scratch)
	return markup.Fragment(nil, scratch.Nodes())
}
