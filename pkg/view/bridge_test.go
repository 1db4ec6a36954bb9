package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glint-dev/glint/pkg/markup"
)

func TestRenderMarkdownBlock(t *testing.T) {
	rc, _ := newTestContext(t)
	c := NewContainer()

	if err := RenderMarkdown(context.Background(), rc, "hello *world*", "doc.md", c, false); err != nil {
		t.Fatal(err)
	}

	nodes := c.Nodes()
	if len(nodes) != 1 || !nodes[0].IsElement("p") {
		t.Fatalf("block mode should keep the paragraph wrapper, got %v", nodes)
	}
}

func TestRenderMarkdownInlineUnwraps(t *testing.T) {
	rc, _ := newTestContext(t)
	c := NewContainer()

	if err := RenderMarkdown(context.Background(), rc, "hello *world*", "doc.md", c, true); err != nil {
		t.Fatal(err)
	}

	for _, n := range c.Nodes() {
		if n.IsElement("p") {
			t.Fatal("inline mode must unwrap paragraph wrappers")
		}
	}

	var text string
	for _, n := range c.Nodes() {
		text += n.TextContent()
	}
	if text != "hello world" {
		t.Errorf("unwrapped content = %q", text)
	}
}

func TestRenderMarkdownClearsPreviousContent(t *testing.T) {
	rc, _ := newTestContext(t)
	c := NewContainer()
	c.Append(markup.Text("leftover"))

	if err := RenderMarkdown(context.Background(), rc, "fresh", "doc.md", c, true); err != nil {
		t.Fatal(err)
	}

	for _, n := range c.Nodes() {
		if strings.Contains(n.TextContent(), "leftover") {
			t.Fatal("previous content must be cleared before delegation")
		}
	}
}

func TestRenderMarkdownPropagatesError(t *testing.T) {
	rc, _ := newTestContext(t)
	boom := errors.New("parse failed")
	rc.Markup = MarkupRendererFunc(func(context.Context, string, string, *Container) error {
		return boom
	})

	err := RenderMarkdown(context.Background(), rc, "x", "doc.md", NewContainer(), false)
	if !errors.Is(err, boom) {
		t.Errorf("expected delegation error, got %v", err)
	}
}

func TestUnwrapParagraphsNested(t *testing.T) {
	c := NewContainer()
	c.Append(markup.El("p", markup.El("p", markup.Text("deep"))))
	c.Append(markup.El("div", markup.Text("kept")))

	UnwrapParagraphs(c)

	nodes := c.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Kind != markup.KindText || nodes[0].Text != "deep" {
		t.Errorf("nested paragraphs should unwrap to the inner text, got %v", nodes[0])
	}
	if !nodes[1].IsElement("div") {
		t.Error("non-paragraph elements must survive unwrapping")
	}
}

func TestEmbedNode(t *testing.T) {
	c := NewContainer()
	c.Append(markup.Text("old"))

	EmbedNode(c, markup.El("span", markup.Text("new")))

	nodes := c.Nodes()
	if len(nodes) != 1 || !nodes[0].IsElement("span") {
		t.Fatalf("embed should replace contents, got %v", nodes)
	}
}

func TestTreeMountUnmount(t *testing.T) {
	rc, _ := newTestContext(t)

	tree := NewTree(rc, ComponentFunc(func(rc *RenderContext) *markup.Node {
		return markup.El("main", markup.Text("content"))
	}))

	tree.Mount()
	tree.Mount() // idempotent

	if !tree.IsMounted() {
		t.Fatal("tree should be mounted")
	}
	if got := len(rc.Container.Nodes()); got != 1 {
		t.Fatalf("expected one root node, got %d", got)
	}

	// The mounted context is established for descendants.
	if got := FromOwner(tree.Context().Owner); got != tree.Context() {
		t.Error("mounted context should be recoverable from its owner")
	}

	tree.Unmount()
	tree.Unmount() // idempotent

	if tree.IsMounted() {
		t.Fatal("tree should be unmounted")
	}
	if got := len(rc.Container.Nodes()); got != 0 {
		t.Errorf("unmount should clear the container, got %d nodes", got)
	}
}

func TestTreeUnmountReleasesStates(t *testing.T) {
	rc, idx := newTestContext(t)

	var states []*State[int64]
	tree := NewTree(rc, ComponentFunc(func(rc *RenderContext) *markup.Node {
		s := NewState(rc, int64(0), func(context.Context) (int64, error) {
			return int64(idx.Len()), nil
		})
		states = append(states, s)
		return markup.Text("v")
	}))

	tree.Mount()
	waitUntil(t, func() bool { return len(states) == 1 })

	tree.Unmount()

	// After unmount the state's subscriptions are gone: index changes do
	// not reach it anymore.
	before := states[0].Peek()
	putDoc(idx, "a.md")
	putDoc(idx, "b.md")

	if got := states[0].Peek(); got != before {
		t.Errorf("state updated after unmount: %d -> %d", before, got)
	}
}

func TestTreeRerender(t *testing.T) {
	rc, _ := newTestContext(t)

	n := 0
	tree := NewTree(rc, ComponentFunc(func(rc *RenderContext) *markup.Node {
		n++
		return markup.Textf("render %d", n)
	}))

	tree.Rerender() // no-op before mount
	if n != 0 {
		t.Fatal("rerender before mount must not render")
	}

	tree.Mount()
	tree.Rerender()

	nodes := rc.Container.Nodes()
	if len(nodes) != 1 || nodes[0].TextContent() != "render 2" {
		t.Errorf("rerender output = %v", nodes)
	}
}
