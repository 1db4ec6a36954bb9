package view

import (
	"context"
	"testing"
	"time"

	"github.com/glint-dev/glint/pkg/index"
	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/reactive"
	"github.com/glint-dev/glint/pkg/render"
)

// markdownRenderer adapts the default markdown converter to the
// MarkupRenderer collaborator interface.
func markdownRenderer() MarkupRenderer {
	md := render.NewMarkdown()
	return MarkupRendererFunc(func(_ context.Context, text, _ string, c *Container) error {
		for _, n := range md.Parse(text) {
			c.Append(n)
		}
		return nil
	})
}

// newTestContext builds a render context around an in-memory index
// with a synchronous dispatcher.
func newTestContext(t *testing.T) (*RenderContext, *index.Memory) {
	t.Helper()

	bus := index.NewBus()
	idx := index.NewMemory(bus)
	owner := reactive.NewOwner(nil)
	t.Cleanup(owner.Dispose)

	rc := &RenderContext{
		Owner:      owner,
		Index:      idx,
		Bus:        bus,
		Settings:   DefaultSettings(),
		Container:  NewContainer(),
		Markup:     markdownRenderer(),
		Dispatcher: SyncDispatcher{},
	}
	return rc, idx
}

// renderToHTML serializes a node for assertions.
func renderToHTML(t *testing.T, node *markup.Node) string {
	t.Helper()
	r := render.NewRenderer(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// waitUntil polls cond for up to a second.
func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}
