package view

import (
	"context"

	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/reactive"
)

// RenderMarkdown clears the container and delegates text to the markup
// collaborator. In inline mode, paragraph wrappers directly inside the
// container are unwrapped after the delegation resolves, producing
// inline-safe output with no visible block wrapper.
//
// Delegation failures propagate untouched; document-level error
// handling belongs to the host.
func RenderMarkdown(ctx context.Context, rc *RenderContext, text, sourcePath string, container *Container, inline bool) error {
	container.Clear()

	if err := rc.Markup.RenderMarkup(ctx, text, sourcePath, container); err != nil {
		return err
	}

	if inline {
		UnwrapParagraphs(container)
	}
	return nil
}

// EmbedNode clears the container and appends a pre-constructed node
// directly. No parsing, no delegation.
func EmbedNode(container *Container, node *markup.Node) {
	container.Clear()
	container.Append(node)
}

// UnwrapParagraphs repeatedly replaces paragraph elements directly
// inside the container with their own children until none remain.
func UnwrapParagraphs(c *Container) {
	for {
		nodes := c.Nodes()
		replaced := false

		var out []*markup.Node
		for _, n := range nodes {
			if n.IsElement("p") {
				out = append(out, n.Children...)
				replaced = true
			} else {
				out = append(out, n)
			}
		}

		if !replaced {
			return
		}
		c.SetNodes(out)
	}
}

// Component is anything that can render itself under a context.
type Component interface {
	Render(rc *RenderContext) *markup.Node
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(rc *RenderContext) *markup.Node

// Render implements Component.
func (f ComponentFunc) Render(rc *RenderContext) *markup.Node {
	return f(rc)
}

// Tree is the lifecycle wrapper that mounts a component into a
// container. Mount establishes a fresh render context under a child
// owner; Unmount disposes that owner, releasing every subscription the
// subtree registered, and detaches the rendered nodes. Both are
// idempotent: unmounting after a failed or never-run mount is a no-op.
type Tree struct {
	base *RenderContext
	root Component

	rc      *RenderContext
	mounted bool
}

// NewTree creates a lifecycle wrapper for root rendering under base.
// base.Owner is the parent scope (typically the session owner).
func NewTree(base *RenderContext, root Component) *Tree {
	return &Tree{base: base, root: root}
}

// Mount renders the tree into its container. Mounting an already
// mounted tree is a no-op.
func (t *Tree) Mount() {
	if t.mounted {
		return
	}

	owner := newChildOwner(t.base)
	t.rc = t.base.WithOwner(owner)
	t.rc.Establish()

	node := renderUnder(t.rc, t.root)
	t.rc.Container.Clear()
	t.rc.Container.Append(node)

	t.mounted = true
}

// Rerender re-renders the mounted component into the container.
// No-op when unmounted.
func (t *Tree) Rerender() {
	if !t.mounted {
		return
	}
	node := renderUnder(t.rc, t.root)
	t.rc.Container.Clear()
	t.rc.Container.Append(node)
}

// Unmount disposes the subtree's owner and detaches its output.
// Idempotent; safe after a no-op mount.
func (t *Tree) Unmount() {
	if !t.mounted {
		return
	}
	t.mounted = false

	if t.rc != nil {
		t.rc.Owner.Dispose()
		t.rc.Container.Clear()
		t.rc = nil
	}
}

// IsMounted reports whether the tree is currently mounted.
func (t *Tree) IsMounted() bool {
	return t.mounted
}

// Context returns the mounted render context, or nil when unmounted.
func (t *Tree) Context() *RenderContext {
	return t.rc
}

// newChildOwner creates an owner parented to the base context's owner,
// or a root owner when the base has none.
func newChildOwner(base *RenderContext) *reactive.Owner {
	return reactive.NewOwner(base.Owner)
}

// renderUnder runs a component's render with the context's owner
// current, so primitives it creates are disposed with the tree.
func renderUnder(rc *RenderContext, c Component) *markup.Node {
	var node *markup.Node
	reactive.WithOwner(rc.Owner, func() {
		node = c.Render(rc)
	})
	return node
}
