package view

import (
	"context"

	"github.com/glint-dev/glint/pkg/index"
	"github.com/glint-dev/glint/pkg/reactive"
)

// Dispatcher serializes state mutations onto a single event loop.
// Compute results and bus callbacks are applied through it, which is
// what makes the view layer's scheduling cooperative and lock-free at
// the state level.
type Dispatcher interface {
	Dispatch(fn func())
}

// SyncDispatcher runs dispatched functions immediately on the calling
// goroutine. Suitable for tests and single-goroutine hosts.
type SyncDispatcher struct{}

// Dispatch implements Dispatcher.
func (SyncDispatcher) Dispatch(fn func()) { fn() }

// DispatcherFunc adapts a function to Dispatcher. Hosts whose dispatch
// primitive reports errors wrap it here and decide what to do with
// failures themselves.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// MarkupRenderer is the external collaborator that converts raw markup
// text into nodes appended to a container. Implementations may mutate
// the container asynchronously relative to the render tree; errors
// propagate to the caller untouched.
type MarkupRenderer interface {
	RenderMarkup(ctx context.Context, text, sourcePath string, container *Container) error
}

// MarkupRendererFunc adapts a function to MarkupRenderer.
type MarkupRendererFunc func(ctx context.Context, text, sourcePath string, container *Container) error

// RenderMarkup implements MarkupRenderer.
func (f MarkupRendererFunc) RenderMarkup(ctx context.Context, text, sourcePath string, container *Container) error {
	return f(ctx, text, sourcePath, container)
}

// RenderContext is the immutable dependency bundle shared by reference
// across an entire render subtree: the owning lifecycle scope, the
// index handle, the event bus, settings, the output container, and the
// app-level collaborators. A new context is created only when
// remounting; nothing mutates it after creation.
type RenderContext struct {
	// Owner is the lifecycle scope that adopts subscriptions created
	// by descendants.
	Owner *reactive.Owner

	// Index is the external index handle.
	Index index.Handle

	// Bus delivers index change notifications.
	Bus *index.Bus

	// Settings is the host configuration subset.
	Settings *Settings

	// Container is the output slot this subtree renders into.
	Container *Container

	// Markup is the markup-delegation collaborator.
	Markup MarkupRenderer

	// Dispatcher serializes asynchronous state application.
	Dispatcher Dispatcher
}

// renderContextKey is the owner-scope key for ambient context lookup.
type renderContextKey struct{}

// WithContainer returns a copy of the context rendering into a
// different container. Everything else is shared.
func (rc *RenderContext) WithContainer(c *Container) *RenderContext {
	copied := *rc
	copied.Container = c
	return &copied
}

// WithOwner returns a copy of the context scoped to a child owner.
func (rc *RenderContext) WithOwner(o *reactive.Owner) *RenderContext {
	copied := *rc
	copied.Owner = o
	return &copied
}

// Establish binds the context on its owner so descendants created under
// that owner can recover it with FromOwner. Must be called before any
// descendant that reads it renders.
func (rc *RenderContext) Establish() {
	if rc.Owner == nil {
		panic("view: Establish called on RenderContext with no owner")
	}
	rc.Owner.SetValue(renderContextKey{}, rc)
}

// FromOwner recovers the nearest established RenderContext. Reading
// outside an established scope is a programming error and panics
// immediately rather than degrading.
func FromOwner(o *reactive.Owner) *RenderContext {
	if o != nil {
		if v := o.GetValue(renderContextKey{}); v != nil {
			return v.(*RenderContext)
		}
	}
	panic("view: render context read before establishment")
}
