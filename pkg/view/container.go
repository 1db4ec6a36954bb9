package view

import (
	"sync"

	"github.com/glint-dev/glint/pkg/markup"
)

// Container is an output slot exclusively owned by one lifecycle
// wrapper at a time. It holds the rendered nodes and carries the
// visibility signal views recompute on.
type Container struct {
	mu    sync.Mutex
	nodes []*markup.Node

	shown     bool
	onShow    map[uint64]func()
	nextSubID uint64

	destroyed bool
}

// NewContainer creates an empty, visible container.
func NewContainer() *Container {
	return &Container{shown: true}
}

// Clear removes all nodes.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = nil
}

// Append adds a node to the end of the container.
func (c *Container) Append(node *markup.Node) {
	if node == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = append(c.nodes, node)
}

// Nodes returns the current nodes. The returned slice is a copy; the
// nodes themselves are shared.
func (c *Container) Nodes() []*markup.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*markup.Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// SetNodes replaces the container's contents.
func (c *Container) SetNodes(nodes []*markup.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = nodes
}

// IsShown reports whether the container is currently visible.
func (c *Container) IsShown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown && !c.destroyed
}

// SetShown updates visibility. A hidden-to-shown transition notifies
// every OnShow subscriber.
func (c *Container) SetShown(shown bool) {
	c.mu.Lock()
	if c.destroyed || c.shown == shown {
		c.mu.Unlock()
		return
	}
	c.shown = shown

	var callbacks []func()
	if shown {
		callbacks = make([]func(), 0, len(c.onShow))
		for _, fn := range c.onShow {
			callbacks = append(callbacks, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// OnShow subscribes to became-visible transitions and returns a
// disposer. The disposer is idempotent.
func (c *Container) OnShow(fn func()) func() {
	c.mu.Lock()
	if c.onShow == nil {
		c.onShow = make(map[uint64]func())
	}
	c.nextSubID++
	id := c.nextSubID
	c.onShow[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.onShow, id)
			c.mu.Unlock()
		})
	}
}

// Destroy marks the container dead: it reports hidden, drops its nodes
// and subscribers, and ignores further visibility changes. Idempotent.
func (c *Container) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
	c.nodes = nil
	c.onShow = nil
}

// IsDestroyed reports whether Destroy has been called.
func (c *Container) IsDestroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}
