// Package glint renders live views over a continuously-mutating
// document index. The root App wires the event bus, the in-memory
// index, view settings, and the markdown renderer into one bundle that
// views and the server build on.
package glint

import (
	"context"
	"log/slog"

	"github.com/glint-dev/glint/pkg/index"
	"github.com/glint-dev/glint/pkg/reactive"
	"github.com/glint-dev/glint/pkg/render"
	"github.com/glint-dev/glint/pkg/server"
	"github.com/glint-dev/glint/pkg/view"
)

// Config configures an App. Zero values get sensible defaults.
type Config struct {
	// Settings are the view-layer rendering settings.
	Settings *view.Settings

	// Markup converts markdown text into markup nodes. Defaults to the
	// built-in converter.
	Markup view.MarkupRenderer

	// Logger is the application logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// App is the main glint application entry point. It owns the root
// lifecycle scope; Close disposes every view mounted through it.
type App struct {
	bus      *index.Bus
	idx      *index.Memory
	settings *view.Settings
	markup   view.MarkupRenderer
	owner    *reactive.Owner
	logger   *slog.Logger
}

// New creates a new application with the given configuration.
func New(cfg Config) *App {
	if cfg.Settings == nil {
		cfg.Settings = view.DefaultSettings()
	}
	if cfg.Markup == nil {
		cfg.Markup = MarkdownRenderer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	bus := index.NewBus()
	return &App{
		bus:      bus,
		idx:      index.NewMemory(bus),
		settings: cfg.Settings,
		markup:   cfg.Markup,
		owner:    reactive.NewOwner(nil),
		logger:   cfg.Logger,
	}
}

// MarkdownRenderer adapts the built-in markdown converter to the
// view-layer delegation interface.
func MarkdownRenderer() view.MarkupRenderer {
	md := render.NewMarkdown()
	return view.MarkupRendererFunc(func(_ context.Context, text, _ string, c *view.Container) error {
		for _, n := range md.Parse(text) {
			c.Append(n)
		}
		return nil
	})
}

// Bus returns the index event bus.
func (a *App) Bus() *index.Bus {
	return a.bus
}

// Index returns the in-memory index.
func (a *App) Index() *index.Memory {
	return a.idx
}

// Settings returns the view settings.
func (a *App) Settings() *view.Settings {
	return a.settings
}

// Owner returns the root lifecycle scope.
func (a *App) Owner() *reactive.Owner {
	return a.owner
}

// LoadSnapshot loads a YAML document set into the index and returns
// the number of documents loaded.
func (a *App) LoadSnapshot(path string) (int, error) {
	n, err := index.LoadSnapshot(a.idx, path)
	if err != nil {
		return 0, err
	}
	a.logger.Info("snapshot loaded", "path", path, "documents", n)
	return n, nil
}

// BaseContext returns the app-level render context. It has no container
// and a synchronous dispatcher; sessions and mounts derive their own.
func (a *App) BaseContext() *view.RenderContext {
	return &view.RenderContext{
		Owner:      a.owner,
		Index:      a.idx,
		Bus:        a.bus,
		Settings:   a.settings,
		Markup:     a.markup,
		Dispatcher: view.SyncDispatcher{},
	}
}

// MountView mounts root into container under the app's lifecycle and
// returns the mounted tree.
func (a *App) MountView(root view.Component, container *view.Container) *view.Tree {
	rc := a.BaseContext().WithContainer(container)
	tree := view.NewTree(rc, root)
	tree.Mount()
	return tree
}

// Server creates an HTTP/WebSocket server rendering root.
func (a *App) Server(cfg *server.ServerConfig, root view.Component) *server.Server {
	return server.New(cfg, a.BaseContext(), root)
}

// Close disposes the app's root scope, unmounting everything created
// through it.
func (a *App) Close() {
	a.owner.Dispose()
}
