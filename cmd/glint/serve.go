package main

import (
	stderrors "errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glint-dev/glint"
	"github.com/glint-dev/glint/internal/config"
	glinterrors "github.com/glint-dev/glint/internal/errors"
	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/server"
	"github.com/glint-dev/glint/pkg/view"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		snapshot   string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the document index as a live view",
		Long: `Start the HTTP/WebSocket server.

Configuration comes from glint.json in the working directory or any
parent; flags override it. Without a config the defaults apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}

			settings := cfg.View
			app := glint.New(glint.Config{Settings: &settings})
			defer app.Close()

			if snapshot == "" {
				snapshot = cfg.Snapshot
			}
			if snapshot != "" {
				if _, err := app.LoadSnapshot(snapshot); err != nil {
					return glinterrors.FromError(err, "E201")
				}
			}

			if addr == "" {
				addr = cfg.Server.Address()
			}

			srv := app.Server(&server.ServerConfig{Address: addr}, documentView(app))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("serving", "address", addr, "documents", app.Index().Len())
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().StringVarP(&snapshot, "snapshot", "f", "", "YAML snapshot to load (overrides config)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to glint.json")

	return cmd
}

// loadConfig resolves configuration: an explicit file, the nearest
// glint.json, or defaults when none exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	cfg, err := config.Find(".")
	if err != nil {
		var ge *glinterrors.GlintError
		if stderrors.As(err, &ge) && ge.Code == "E100" {
			slog.Debug("no glint.json found, using defaults")
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// documentView renders every indexed document. The session re-renders
// it on each index change, so it reads the index directly.
func documentView(app *glint.App) view.Component {
	return view.ComponentFunc(func(rc *view.RenderContext) *markup.Node {
		r := view.NewValueRenderer(rc)

		page := markup.ElAttr("div", markup.Attrs{"class": "documents"})
		for _, path := range app.Index().Paths() {
			doc := app.Index().Get(path)
			if doc == nil {
				continue
			}
			page.Children = append(page.Children, markup.El("article",
				markup.El("h2", markup.Text(path)),
				r.Render(doc, path, false, 0)))
		}

		if len(page.Children) == 0 {
			page.Children = append(page.Children,
				markup.El("p", markup.Text("no documents loaded")))
		}
		return page
	})
}
