package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/meikuraledutech/nodegraph/editor"
	"github.com/meikuraledutech/nodegraph/internal/logging"
	"github.com/meikuraledutech/nodegraph/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an editor session over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, closer, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			ed, err := editor.New(cfg.Graph,
				editor.WithLogger(log),
				editor.WithHistoryLimit(cfg.History.Limit),
				editor.WithMinimapPadding(cfg.Minimap.Padding),
			)
			if err != nil {
				return err
			}
			// New treats zero caps as unset; the file's values are exact.
			if err := ed.Reconfigure(cfg.Graph); err != nil {
				return err
			}
			app := server.New(ed, store, log, server.Options{
				MinimapWidth:  cfg.Minimap.Width,
				MinimapHeight: cfg.Minimap.Height,
			})

			go func() {
				<-ctx.Done()
				log.Info("shutting down")
				app.Shutdown()
			}()

			log.Info("listening", "addr", cfg.Server.Addr, "store", cfg.Store.Backend,
				"max_nodes", cfg.Graph.MaxNodes, "max_edges", cfg.Graph.MaxEdges)
			return app.Listen(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
