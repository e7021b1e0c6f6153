package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/filestore"
	"github.com/meikuraledutech/nodegraph/internal/config"
	"github.com/meikuraledutech/nodegraph/internal/ui"
	"github.com/meikuraledutech/nodegraph/postgres"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "nodegraph",
	Short: "nodegraph — node editor graph engine",
	Long: ui.Brand.Sprint("nodegraph") + " — serve and inspect node editor graphs\n" +
		ui.Subtle.Sprint("Ports, typed connections, undo/redo and a minimap over a JSON document"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("nodegraph {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath(), "Path to the TOML config file")

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		statsCmd(),
		configCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Bad.Fprintf(rootCmd.ErrOrStderr(), "nodegraph: %v\n", err)
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// openStore connects the configured backend and makes sure its schema
// exists. The returned closer releases the connection.
func openStore(ctx context.Context, cfg *config.Config) (nodegraph.Store, io.Closer, error) {
	var (
		store  nodegraph.Store
		closer io.Closer = nopCloser{}
	)
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect: %w", err)
		}
		store = postgres.New(pool)
		closer = poolCloser{pool}
	default:
		store = filestore.New(cfg.Store.Dir)
	}
	if err := store.CreateSchema(ctx); err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("create schema: %w", err)
	}
	return store, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type poolCloser struct{ pool *pgxpool.Pool }

func (p poolCloser) Close() error {
	p.pool.Close()
	return nil
}
