package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recase-dev/recase/internal/comments"
	"github.com/recase-dev/recase/internal/config"
	"github.com/recase-dev/recase/internal/web"
	"github.com/recase-dev/recase/internal/web/server"
)

var serveDev bool

func init() {
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Use human-readable development logging")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the comments HTTP service",
	Long:  "Start the comments API backed by the configured SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := newLogger(serveDev)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		db, err := sql.Open("sqlite3", cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		store := comments.NewStore(db)
		if err := store.EnsureSchema(cmd.Context()); err != nil {
			db.Close()
			return err
		}

		handler := web.NewHandler(store, logger)

		serverConfig := server.DefaultConfig(handler.Routes())
		serverConfig.Address = cfg.Server.Address()

		srv, err := server.New(serverConfig, logger)
		if err != nil {
			db.Close()
			return err
		}
		srv.OnShutdown(func(ctx context.Context) error {
			return db.Close()
		})

		return srv.Run(cmd.Context())
	},
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
