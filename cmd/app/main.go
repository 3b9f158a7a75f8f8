package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("orderdesk: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "orderdesk",
		Short:         "Order desk - vendor order lifecycle exposed as MCP tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over streamable HTTP plus the REST API",
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), envFile)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP to a single client over stdin/stdout",
		RunE: func(c *cobra.Command, _ []string) error {
			return runStdio(c.Context(), envFile)
		},
	})

	return root
}

func bootstrap(ctx context.Context, envFile string) (cmd.Config, *cmd.CompositionRoot, error) {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	// stdout carries the stdio transport, so logs always go to stderr.
	logger := cfg.NewLogger(os.Stderr)

	app, err := cmd.NewCompositionRoot(cfg, logger)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	if cfg.SeedDemoOrders {
		if _, err = app.SeedDemoOrders(ctx); err != nil {
			return cmd.Config{}, nil, err
		}
	}
	return cfg, app, nil
}

func runServe(parent context.Context, envFile string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, app, err := bootstrap(ctx, envFile)
	if err != nil {
		return err
	}
	if err = cfg.ValidateForHTTP(); err != nil {
		return err
	}

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := app.NewHTTPRouter(app.NewMCPServer())

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runStdio(parent context.Context, envFile string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, app, err := bootstrap(ctx, envFile)
	if err != nil {
		return err
	}

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return app.NewMCPServer().RunStdio(ctx)
}
