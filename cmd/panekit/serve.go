package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/panekit/panekit/internal/config"
)

func serveCmd(configDir *string) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web container",
		Long: `Start the web container HTTP server.

Serves the registered client libraries, the synchronization
WebSocket and, when configured, Prometheus metrics.

Examples:
  panekit serve
  panekit serve --address=:9090
  PANEKIT_ADDRESS=0.0.0.0:80 panekit serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Address to listen on (default from panekit.json)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := cfg.NewLogger(os.Stderr)

	container, err := buildContainer(cfg, logger, demoRoot)
	if err != nil {
		return err
	}
	defer container.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      container.Handler(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", cfg.Server.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
