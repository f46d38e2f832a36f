package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devd.dev/internal/config"
	"devd.dev/internal/content"
	"devd.dev/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve the page at / along with the JSON API under /api/.
With --watch the content file is reloaded whenever it changes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default SERVER_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := resolveConfig(cmd)
	if cmd.Flags().Changed("addr") {
		cfg.ServerAddr = serveAddr
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = serveWatch
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, logger, nil)
}

// serve runs the server until ctx is done. ready, when set, receives the
// bound address once the listener is up.
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger, ready chan<- string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.LoadContent(); err != nil {
		return err
	}
	content.LogFindings(logger, content.Validate(cfg.Portfolio))

	store := content.NewStore(cfg.Portfolio)

	if cfg.Watch {
		watcher, err := content.NewWatcher(cfg.ContentPath, store, logger, content.WithTransform(cfg.ApplyOverrides))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := watcher.Stop(); err != nil {
				logger.Warn("Failed to stop content watcher", zap.Error(err))
			}
		}()
	}

	ln, err := net.Listen("tcp", cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ServerAddr, err)
	}

	srv := &http.Server{
		Handler:           handlers.SetupRoutes(store, cfg.AssetsDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("Server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("content", cfg.ContentPath),
		zap.String("assets", cfg.AssetsDir),
		zap.Bool("watch", cfg.Watch))
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
