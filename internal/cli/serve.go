package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/oleander/sketchfeed/internal/server"
)

// shutdownTimeout bounds graceful drain on SIGINT/SIGTERM.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog JSON API",
		Long: `Run the catalog JSON API for the content website.

Endpoints:
  GET /api/curation                  merged curation catalog
  GET /api/curation/random           random catalog sample
  GET /api/sketch/{id}               sketch metadata
  GET /api/sketch/{id}/size          inferred canvas dimensions
  GET /api/sketch/{id}/thumbnail     thumbnail resolution
  GET /api/health                    liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	client, err := c.newClient(ctx, cfg, false)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(client, c.Logger).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	c.Logger.Info("listening", "addr", cfg.ListenAddr, "cache", cfg.Cache.Backend)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
