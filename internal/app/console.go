package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/samvad-hq/defamation-console/internal/config"
	"github.com/samvad-hq/defamation-console/internal/logger"
	"github.com/samvad-hq/defamation-console/internal/web"
	"github.com/samvad-hq/defamation-console/pkg/defamation"
	"github.com/samvad-hq/defamation-console/pkg/httpclient"
)

const shutdownTimeout = 10 * time.Second

// Console owns the process-wide request client and the adapter built on it.
// It is constructed once at startup and handed to whatever needs the API.
type Console struct {
	cfg *config.Config
	api *defamation.API
	log logger.Logger
}

// NewConsole builds the request client from config and wires the adapter to it.
func NewConsole(cfg *config.Config, log logger.Logger) (*Console, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	client := httpclient.New(cfg.Client(), log)
	log.InfoObj("request client initialized", "client_config", map[string]any{
		"base_url":   client.BaseURL(),
		"timeout_ms": client.Timeout().Milliseconds(),
	})

	return &Console{
		cfg: cfg,
		api: defamation.NewAPI(client),
		log: log,
	}, nil
}

// API returns the defamation adapter bound to the shared client.
func (c *Console) API() *defamation.API { return c.api }

// Handler returns the view routes backed by the adapter.
func (c *Console) Handler() http.Handler {
	return web.NewRouter(c.api, c.log)
}

// Serve runs the view routes on addr until ctx is cancelled. An empty addr
// uses the configured listen address.
func (c *Console) Serve(ctx context.Context, addr string) error {
	if c == nil || c.api == nil {
		return fmt.Errorf("console is not initialized")
	}
	if addr == "" {
		addr = c.cfg.ListenAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.log.InfoObj("view server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		c.log.InfoObj("view server exiting", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
