package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/render"
	"github.com/rileyhilliard/logogen/internal/web"
)

// serveCommand runs the web editor until interrupted.
func serveCommand(ctx context.Context, configPath, addr string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	addr = resolveServeAddr(addr, cfg)

	store, err := newStore(cfg, false)
	if err != nil {
		return err
	}

	srv := web.NewServer(store,
		web.WithLogger(logger.Default()),
		web.WithRenderOptions(render.Options{Minify: cfg.Render.Minify}),
	)
	defer srv.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, addr)
}

// resolveServeAddr picks the listen address: flag, then config, then default.
func resolveServeAddr(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.Serve.Addr != "" {
		return cfg.Serve.Addr
	}
	return config.DefaultServeAddr
}
