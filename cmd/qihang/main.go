// Command qihang runs the career assessment service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/qihang-dev/qihang/internal/config"
	"github.com/qihang-dev/qihang/internal/llm"
	"github.com/qihang-dev/qihang/internal/llm/provider"
	"github.com/qihang-dev/qihang/internal/orchestrator"
	"github.com/qihang-dev/qihang/internal/prompt"
	"github.com/qihang-dev/qihang/internal/server"
	"github.com/qihang-dev/qihang/internal/store"
	"github.com/qihang-dev/qihang/pkg/observability"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		port       = flag.Int("port", 0, "override the configured HTTP port")
	)
	flag.Parse()

	if err := run(*configPath, *port); err != nil {
		fmt.Fprintln(os.Stderr, "qihang:", err)
		os.Exit(1)
	}
}

func run(configPath string, portOverride int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if portOverride > 0 {
		cfg.Server.Port = portOverride
	}

	logger, err := newLogger(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	observability.InitMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	registry := provider.NewRegistry()
	if cfg.Providers.Qwen.APIKey != "" {
		registry.Register(provider.NewQwen(
			cfg.Providers.Qwen.APIKey,
			cfg.Providers.Qwen.BaseURL,
			cfg.Providers.Qwen.Model,
		))
	}
	if cfg.Providers.Gemini.APIKey != "" {
		registry.Register(provider.NewGemini(
			cfg.Providers.Gemini.APIKey,
			cfg.Providers.Gemini.BaseURL,
			cfg.Providers.Gemini.Model,
		))
	}
	if len(registry.List()) == 0 {
		return fmt.Errorf("no model providers configured; set QWEN_API_KEY or GEMINI_API_KEY")
	}
	log.Infow("providers configured", "providers", registry.List())

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		burst := cfg.RateLimit.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), burst)
	}
	gateway := llm.NewGateway(registry, limiter, log)

	scheme, err := prompt.SchemeByName(cfg.Assessment.Scheme)
	if err != nil {
		return err
	}
	compiler := prompt.NewCompiler(scheme)
	svc := orchestrator.NewService(st, gateway, compiler, cfg.Assessment.AccessKeys, log)

	srv := server.New(svc, cfg.Server.Port, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		log.Infow("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		return store.NewRedisStore(ctx, store.RedisOptions{
			Addr:       cfg.Store.Redis.Addr,
			Password:   cfg.Store.Redis.Password,
			DB:         cfg.Store.Redis.DB,
			Prefix:     cfg.Store.Redis.Prefix,
			SessionTTL: cfg.Store.Redis.SessionTTL.Duration,
		})
	default:
		return store.NewFileStore(cfg.Store.BaseDir)
	}
}
