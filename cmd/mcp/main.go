package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/redis/go-redis/v9"

	"marketgate/internal/cache"
	"marketgate/internal/config"
	mcpserver "marketgate/internal/mcp"
	"marketgate/internal/provider"
	"marketgate/internal/tools"
	"marketgate/pkg/tracing"
)

const defaultMCPHTTPMaxBodyBytes int64 = 1 << 20 // 1MiB

var (
	loadEnvFunc       = godotenv.Load
	loadConfigFunc    = config.Load
	initTracerFunc    = tracing.InitTracer
	newRedisFunc      = cache.NewClient
	newMCPServerFunc  = mcpserver.NewServer
	newMCPHandlerFunc = mcpserver.NewHTTPTransportHandler
	runStdioFunc      = func(ctx context.Context, server *sdkmcp.Server) error {
		return server.Run(ctx, &sdkmcp.StdioTransport{})
	}
	startHTTPServerFunc  = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFn = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	setupSignalNotify    = ossignal.Notify
	waitForSignalFunc    = func(quit <-chan os.Signal) { <-quit }
)

func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()
	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = newRedisFunc(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: redis unavailable, response caching disabled: %v", err)
			redisClient = nil
		}
	}

	providerTimeout := time.Duration(cfg.ProviderTimeoutSecs) * time.Second

	cmc := provider.NewCoinMarketCap(provider.NewClient(provider.ClientOptions{
		Name:         "CoinMarketCap",
		BaseURL:      cfg.CoinMarketCapBaseURL,
		APIKey:       cfg.CoinMarketCapAPIKey,
		APIKeyHeader: "X-CMC_PRO_API_KEY",
		KeyEnv:       "COINMARKETCAP_API_KEY",
		Timeout:      providerTimeout,
		Tracer:       tracer,
	}), provider.CoinMarketCapOptions{
		Cache:    redisClient,
		CacheTTL: time.Duration(cfg.CacheTTLSecs) * time.Second,
	})

	massive := provider.NewMassive(provider.NewClient(provider.ClientOptions{
		Name:         "Massive",
		BaseURL:      cfg.MassiveBaseURL,
		APIKey:       cfg.MassiveAPIKey,
		APIKeyHeader: "X-API-Key",
		KeyEnv:       "MASSIVE_API_KEY",
		Timeout:      providerTimeout,
		Tracer:       tracer,
	}))

	mcpSrv := newMCPServerFunc(tracer, tools.NewCrypto(cmc), tools.NewForex(massive), mcpserver.ServerConfig{
		RequestTimeout: time.Duration(cfg.MCPRequestTimeoutSecs) * time.Second,
	})

	switch cfg.MCPTransport {
	case "", "stdio":
		if err := runStdioFunc(ctx, mcpSrv); err != nil {
			log.Fatalf("mcp stdio server failed: %v", err)
		}
	case "http":
		if err := runHTTPMode(ctx, cancel, cfg, mcpSrv); err != nil {
			log.Fatalf("mcp http server failed: %v", err)
		}
	default:
		log.Fatalf("unsupported MCP_TRANSPORT: %s", cfg.MCPTransport)
	}
}

func runHTTPMode(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, mcpSrv *sdkmcp.Server) error {
	handler := newMCPHandlerFunc(mcpSrv, mcpserver.HTTPHandlerConfig{
		APIKey:          cfg.GatewayAPIKey,
		RateLimitPerMin: cfg.MCPRateLimitPerMin,
		MaxBodyBytes:    defaultMCPHTTPMaxBodyBytes,
	})

	addr := net.JoinHostPort(cfg.MCPHTTPBind, fmt.Sprintf("%d", cfg.MCPHTTPPort))
	srv := &http.Server{Addr: addr, Handler: handler}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Printf("mcp http server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFn(srv, shutdownCtx); err != nil {
		return fmt.Errorf("mcp server forced to shutdown: %w", err)
	}
	return nil
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	// Stdout is the protocol channel in stdio mode; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
