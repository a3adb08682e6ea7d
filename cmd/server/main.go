package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"marketgate/internal/cache"
	"marketgate/internal/config"
	"marketgate/internal/handler"
	mcpserver "marketgate/internal/mcp"
	"marketgate/internal/provider"
	"marketgate/internal/tools"
	"marketgate/internal/version"
	"marketgate/pkg/tracing"
)

const maxMCPBodyBytes int64 = 1 << 20 // 1MiB

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initTracerFunc         = tracing.InitTracer
	newRedisFunc           = cache.NewClient
	newMCPServerFunc       = mcpserver.NewServer
	newMCPHandlerFunc      = mcpserver.NewHTTPTransportHandler
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

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

	mcpHandler := newMCPHandlerFunc(mcpSrv, mcpserver.HTTPHandlerConfig{
		APIKey:          cfg.GatewayAPIKey,
		RateLimitPerMin: cfg.MCPRateLimitPerMin,
		MaxBodyBytes:    maxMCPBodyBytes,
	})

	h := newHandlerFunc(tracer, mcpHandler)

	r := newRouterFunc()
	r.Use(otelgin.Middleware(version.AppName))
	r.Use(cors.Default())
	h.RegisterRoutes(r)

	addr := net.JoinHostPort(cfg.HTTPBind, fmt.Sprintf("%d", cfg.HTTPPort))
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
