package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	CoinMarketCapAPIKey  string
	CoinMarketCapBaseURL string
	MassiveAPIKey        string
	MassiveBaseURL       string

	GatewayAPIKey string
	HTTPBind      string
	HTTPPort      int

	MCPTransport          string
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int

	ProviderTimeoutSecs int

	RedisURL     string
	CacheTTLSecs int

	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		CoinMarketCapAPIKey: os.Getenv("COINMARKETCAP_API_KEY"),
		MassiveAPIKey:       os.Getenv("MASSIVE_API_KEY"),
		GatewayAPIKey:       strings.TrimSpace(os.Getenv("GATEWAY_API_KEY")),
		RedisURL:            strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	if cfg.CoinMarketCapAPIKey == "" {
		log.Println("Warning: COINMARKETCAP_API_KEY not set, crypto tools will report a configuration error")
	}
	if cfg.MassiveAPIKey == "" {
		log.Println("Warning: MASSIVE_API_KEY not set, forex tools will report a configuration error")
	}
	if cfg.GatewayAPIKey == "" {
		log.Println("Warning: GATEWAY_API_KEY not set, MCP HTTP transport is unauthenticated")
	}

	cfg.CoinMarketCapBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("COINMARKETCAP_BASE_URL")), "/")
	if cfg.CoinMarketCapBaseURL == "" {
		cfg.CoinMarketCapBaseURL = "https://pro-api.coinmarketcap.com"
	}

	cfg.MassiveBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("MASSIVE_BASE_URL")), "/")
	if cfg.MassiveBaseURL == "" {
		cfg.MassiveBaseURL = "https://api.massive.com"
	}

	cfg.HTTPBind = strings.TrimSpace(os.Getenv("HTTP_BIND"))
	if cfg.HTTPBind == "" {
		cfg.HTTPBind = "0.0.0.0"
	}

	cfg.HTTPPort = 8000
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8090
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	cfg.MCPRequestTimeoutSecs = 5
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	cfg.MCPRateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("MCP_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRateLimitPerMin = n
		}
	}

	cfg.ProviderTimeoutSecs = 30
	if v := strings.TrimSpace(os.Getenv("PROVIDER_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ProviderTimeoutSecs = n
		}
	}

	cfg.CacheTTLSecs = 30
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSecs = n
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
