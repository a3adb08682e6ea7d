package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestToolCatalogComplete(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv := testServer(t)
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	listed, err := session.ListTools(ctx, &sdkmcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools failed: %v", err)
	}
	if got := len(listed.Tools); got != 30 {
		t.Fatalf("expected 30 tools, got %d", got)
	}

	names := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		names[tool.Name] = true
	}
	for _, domainTools := range toolCatalog {
		for _, name := range domainTools {
			if !names[name] {
				t.Fatalf("catalog tool %s not registered", name)
			}
		}
	}
}

func TestCallCryptoPricesTool(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv := testServer(t)
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_crypto_prices",
		Arguments: map[string]any{"symbols": "BTC"},
	})
	if err != nil {
		t.Fatalf("call tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if got := textContent(t, res); !strings.Contains(got, "Bitcoin (BTC): $50,000.00") {
		t.Fatalf("unexpected tool text: %q", got)
	}
}

func TestValidationFailureIsTextNotError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv := testServer(t)
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_crypto_prices",
		Arguments: map[string]any{"symbols": "not a symbol!"},
	})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if res.IsError {
		t.Fatalf("validation failures must be text results, got error: %+v", res.Content)
	}
	if got := textContent(t, res); !strings.HasPrefix(got, "Input Validation Error:") {
		t.Fatalf("unexpected tool text: %q", got)
	}
}

func TestCallForexMarketStatusTool(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv := testServer(t)
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_forex_market_status",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("call tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	got := textContent(t, res)
	if !strings.Contains(got, "Forex Market Status:") || !strings.Contains(got, "FX Status: open") {
		t.Fatalf("unexpected tool text: %q", got)
	}
}

func TestUnknownToolIsProtocolError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv := testServer(t)
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	_, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "get_stock_prices"})
	if err == nil {
		t.Fatal("expected protocol error for unknown tool")
	}
}
