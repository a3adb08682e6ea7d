package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"marketgate/internal/domain"
)

var toolCatalog = map[string][]string{
	"crypto": {
		"get_crypto_prices",
		"get_top_cryptos",
		"get_crypto_metadata",
		"get_historical_prices",
		"get_trending_cryptos",
		"get_global_crypto_metrics",
		"get_market_pairs",
		"get_latest_ohlcv",
		"get_top_exchanges",
		"get_crypto_map",
		"get_crypto_categories",
		"get_fear_and_greed_index",
		"get_historical_top_cryptos",
		"get_latest_crypto_news",
		"get_blockchain_statistics",
		"get_cmc20_index",
		"get_price_performance",
	},
	"forex": {
		"get_forex_tickers",
		"get_forex_exchanges",
		"get_forex_conversion",
		"get_forex_last_quote",
		"get_forex_market_status",
		"get_forex_movers",
		"get_forex_prev_close",
		"get_forex_history",
		"get_forex_historical_quotes",
		"get_forex_indicator",
		"get_forex_market_snapshot",
		"get_forex_snapshot",
		"get_forex_market_holidays",
	},
}

func registerResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         "market://tool-catalog",
		Name:        "tool-catalog",
		Description: "Tool names grouped by data domain",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, toolCatalog)
	})

	server.AddResource(&mcp.Resource{
		URI:         "market://supported-indicators",
		Name:        "supported-indicators",
		Description: "Technical indicators available to get_forex_indicator",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, domain.ForexIndicators)
	})

	server.AddResource(&mcp.Resource{
		URI:         "market://supported-timespans",
		Name:        "supported-timespans",
		Description: "Aggregate timespans accepted by the forex history tools",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, domain.SupportedTimespans)
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(body),
		}},
	}, nil
}
