package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"marketgate/internal/tools"
)

// addTextTool registers a tool whose result is always display text. Validation
// and provider failures come back as text in the result body, never as a
// protocol-level error.
func addTextTool[In any](server *mcp.Server, name, description string, run func(ctx context.Context, in In) string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		return textResult(run(ctx, in)), nil, nil
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func registerTools(server *mcp.Server, crypto *tools.Crypto, forex *tools.Forex) {
	registerCryptoTools(server, crypto)
	registerForexTools(server, forex)
}

func registerCryptoTools(server *mcp.Server, crypto *tools.Crypto) {
	addTextTool(server, "get_crypto_prices",
		"Get current USD prices for one or more cryptocurrencies",
		func(ctx context.Context, in cryptoPricesInput) string {
			return crypto.Prices(ctx, in.Symbols)
		})

	addTextTool(server, "get_top_cryptos",
		"Get the top cryptocurrencies ranked by market cap",
		func(ctx context.Context, in topCryptosInput) string {
			return crypto.TopCryptos(ctx, in.Limit)
		})

	addTextTool(server, "get_crypto_metadata",
		"Get descriptions, logos, and links for cryptocurrencies",
		func(ctx context.Context, in cryptoMetadataInput) string {
			return crypto.Metadata(ctx, in.Symbols)
		})

	addTextTool(server, "get_historical_prices",
		"Get historical USD prices for cryptocurrencies over a date range",
		func(ctx context.Context, in historicalPricesInput) string {
			return crypto.HistoricalPrices(ctx, in.Symbols, in.TimeStart, in.TimeEnd, in.Interval)
		})

	addTextTool(server, "get_trending_cryptos",
		"Get trending cryptocurrencies over a time window",
		func(ctx context.Context, in trendingCryptosInput) string {
			return crypto.Trending(ctx, in.Limit, in.TimePeriod)
		})

	addTextTool(server, "get_global_crypto_metrics",
		"Get global crypto market metrics: total market cap, volume, dominance",
		func(ctx context.Context, _ globalMetricsInput) string {
			return crypto.GlobalMetrics(ctx)
		})

	addTextTool(server, "get_market_pairs",
		"Get active trading pairs and venues for a cryptocurrency",
		func(ctx context.Context, in marketPairsInput) string {
			return crypto.MarketPairs(ctx, in.Symbol, in.Limit)
		})

	addTextTool(server, "get_latest_ohlcv",
		"Get the latest OHLCV candle for cryptocurrencies",
		func(ctx context.Context, in latestOHLCVInput) string {
			return crypto.OHLCVLatest(ctx, in.Symbols)
		})

	addTextTool(server, "get_top_exchanges",
		"Get top crypto exchanges ranked by 24h volume",
		func(ctx context.Context, in topExchangesInput) string {
			return crypto.TopExchanges(ctx, in.Limit)
		})

	addTextTool(server, "get_crypto_map",
		"Get the cryptocurrency ID map with listing status",
		func(ctx context.Context, in cryptoMapInput) string {
			return crypto.Map(ctx, in.Limit, in.ListingStatus)
		})

	addTextTool(server, "get_crypto_categories",
		"Get cryptocurrency categories with coin counts and average changes",
		func(ctx context.Context, in cryptoCategoriesInput) string {
			return crypto.Categories(ctx, in.Limit)
		})

	addTextTool(server, "get_fear_and_greed_index",
		"Get the latest crypto Fear & Greed index value",
		func(ctx context.Context, _ fearAndGreedInput) string {
			return crypto.FearAndGreed(ctx)
		})

	addTextTool(server, "get_historical_top_cryptos",
		"Get the top cryptocurrencies by market cap on a past date",
		func(ctx context.Context, in historicalTopCryptosInput) string {
			return crypto.HistoricalTop(ctx, in.Date, in.Limit)
		})

	addTextTool(server, "get_latest_crypto_news",
		"Get the latest crypto news and analysis articles",
		func(ctx context.Context, in cryptoNewsInput) string {
			return crypto.News(ctx, in.Symbols, in.Limit)
		})

	addTextTool(server, "get_blockchain_statistics",
		"Get chain statistics for bitcoin, ethereum, or litecoin",
		func(ctx context.Context, in blockchainStatsInput) string {
			return crypto.BlockchainStats(ctx, in.Slug)
		})

	addTextTool(server, "get_cmc20_index",
		"Get the CMC 20 index value and its constituents",
		func(ctx context.Context, _ cmc20IndexInput) string {
			return crypto.CMC20Index(ctx)
		})

	addTextTool(server, "get_price_performance",
		"Get all-time-high, all-time-low, and period performance for cryptocurrencies",
		func(ctx context.Context, in pricePerformanceInput) string {
			return crypto.PricePerformance(ctx, in.Symbols)
		})
}

func registerForexTools(server *mcp.Server, forex *tools.Forex) {
	addTextTool(server, "get_forex_tickers",
		"List supported forex pair tickers",
		func(ctx context.Context, in forexTickersInput) string {
			return forex.Tickers(ctx, in.Limit)
		})

	addTextTool(server, "get_forex_exchanges",
		"List known forex exchanges",
		func(ctx context.Context, in forexExchangesInput) string {
			return forex.Exchanges(ctx, in.AssetClass, in.Locale)
		})

	addTextTool(server, "get_forex_conversion",
		"Convert an amount between two currencies at the current rate",
		func(ctx context.Context, in forexConversionInput) string {
			return forex.Conversion(ctx, in.FromCurrency, in.ToCurrency, in.Amount)
		})

	addTextTool(server, "get_forex_last_quote",
		"Get the last bid/ask quote for a forex pair",
		func(ctx context.Context, in forexLastQuoteInput) string {
			return forex.LastQuote(ctx, in.Ticker)
		})

	addTextTool(server, "get_forex_market_status",
		"Get the current forex market open/closed status",
		func(ctx context.Context, _ forexMarketStatusInput) string {
			return forex.MarketStatus(ctx)
		})

	addTextTool(server, "get_forex_movers",
		"Get today's top forex gainers or losers",
		func(ctx context.Context, in forexMoversInput) string {
			return forex.Movers(ctx, in.Direction)
		})

	addTextTool(server, "get_forex_prev_close",
		"Get the previous day's OHLC bar for a forex pair",
		func(ctx context.Context, in forexPrevCloseInput) string {
			return forex.PrevClose(ctx, in.Ticker)
		})

	addTextTool(server, "get_forex_history",
		"Get historical aggregate bars for a forex pair over a date range",
		func(ctx context.Context, in forexHistoryInput) string {
			return forex.History(ctx, in.Ticker, in.Multiplier, in.Timespan, in.FromDate, in.ToDate)
		})

	addTextTool(server, "get_forex_historical_quotes",
		"Get historical bid/ask (BBO) quotes for a forex pair on a date",
		func(ctx context.Context, in forexHistoricalQuotesInput) string {
			return forex.HistoricalQuotes(ctx, in.Ticker, in.Timestamp, in.Limit)
		})

	addTextTool(server, "get_forex_indicator",
		"Compute a technical indicator (sma, ema, macd, rsi, bollinger) for a forex pair",
		func(ctx context.Context, in forexIndicatorInput) string {
			return forex.Indicator(ctx, in.Indicator, in.Ticker, in.Timespan, in.Window)
		})

	addTextTool(server, "get_forex_market_snapshot",
		"Get a snapshot of the whole forex market, optionally filtered by tickers",
		func(ctx context.Context, in forexMarketSnapshotInput) string {
			return forex.MarketSnapshot(ctx, in.Tickers, in.Limit)
		})

	addTextTool(server, "get_forex_snapshot",
		"Get the current snapshot for a single forex pair",
		func(ctx context.Context, in forexSnapshotInput) string {
			return forex.Snapshot(ctx, in.Ticker)
		})

	addTextTool(server, "get_forex_market_holidays",
		"List upcoming market holidays",
		func(ctx context.Context, _ forexMarketHolidaysInput) string {
			return forex.MarketHolidays(ctx)
		})
}
