package tools

import (
	"context"

	"marketgate/internal/provider"
)

// CryptoAPI is the slice of the CoinMarketCap service the crypto tools consume.
type CryptoAPI interface {
	GetQuotes(ctx context.Context, symbols []string) (*provider.QuotesResponse, error)
	GetListings(ctx context.Context, limit int) (*provider.ListingsResponse, error)
	GetInfo(ctx context.Context, symbols string) (*provider.InfoResponse, error)
	GetHistoricalQuotes(ctx context.Context, symbols, timeStart, timeEnd, interval string) (*provider.HistoricalQuotesResponse, error)
	GetTrending(ctx context.Context, limit int, timePeriod string) (*provider.ListingsResponse, error)
	GetGlobalMetrics(ctx context.Context) (*provider.GlobalMetricsResponse, error)
	GetMarketPairs(ctx context.Context, symbol string, limit int) (*provider.MarketPairsResponse, error)
	GetOHLCVLatest(ctx context.Context, symbols string) (*provider.OHLCVResponse, error)
	GetExchangeListings(ctx context.Context, limit int) (*provider.ExchangeListingsResponse, error)
	GetMap(ctx context.Context, limit int, listingStatus string) (*provider.MapResponse, error)
	GetCategories(ctx context.Context, limit int) (*provider.CategoriesResponse, error)
	GetFearAndGreed(ctx context.Context) (*provider.FearAndGreedResponse, error)
	GetHistoricalListings(ctx context.Context, date string, limit int) (*provider.ListingsResponse, error)
	GetLatestContent(ctx context.Context, symbols string, limit int) (*provider.ContentResponse, error)
	GetBlockchainStats(ctx context.Context, slug string) (*provider.BlockchainStatsResponse, error)
	GetCMC20Index(ctx context.Context) (*provider.CMC20IndexResponse, error)
	GetPricePerformance(ctx context.Context, symbols string) (*provider.PricePerformanceResponse, error)
}

// ForexAPI is the slice of the Massive service the forex tools consume.
type ForexAPI interface {
	ListTickers(ctx context.Context, limit int) (*provider.TickersResponse, error)
	ListExchanges(ctx context.Context, assetClass, locale string) (*provider.ExchangesResponse, error)
	MarketStatus(ctx context.Context) (*provider.MarketStatus, error)
	MarketHolidays(ctx context.Context) ([]provider.MarketHoliday, error)
	Convert(ctx context.Context, from, to string, amount float64) (*provider.ConversionResult, error)
	LastQuote(ctx context.Context, ticker string) (*provider.LastQuoteResponse, error)
	HistoricalQuotes(ctx context.Context, ticker, timestamp string, limit int) (*provider.BBOQuotesResponse, error)
	SnapshotTicker(ctx context.Context, ticker string) (*provider.SnapshotResponse, error)
	SnapshotAll(ctx context.Context, tickers string) (*provider.SnapshotsResponse, error)
	Movers(ctx context.Context, direction string) (*provider.SnapshotsResponse, error)
	PrevClose(ctx context.Context, ticker string) (*provider.AggsResponse, error)
	CustomBars(ctx context.Context, ticker string, multiplier int, timespan, fromDate, toDate, sort string) (*provider.AggsResponse, error)
	Indicator(ctx context.Context, kind, ticker, timespan string, window, limit int) (*provider.IndicatorResponse, error)
}
