package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CoinMarketCap exposes one method per upstream endpoint. Parameters pass
// through with minimal transformation and response bodies come back as typed
// views of the upstream JSON; nothing is aggregated here.
type CoinMarketCap struct {
	client *Client
	cache  *redis.Client
	ttl    time.Duration
}

type CoinMarketCapOptions struct {
	Cache    *redis.Client
	CacheTTL time.Duration
}

func NewCoinMarketCap(client *Client, opts CoinMarketCapOptions) *CoinMarketCap {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CoinMarketCap{client: client, cache: opts.Cache, ttl: ttl}
}

// getJSON fetches path, optionally serving the raw body from the short-TTL
// cache. Cache failures degrade to a direct upstream call.
func (s *CoinMarketCap) getJSON(ctx context.Context, path string, params url.Values, cacheable bool, out any) error {
	var key string
	if cacheable && s.cache != nil {
		key = "cmc:" + path + "?" + params.Encode()
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			if json.Unmarshal(raw, out) == nil {
				return nil
			}
		} else if err != redis.Nil {
			slog.Warn("cmc cache read failed", "key", key, "error", err)
		}
	}

	body, err := s.client.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if key != "" {
		if err := s.cache.Set(ctx, key, body, s.ttl).Err(); err != nil {
			slog.Warn("cmc cache write failed", "key", key, "error", err)
		}
	}
	return json.Unmarshal(body, out)
}

func (s *CoinMarketCap) GetQuotes(ctx context.Context, symbols []string) (*QuotesResponse, error) {
	params := url.Values{"symbol": {strings.Join(symbols, ",")}}
	var out QuotesResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/quotes/latest", params, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetListings(ctx context.Context, limit int) (*ListingsResponse, error) {
	params := url.Values{"limit": {itoa(limit)}, "sort": {"market_cap"}}
	var out ListingsResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/listings/latest", params, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetInfo(ctx context.Context, symbols string) (*InfoResponse, error) {
	params := url.Values{"symbol": {symbols}}
	var out InfoResponse
	if err := s.getJSON(ctx, "/v2/cryptocurrency/info", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetHistoricalQuotes(ctx context.Context, symbols, timeStart, timeEnd, interval string) (*HistoricalQuotesResponse, error) {
	params := url.Values{"symbol": {symbols}, "interval": {interval}}
	if timeStart != "" {
		params.Set("time_start", timeStart)
	}
	if timeEnd != "" {
		params.Set("time_end", timeEnd)
	}
	var out HistoricalQuotesResponse
	if err := s.getJSON(ctx, "/v2/cryptocurrency/quotes/historical", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetTrending(ctx context.Context, limit int, timePeriod string) (*ListingsResponse, error) {
	params := url.Values{"limit": {itoa(limit)}, "time_period": {timePeriod}}
	var out ListingsResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/trending/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetGlobalMetrics(ctx context.Context) (*GlobalMetricsResponse, error) {
	var out GlobalMetricsResponse
	if err := s.getJSON(ctx, "/v1/global-metrics/quotes/latest", url.Values{}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetMarketPairs(ctx context.Context, symbol string, limit int) (*MarketPairsResponse, error) {
	params := url.Values{"symbol": {symbol}, "limit": {itoa(limit)}}
	var out MarketPairsResponse
	if err := s.getJSON(ctx, "/v2/cryptocurrency/market-pairs/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetOHLCVLatest(ctx context.Context, symbols string) (*OHLCVResponse, error) {
	params := url.Values{"symbol": {symbols}}
	var out OHLCVResponse
	if err := s.getJSON(ctx, "/v2/cryptocurrency/ohlcv/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetExchangeListings(ctx context.Context, limit int) (*ExchangeListingsResponse, error) {
	params := url.Values{"limit": {itoa(limit)}}
	var out ExchangeListingsResponse
	if err := s.getJSON(ctx, "/v1/exchange/listings/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetMap(ctx context.Context, limit int, listingStatus string) (*MapResponse, error) {
	params := url.Values{"limit": {itoa(limit)}, "listing_status": {listingStatus}}
	var out MapResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/map", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetCategories(ctx context.Context, limit int) (*CategoriesResponse, error) {
	params := url.Values{"limit": {itoa(limit)}}
	var out CategoriesResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/categories", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetFearAndGreed(ctx context.Context) (*FearAndGreedResponse, error) {
	var out FearAndGreedResponse
	if err := s.getJSON(ctx, "/v3/fear-and-greed/latest", url.Values{}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetHistoricalListings(ctx context.Context, date string, limit int) (*ListingsResponse, error) {
	params := url.Values{"date": {date}, "limit": {itoa(limit)}}
	var out ListingsResponse
	if err := s.getJSON(ctx, "/v1/cryptocurrency/listings/historical", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetLatestContent(ctx context.Context, symbols string, limit int) (*ContentResponse, error) {
	params := url.Values{"limit": {itoa(limit)}}
	if symbols != "" {
		params.Set("symbol", symbols)
	}
	var out ContentResponse
	if err := s.getJSON(ctx, "/v1/content/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetBlockchainStats(ctx context.Context, slug string) (*BlockchainStatsResponse, error) {
	params := url.Values{"slug": {slug}}
	var out BlockchainStatsResponse
	if err := s.getJSON(ctx, "/v1/blockchain/statistics/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetCMC20Index(ctx context.Context) (*CMC20IndexResponse, error) {
	var out CMC20IndexResponse
	if err := s.getJSON(ctx, "/v3/index/cmc20-latest", url.Values{}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoinMarketCap) GetPricePerformance(ctx context.Context, symbols string) (*PricePerformanceResponse, error) {
	params := url.Values{"symbol": {symbols}}
	var out PricePerformanceResponse
	if err := s.getJSON(ctx, "/v2/cryptocurrency/price-performance-stats/latest", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
