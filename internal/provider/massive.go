package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"marketgate/internal/domain"
)

const maxAggLimit = 50000

// Massive exposes the forex provider's REST surface, one method per endpoint.
// Indicator math is computed upstream; this layer only shapes requests.
type Massive struct {
	client *Client
}

func NewMassive(client *Client) *Massive {
	return &Massive{client: client}
}

// EnsurePrefix normalizes a pair ticker to the provider's C:-prefixed form.
func EnsurePrefix(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	ticker = strings.TrimPrefix(ticker, "X:")
	ticker = strings.TrimPrefix(ticker, "C:")
	return "C:" + ticker
}

// SplitPair splits EURUSD or EUR-USD into (base, quote). Unknown formats are a
// validation error; the provider would reject them with a less useful message.
func SplitPair(ticker string) (string, string, error) {
	clean := strings.ToUpper(strings.TrimSpace(ticker))
	clean = strings.TrimPrefix(clean, "C:")
	clean = strings.TrimPrefix(clean, "X:")

	if parts := strings.Split(clean, "-"); len(parts) == 2 {
		return parts[0], parts[1], nil
	}
	if len(clean) == 6 {
		return clean[:3], clean[3:], nil
	}
	return "", "", domain.Validationf("invalid ticker format: %q, expected 6 chars (EURUSD) or hyphenated (EUR-USD)", ticker)
}

func (s *Massive) ListTickers(ctx context.Context, limit int) (*TickersResponse, error) {
	params := url.Values{"market": {"fx"}, "limit": {itoa(limit)}}
	var out TickersResponse
	if err := s.client.GetJSON(ctx, "/v3/reference/tickers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) ListExchanges(ctx context.Context, assetClass, locale string) (*ExchangesResponse, error) {
	params := url.Values{"asset_class": {assetClass}, "locale": {locale}}
	var out ExchangesResponse
	if err := s.client.GetJSON(ctx, "/v3/reference/exchanges", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) MarketStatus(ctx context.Context) (*MarketStatus, error) {
	var out MarketStatus
	if err := s.client.GetJSON(ctx, "/v1/marketstatus/now", url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) MarketHolidays(ctx context.Context) ([]MarketHoliday, error) {
	var out []MarketHoliday
	if err := s.client.GetJSON(ctx, "/v1/marketstatus/upcoming", url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Massive) Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error) {
	path := fmt.Sprintf("/v1/conversion/%s/%s", from, to)
	params := url.Values{
		"amount":    {strconv.FormatFloat(amount, 'f', -1, 64)},
		"precision": {"2"},
	}
	var out ConversionResult
	if err := s.client.GetJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) LastQuote(ctx context.Context, ticker string) (*LastQuoteResponse, error) {
	base, quote, err := SplitPair(ticker)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/v1/last_quote/currencies/%s/%s", base, quote)
	var out LastQuoteResponse
	if err := s.client.GetJSON(ctx, path, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) HistoricalQuotes(ctx context.Context, ticker, timestamp string, limit int) (*BBOQuotesResponse, error) {
	if limit > 1000 {
		limit = 1000
	}
	params := url.Values{
		"limit": {itoa(limit)},
		"order": {"asc"},
		"sort":  {"timestamp"},
	}
	if timestamp != "" {
		params.Set("timestamp", timestamp)
	}
	path := "/v3/quotes/" + url.PathEscape(EnsurePrefix(ticker))
	var out BBOQuotesResponse
	if err := s.client.GetJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) SnapshotTicker(ctx context.Context, ticker string) (*SnapshotResponse, error) {
	path := "/v2/snapshot/locale/global/markets/forex/tickers/" + url.PathEscape(EnsurePrefix(ticker))
	var out SnapshotResponse
	if err := s.client.GetJSON(ctx, path, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) SnapshotAll(ctx context.Context, tickers string) (*SnapshotsResponse, error) {
	params := url.Values{}
	if tickers != "" {
		params.Set("tickers", tickers)
	}
	var out SnapshotsResponse
	if err := s.client.GetJSON(ctx, "/v2/snapshot/locale/global/markets/forex/tickers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) Movers(ctx context.Context, direction string) (*SnapshotsResponse, error) {
	path := "/v2/snapshot/locale/global/markets/forex/" + url.PathEscape(direction)
	var out SnapshotsResponse
	if err := s.client.GetJSON(ctx, path, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) PrevClose(ctx context.Context, ticker string) (*AggsResponse, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/prev", url.PathEscape(EnsurePrefix(ticker)))
	params := url.Values{"adjusted": {"true"}}
	var out AggsResponse
	if err := s.client.GetJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Massive) CustomBars(ctx context.Context, ticker string, multiplier int, timespan, fromDate, toDate, sort string) (*AggsResponse, error) {
	if sort == "" {
		sort = "asc"
	}
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/%d/%s/%s/%s",
		url.PathEscape(EnsurePrefix(ticker)), multiplier, url.PathEscape(timespan),
		url.PathEscape(fromDate), url.PathEscape(toDate))
	params := url.Values{
		"adjusted": {"true"},
		"sort":     {sort},
		"limit":    {itoa(maxAggLimit)},
	}
	var out AggsResponse
	if err := s.client.GetJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// indicatorPaths maps the tool vocabulary to provider endpoint names.
var indicatorPaths = map[string]string{
	domain.IndicatorSMA:       "sma",
	domain.IndicatorEMA:       "ema",
	domain.IndicatorMACD:      "macd",
	domain.IndicatorRSI:       "rsi",
	domain.IndicatorBollinger: "bbands",
}

func (s *Massive) Indicator(ctx context.Context, kind, ticker, timespan string, window, limit int) (*IndicatorResponse, error) {
	endpoint, ok := indicatorPaths[kind]
	if !ok {
		return nil, domain.Validationf("unsupported indicator type: %s", kind)
	}
	path := fmt.Sprintf("/v1/indicators/%s/%s", endpoint, url.PathEscape(EnsurePrefix(ticker)))
	params := url.Values{
		"timespan":    {timespan},
		"window":      {itoa(window)},
		"series_type": {"close"},
		"limit":       {itoa(limit)},
		"order":       {"desc"},
		"adjusted":    {"true"},
	}
	var out IndicatorResponse
	if err := s.client.GetJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
