package provider

import (
	"context"
	"errors"
	"testing"

	"marketgate/internal/domain"
)

func TestEnsurePrefix(t *testing.T) {
	cases := map[string]string{
		"eurusd":   "C:EURUSD",
		"C:EURUSD": "C:EURUSD",
		"X:BTCUSD": "C:BTCUSD",
		" gbpjpy ": "C:GBPJPY",
	}
	for raw, want := range cases {
		if got := EnsurePrefix(raw); got != want {
			t.Fatalf("EnsurePrefix(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSplitPair(t *testing.T) {
	cases := []struct {
		raw         string
		base, quote string
	}{
		{"EURUSD", "EUR", "USD"},
		{"C:EURUSD", "EUR", "USD"},
		{"eur-usd", "EUR", "USD"},
		{"X:GBP-JPY", "GBP", "JPY"},
	}
	for _, tc := range cases {
		base, quote, err := SplitPair(tc.raw)
		if err != nil {
			t.Fatalf("SplitPair(%q): %v", tc.raw, err)
		}
		if base != tc.base || quote != tc.quote {
			t.Fatalf("SplitPair(%q) = %s/%s, want %s/%s", tc.raw, base, quote, tc.base, tc.quote)
		}
	}

	_, _, err := SplitPair("EURUSDX")
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLastQuoteBuildsCurrencyPath(t *testing.T) {
	doer := &fakeDoer{body: `{"last":{"ask":1.1,"bid":1.09,"timestamp":1700000000}}`}
	massive := NewMassive(testClient(doer))

	resp, err := massive.LastQuote(context.Background(), "C:EURUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/v1/last_quote/currencies/EUR/USD" {
		t.Fatalf("unexpected path: %s", got)
	}
	if resp.Last == nil || resp.Last.Ask != 1.1 {
		t.Fatalf("unexpected decode: %+v", resp)
	}
}

func TestHistoricalQuotesCapsLimit(t *testing.T) {
	doer := &fakeDoer{body: `{"results":[]}`}
	massive := NewMassive(testClient(doer))

	if _, err := massive.HistoricalQuotes(context.Background(), "EURUSD", "2024-01-02", 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := doer.lastReq.URL.Query()
	if got := q.Get("limit"); got != "1000" {
		t.Fatalf("expected capped limit 1000, got %s", got)
	}
	if got := q.Get("timestamp"); got != "2024-01-02" {
		t.Fatalf("unexpected timestamp: %s", got)
	}
	if got := doer.lastReq.URL.Path; got != "/v3/quotes/C:EURUSD" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestCustomBarsPath(t *testing.T) {
	doer := &fakeDoer{body: `{"results":[]}`}
	massive := NewMassive(testClient(doer))

	if _, err := massive.CustomBars(context.Background(), "EURUSD", 4, "hour", "2024-01-01", "2024-01-31", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "/v2/aggs/ticker/C:EURUSD/range/4/hour/2024-01-01/2024-01-31"
	if got := doer.lastReq.URL.Path; got != want {
		t.Fatalf("unexpected path: %s", got)
	}
	if got := doer.lastReq.URL.Query().Get("sort"); got != "asc" {
		t.Fatalf("expected default sort asc, got %s", got)
	}
}

func TestIndicatorMapsBollingerToBBands(t *testing.T) {
	doer := &fakeDoer{body: `{"results":{"values":[]}}`}
	massive := NewMassive(testClient(doer))

	if _, err := massive.Indicator(context.Background(), domain.IndicatorBollinger, "EURUSD", "day", 20, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/v1/indicators/bbands/C:EURUSD" {
		t.Fatalf("unexpected path: %s", got)
	}
	q := doer.lastReq.URL.Query()
	if q.Get("window") != "20" || q.Get("series_type") != "close" {
		t.Fatalf("unexpected params: %s", doer.lastReq.URL.RawQuery)
	}
}

func TestIndicatorRejectsUnknownKind(t *testing.T) {
	doer := &fakeDoer{}
	massive := NewMassive(testClient(doer))

	_, err := massive.Indicator(context.Background(), "vwap", "EURUSD", "day", 14, 10)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if doer.calls != 0 {
		t.Fatalf("expected no HTTP calls, got %d", doer.calls)
	}
}

func TestMoversPath(t *testing.T) {
	doer := &fakeDoer{body: `{"tickers":[]}`}
	massive := NewMassive(testClient(doer))

	if _, err := massive.Movers(context.Background(), "gainers"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/v2/snapshot/locale/global/markets/forex/gainers" {
		t.Fatalf("unexpected path: %s", got)
	}
}
