package provider

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestQuotesResponseObjectOrArray(t *testing.T) {
	asObject := `{"data":{"BTC":{"name":"Bitcoin","symbol":"BTC","quote":{"USD":{"price":50000}}}}}`
	asArray := `{"data":{"BTC":[{"name":"Bitcoin","symbol":"BTC","quote":{"USD":{"price":50000}}}]}}`

	for _, raw := range []string{asObject, asArray} {
		var resp QuotesResponse
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		asset, ok := resp.Asset("BTC")
		if !ok {
			t.Fatalf("missing BTC entry in %s", raw)
		}
		if asset.Name != "Bitcoin" || asset.USD().Price != 50000 {
			t.Fatalf("unexpected asset: %+v", asset)
		}
	}
}

func TestFlexStringOrNumber(t *testing.T) {
	var payload struct {
		A Flex `json:"a"`
		B Flex `json:"b"`
		C Flex `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"123.4","b":567,"c":null}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.A.String() != "123.4" {
		t.Fatalf("string form: got %q", payload.A.String())
	}
	if payload.B.String() != "567" {
		t.Fatalf("number form: got %q", payload.B.String())
	}
	if payload.C.String() != "N/A" {
		t.Fatalf("null form: got %q", payload.C.String())
	}
}

func TestGetQuotesServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	doer := &fakeDoer{body: `{"data":{"BTC":{"name":"Bitcoin","symbol":"BTC","quote":{"USD":{"price":50000}}}}}`}
	cmc := NewCoinMarketCap(testClient(doer), CoinMarketCapOptions{
		Cache:    cacheClient,
		CacheTTL: time.Minute,
	})

	ctx := context.Background()
	if _, err := cmc.GetQuotes(ctx, []string{"BTC"}); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	resp, err := cmc.GetQuotes(ctx, []string{"BTC"})
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if doer.calls != 1 {
		t.Fatalf("expected second call to hit the cache, got %d upstream calls", doer.calls)
	}
	if asset, ok := resp.Asset("BTC"); !ok || asset.USD().Price != 50000 {
		t.Fatalf("unexpected cached response: %+v", resp)
	}
}

func TestGetQuotesCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	doer := &fakeDoer{body: `{"data":{}}`}
	cmc := NewCoinMarketCap(testClient(doer), CoinMarketCapOptions{
		Cache:    cacheClient,
		CacheTTL: time.Second,
	})

	ctx := context.Background()
	if _, err := cmc.GetQuotes(ctx, []string{"BTC"}); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, err := cmc.GetQuotes(ctx, []string{"BTC"}); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if doer.calls != 2 {
		t.Fatalf("expected expired entry to refetch, got %d upstream calls", doer.calls)
	}
}

func TestGetQuotesWithoutCache(t *testing.T) {
	doer := &fakeDoer{body: `{"data":{}}`}
	cmc := NewCoinMarketCap(testClient(doer), CoinMarketCapOptions{})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := cmc.GetQuotes(ctx, []string{"BTC"}); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if doer.calls != 2 {
		t.Fatalf("expected no caching without redis, got %d upstream calls", doer.calls)
	}
}

func TestGetListingsParams(t *testing.T) {
	doer := &fakeDoer{body: `{"data":[]}`}
	cmc := NewCoinMarketCap(testClient(doer), CoinMarketCapOptions{})

	if _, err := cmc.GetListings(context.Background(), 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/v1/cryptocurrency/listings/latest" {
		t.Fatalf("unexpected path: %s", got)
	}
	q := doer.lastReq.URL.Query()
	if q.Get("limit") != "25" || q.Get("sort") != "market_cap" {
		t.Fatalf("unexpected params: %s", doer.lastReq.URL.RawQuery)
	}
}

func TestGetFearAndGreedPath(t *testing.T) {
	doer := &fakeDoer{body: `{"data":{"value":72,"value_classification":"Greed","timestamp":"2024-04-01T00:00:00Z"}}`}
	cmc := NewCoinMarketCap(testClient(doer), CoinMarketCapOptions{})

	resp, err := cmc.GetFearAndGreed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/v3/fear-and-greed/latest" {
		t.Fatalf("unexpected path: %s", got)
	}
	if resp.Data.Value != 72 || resp.Data.ValueClassification != "Greed" {
		t.Fatalf("unexpected decode: %+v", resp.Data)
	}
}
