package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"marketgate/internal/provider"
	"marketgate/internal/tools"
)

// errUnused marks service methods no test is expected to reach.
var errUnused = errors.New("stub method not wired")

type stubCrypto struct {
	quotes *provider.QuotesResponse
}

func (s *stubCrypto) GetQuotes(ctx context.Context, symbols []string) (*provider.QuotesResponse, error) {
	return s.quotes, nil
}

func (s *stubCrypto) GetListings(context.Context, int) (*provider.ListingsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetInfo(context.Context, string) (*provider.InfoResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetHistoricalQuotes(context.Context, string, string, string, string) (*provider.HistoricalQuotesResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetTrending(context.Context, int, string) (*provider.ListingsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetGlobalMetrics(context.Context) (*provider.GlobalMetricsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetMarketPairs(context.Context, string, int) (*provider.MarketPairsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetOHLCVLatest(context.Context, string) (*provider.OHLCVResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetExchangeListings(context.Context, int) (*provider.ExchangeListingsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetMap(context.Context, int, string) (*provider.MapResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetCategories(context.Context, int) (*provider.CategoriesResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetFearAndGreed(context.Context) (*provider.FearAndGreedResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetHistoricalListings(context.Context, string, int) (*provider.ListingsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetLatestContent(context.Context, string, int) (*provider.ContentResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetBlockchainStats(context.Context, string) (*provider.BlockchainStatsResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetCMC20Index(context.Context) (*provider.CMC20IndexResponse, error) {
	return nil, errUnused
}

func (s *stubCrypto) GetPricePerformance(context.Context, string) (*provider.PricePerformanceResponse, error) {
	return nil, errUnused
}

type stubForex struct {
	status *provider.MarketStatus
}

func (s *stubForex) ListTickers(context.Context, int) (*provider.TickersResponse, error) {
	return nil, errUnused
}

func (s *stubForex) ListExchanges(context.Context, string, string) (*provider.ExchangesResponse, error) {
	return nil, errUnused
}

func (s *stubForex) MarketStatus(context.Context) (*provider.MarketStatus, error) {
	return s.status, nil
}

func (s *stubForex) MarketHolidays(context.Context) ([]provider.MarketHoliday, error) {
	return nil, errUnused
}

func (s *stubForex) Convert(context.Context, string, string, float64) (*provider.ConversionResult, error) {
	return nil, errUnused
}

func (s *stubForex) LastQuote(context.Context, string) (*provider.LastQuoteResponse, error) {
	return nil, errUnused
}

func (s *stubForex) HistoricalQuotes(context.Context, string, string, int) (*provider.BBOQuotesResponse, error) {
	return nil, errUnused
}

func (s *stubForex) SnapshotTicker(context.Context, string) (*provider.SnapshotResponse, error) {
	return nil, errUnused
}

func (s *stubForex) SnapshotAll(context.Context, string) (*provider.SnapshotsResponse, error) {
	return nil, errUnused
}

func (s *stubForex) Movers(context.Context, string) (*provider.SnapshotsResponse, error) {
	return nil, errUnused
}

func (s *stubForex) PrevClose(context.Context, string) (*provider.AggsResponse, error) {
	return nil, errUnused
}

func (s *stubForex) CustomBars(context.Context, string, int, string, string, string, string) (*provider.AggsResponse, error) {
	return nil, errUnused
}

func (s *stubForex) Indicator(context.Context, string, string, string, int, int) (*provider.IndicatorResponse, error) {
	return nil, errUnused
}

func testServer(t *testing.T) *sdkmcp.Server {
	t.Helper()

	var quotes provider.QuotesResponse
	fixture := `{"data":{"BTC":{"name":"Bitcoin","symbol":"BTC","quote":{"USD":{"price":50000}}}}}`
	if err := json.Unmarshal([]byte(fixture), &quotes); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	status := &provider.MarketStatus{Market: "open", ServerTime: "2024-04-01T12:00:00Z"}
	status.Currencies.FX = "open"

	crypto := tools.NewCrypto(&stubCrypto{quotes: &quotes})
	forex := tools.NewForex(&stubForex{status: status})
	return NewServer(nil, crypto, forex, ServerConfig{RequestTimeout: time.Second})
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}

func textContent(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text
}
