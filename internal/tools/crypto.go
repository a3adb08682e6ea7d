package tools

import (
	"context"
	"fmt"
	"strings"

	"marketgate/internal/domain"
)

// Crypto holds the tool functions backed by the CoinMarketCap service. Every
// method follows the same contract: validate, call one service method, return
// display text. Failures come back as text too, never as an error.
type Crypto struct {
	api CryptoAPI
}

func NewCrypto(api CryptoAPI) *Crypto {
	return &Crypto{api: api}
}

// Prices returns current USD prices for one or more symbols, one line per
// requested symbol in request order.
func (t *Crypto) Prices(ctx context.Context, symbols string) string {
	list, err := normalizeSymbols(symbols)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetQuotes(ctx, list)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Cryptocurrency Prices:", dashRule}
	for _, symbol := range list {
		if asset, ok := resp.Asset(symbol); ok {
			lines = append(lines, fmt.Sprintf("%s (%s): %s", asset.Name, symbol, usd(asset.USD().Price)))
		}
	}
	return joinLines(lines)
}

func (t *Crypto) TopCryptos(ctx context.Context, limit int) string {
	limit, err := normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetListings(ctx, limit)
	if err != nil {
		return errorText(err)
	}

	lines := []string{fmt.Sprintf("Top %d Cryptocurrencies by Market Cap:", limit), equalRule}
	for _, asset := range resp.Data {
		lines = append(lines, fmt.Sprintf("#%d %s (%s): %s", asset.CMCRank, asset.Name, asset.Symbol, usd(asset.USD().Price)))
	}
	return joinLines(lines)
}

func (t *Crypto) Metadata(ctx context.Context, symbols string) string {
	list, err := normalizeSymbols(symbols)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetInfo(ctx, strings.Join(list, ","))
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Cryptocurrency Metadata:", dashRule}
	for _, symbol := range list {
		entries := resp.Data[symbol]
		if len(entries) == 0 {
			continue
		}
		info := entries[0]
		lines = append(lines,
			fmt.Sprintf("%s (%s):", info.Name, symbol),
			"  Description: "+truncate(info.Description, 200),
			"  Website: "+firstOr(info.URLs.Website, "N/A"),
			"  Logo: "+orNA(info.Logo),
			"  Technical Doc: "+firstOr(info.URLs.TechnicalDoc, "N/A"),
			"",
		)
	}
	return joinLines(lines)
}

func (t *Crypto) HistoricalPrices(ctx context.Context, symbols, timeStart, timeEnd, interval string) string {
	list, err := normalizeSymbols(symbols)
	if err != nil {
		return errorText(err)
	}
	if interval == "" {
		interval = "daily"
	}
	resp, err := t.api.GetHistoricalQuotes(ctx, strings.Join(list, ","), timeStart, timeEnd, interval)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Historical Cryptocurrency Prices:", dashRule}
	for _, symbol := range list {
		entries := resp.Data[symbol]
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s Historical Data:", symbol))
		quotes := entries[0].Quotes
		if len(quotes) > 10 {
			quotes = quotes[:10]
		}
		for _, quote := range quotes {
			lines = append(lines, fmt.Sprintf("  %s: %s", orNA(quote.Timestamp), usd(quote.Quote["USD"].Price)))
		}
		lines = append(lines, "")
	}
	return joinLines(lines)
}

func (t *Crypto) Trending(ctx context.Context, limit int, timePeriod string) string {
	limit, err := normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	period, err := normalizeEnum(timePeriod, "24h", "time period", domain.TrendingPeriods)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetTrending(ctx, limit, period)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{fmt.Sprintf("Top %d Trending Cryptos (%s):", limit, period), equalRule}
	for _, asset := range resp.Data {
		lines = append(lines, fmt.Sprintf("#%d %s (%s): %s", asset.Rank, asset.Name, asset.Symbol, usd(asset.USD().Price)))
	}
	return joinLines(lines)
}

func (t *Crypto) GlobalMetrics(ctx context.Context) string {
	resp, err := t.api.GetGlobalMetrics(ctx)
	if err != nil {
		return errorText(err)
	}
	data := resp.Data
	quote := data.Quote["USD"]

	lines := []string{
		"Global Crypto Metrics:",
		dashRule,
		"Total Market Cap: " + usd(quote.TotalMarketCap),
		"24h Volume: " + usd(quote.TotalVolume24h),
		fmt.Sprintf("BTC Dominance: %.2f%%", data.BTCDominance),
		fmt.Sprintf("Active Cryptocurrencies: %d", data.ActiveCryptocurrencies),
		fmt.Sprintf("Active Exchanges: %d", data.ActiveExchanges),
	}
	return joinLines(lines)
}

func (t *Crypto) MarketPairs(ctx context.Context, symbol string, limit int) string {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return errorText(err)
	}
	limit, err = normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetMarketPairs(ctx, symbol, limit)
	if err != nil {
		return errorText(err)
	}
	pairs := resp.Data.MarketPairs
	if len(pairs) == 0 {
		return noDataText
	}
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}

	lines := []string{fmt.Sprintf("Market Pairs for %s (%s):", resp.Data.Name, symbol), dashRule}
	for _, pair := range pairs {
		quote := pair.Quote["USD"]
		lines = append(lines, fmt.Sprintf("%s - %s/%s: %s (Vol: %s)",
			orNA(pair.Exchange.Name), pair.BaseSymbol, pair.QuoteSymbol, usd(quote.Price), usd(quote.Volume24h)))
	}
	return joinLines(lines)
}

func (t *Crypto) OHLCVLatest(ctx context.Context, symbols string) string {
	list, err := normalizeSymbols(symbols)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetOHLCVLatest(ctx, strings.Join(list, ","))
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Latest OHLCV Data:", dashRule}
	for _, symbol := range list {
		entries := resp.Data[symbol]
		if len(entries) == 0 {
			continue
		}
		ohlcv := entries[0].Quote["USD"]
		lines = append(lines,
			symbol+":",
			"  Open: "+usd(ohlcv.Open),
			"  High: "+usd(ohlcv.High),
			"  Low: "+usd(ohlcv.Low),
			"  Close: "+usd(ohlcv.Close),
			"  Volume: "+usd(ohlcv.Volume),
			"",
		)
	}
	return joinLines(lines)
}

func (t *Crypto) TopExchanges(ctx context.Context, limit int) string {
	limit, err := normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetExchangeListings(ctx, limit)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{fmt.Sprintf("Top %d Exchanges by Volume:", limit), equalRule}
	for _, exchange := range resp.Data {
		lines = append(lines, fmt.Sprintf("#%d %s: 24h Volume %s | Liquidity Score: %s",
			exchange.Rank, exchange.Name, usd(exchange.Quote["USD"].Volume24h), exchange.LiquidityScore))
	}
	return joinLines(lines)
}

func (t *Crypto) Map(ctx context.Context, limit int, listingStatus string) string {
	limit, err := normalizeLimit(limit, 100, 5000)
	if err != nil {
		return errorText(err)
	}
	status, err := normalizeEnum(listingStatus, "active", "listing status", domain.ListingStatuses)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetMap(ctx, limit, status)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{fmt.Sprintf("Cryptocurrency Map (%s, top %d):", status, limit), dashRule}
	for _, entry := range resp.Data {
		rank := "N/A"
		if entry.Rank > 0 {
			rank = fmt.Sprintf("%d", entry.Rank)
		}
		lines = append(lines, fmt.Sprintf("ID: %d | %s (%s) | Rank: %s | First Historical Data: %s",
			entry.ID, entry.Name, entry.Symbol, rank, orNA(entry.FirstHistoricalData)))
	}
	return joinLines(lines)
}

func (t *Crypto) Categories(ctx context.Context, limit int) string {
	limit, err := normalizeLimit(limit, 100, 500)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetCategories(ctx, limit)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Cryptocurrency Categories:", dashRule}
	for _, category := range resp.Data {
		lines = append(lines, fmt.Sprintf("%s (ID: %s) | Num Coins: %d | Avg Price Change 24h: %.2f%%",
			category.Name, category.ID, category.NumTokens, category.AvgPriceChange))
	}
	return joinLines(lines)
}

func (t *Crypto) FearAndGreed(ctx context.Context) string {
	resp, err := t.api.GetFearAndGreed(ctx)
	if err != nil {
		return errorText(err)
	}
	data := resp.Data
	lines := []string{
		"Crypto Fear & Greed Index:",
		dashRule,
		fmt.Sprintf("Value: %d (%s)", data.Value, orNA(data.ValueClassification)),
		"Timestamp: " + orNA(data.Timestamp),
	}
	return joinLines(lines)
}

func (t *Crypto) HistoricalTop(ctx context.Context, date string, limit int) string {
	date, err := normalizeDate(date)
	if err != nil {
		return errorText(err)
	}
	limit, err = normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetHistoricalListings(ctx, date, limit)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{fmt.Sprintf("Top %d Cryptocurrencies by Market Cap on %s:", limit, date), equalRule}
	for _, asset := range resp.Data {
		lines = append(lines, fmt.Sprintf("#%d %s (%s): %s", asset.CMCRank, asset.Name, asset.Symbol, usd(asset.USD().Price)))
	}
	return joinLines(lines)
}

func (t *Crypto) News(ctx context.Context, symbols string, limit int) string {
	limit, err := normalizeLimit(limit, 10, 100)
	if err != nil {
		return errorText(err)
	}
	joined := ""
	if strings.TrimSpace(symbols) != "" {
		list, err := normalizeSymbols(symbols)
		if err != nil {
			return errorText(err)
		}
		joined = strings.Join(list, ",")
	}
	resp, err := t.api.GetLatestContent(ctx, joined, limit)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Latest Crypto News:", dashRule}
	for _, item := range resp.Data {
		lines = append(lines,
			fmt.Sprintf("%s (%s)", orNA(item.Title), orNA(item.PublishedAt)),
			"  Source: "+orNA(item.Source.Name),
			"  Summary: "+truncate(item.Description, 200),
			"  URL: "+orNA(item.URL),
			"",
		)
	}
	return joinLines(lines)
}

func (t *Crypto) BlockchainStats(ctx context.Context, slug string) string {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetBlockchainStats(ctx, slug)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	stats, ok := resp.Data[slug]
	if !ok {
		// Single-blockchain responses may be keyed by id rather than slug.
		for _, entry := range resp.Data {
			stats = entry
			break
		}
	}

	lines := []string{
		fmt.Sprintf("Blockchain Stats for %s:", capitalize(slug)),
		dashRule,
		"Hashrate: " + stats.Hashrate.String(),
		"Transaction Count 24h: " + stats.TransactionCount24h.String(),
		"Average Transaction Fee USD: $" + stats.AverageTransactionFeeUSD.String(),
		"Difficulty: " + stats.Difficulty.String(),
	}
	return joinLines(lines)
}

func (t *Crypto) CMC20Index(ctx context.Context) string {
	resp, err := t.api.GetCMC20Index(ctx)
	if err != nil {
		return errorText(err)
	}
	data := resp.Data

	lines := []string{
		"CMC 20 Index:",
		dashRule,
		fmt.Sprintf("Value: %.2f", data.Value),
		"Timestamp: " + orNA(data.Timestamp),
		"Constituents:",
	}
	constituents := data.Constituents
	if len(constituents) > 20 {
		constituents = constituents[:20]
	}
	for _, constituent := range constituents {
		lines = append(lines, fmt.Sprintf("  %s (%s): Weight %.2f%%", constituent.Name, constituent.Symbol, constituent.Weight))
	}
	return joinLines(lines)
}

func (t *Crypto) PricePerformance(ctx context.Context, symbols string) string {
	list, err := normalizeSymbols(symbols)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.GetPricePerformance(ctx, strings.Join(list, ","))
	if err != nil {
		return errorText(err)
	}
	if len(resp.Data) == 0 {
		return noDataText
	}

	lines := []string{"Price Performance Stats:", dashRule}
	for _, symbol := range list {
		entries := resp.Data[symbol]
		if len(entries) == 0 {
			continue
		}
		stats := entries[0]
		usdStats := stats.Quote["USD"]
		lines = append(lines,
			fmt.Sprintf("%s (%s):", stats.Name, symbol),
			fmt.Sprintf("  All-Time High: %s (%.2f%% down)", usd(usdStats.AllTimeHigh.Price), usdStats.AllTimeHigh.PercentDown),
			fmt.Sprintf("  All-Time Low: %s", usd(usdStats.AllTimeLow.Price)),
			fmt.Sprintf("  24h Change: %.2f%%", usdStats.PercentChange24h),
			fmt.Sprintf("  7d Change: %.2f%%", usdStats.PercentChange7d),
			fmt.Sprintf("  30d Change: %.2f%%", usdStats.PercentChange30d),
			"",
		)
	}
	return joinLines(lines)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
