package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketgate/internal/domain"
)

// Forex holds the tool functions backed by the Massive service.
type Forex struct {
	api ForexAPI
	now func() time.Time
}

func NewForex(api ForexAPI) *Forex {
	return &Forex{api: api, now: time.Now}
}

func (t *Forex) Tickers(ctx context.Context, limit int) string {
	limit, err := normalizeLimit(limit, 100, 1000)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.ListTickers(ctx, limit)
	if err != nil {
		return errorText(err)
	}

	lines := []string{fmt.Sprintf("Forex Tickers (Top %d):", limit), dashRule}
	for _, ticker := range resp.Results {
		lines = append(lines, fmt.Sprintf("%s - %s (%s)", orNA(ticker.Ticker), orNA(ticker.Name), orNA(ticker.Locale)))
	}
	return joinLines(lines)
}

func (t *Forex) Exchanges(ctx context.Context, assetClass, locale string) string {
	if strings.TrimSpace(assetClass) == "" {
		assetClass = "fx"
	}
	if strings.TrimSpace(locale) == "" {
		locale = "global"
	}
	resp, err := t.api.ListExchanges(ctx, assetClass, locale)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Results) == 0 {
		return "No exchanges found."
	}

	lines := []string{"Forex Exchanges:", dashRule}
	for _, exchange := range resp.Results {
		lines = append(lines, fmt.Sprintf("ID: %d | Name: %s | Type: %s", exchange.ID, orNA(exchange.Name), orNA(exchange.Type)))
	}
	return joinLines(lines)
}

func (t *Forex) Conversion(ctx context.Context, fromCurrency, toCurrency string, amount float64) string {
	from, err := normalizeCurrency(fromCurrency)
	if err != nil {
		return errorText(err)
	}
	to, err := normalizeCurrency(toCurrency)
	if err != nil {
		return errorText(err)
	}
	if amount == 0 {
		amount = 1.0
	}
	if amount < 0 {
		return errorText(domain.Validationf("amount must be greater than zero"))
	}
	resp, err := t.api.Convert(ctx, from, to, amount)
	if err != nil {
		return errorText(err)
	}

	rate := 0.0
	if resp.Last != nil {
		rate = resp.Last.Ask
	}
	lines := []string{
		"Currency Conversion:",
		dashRule,
		fmt.Sprintf("%s %s -> %s", num4(amount), from, to),
		fmt.Sprintf("Result: %s %s", num4(resp.Converted), to),
		"Rate: " + num4(rate),
	}
	return joinLines(lines)
}

func (t *Forex) LastQuote(ctx context.Context, ticker string) string {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.LastQuote(ctx, ticker)
	if err != nil {
		return errorText(err)
	}
	if resp.Last == nil {
		return fmt.Sprintf("Note: Real-time Bid/Ask quotes for %s are unavailable or returned no data. Please use get_forex_prev_close for daily data.", ticker)
	}
	if resp.Last.Bid == 0 && resp.Last.Ask == 0 {
		return fmt.Sprintf("No active quote data found for %s.", ticker)
	}

	lines := []string{
		fmt.Sprintf("Last Quote for %s:", ticker),
		dashRule,
		fmt.Sprintf("Bid: %v", resp.Last.Bid),
		fmt.Sprintf("Ask: %v", resp.Last.Ask),
		fmt.Sprintf("Timestamp: %d", resp.Last.Timestamp),
	}
	return joinLines(lines)
}

func (t *Forex) MarketStatus(ctx context.Context) string {
	resp, err := t.api.MarketStatus(ctx)
	if err != nil {
		return errorText(err)
	}

	lines := []string{
		"Forex Market Status:",
		dashRule,
		"Market: " + orNA(resp.Market),
		"FX Status: " + orNA(resp.Currencies.FX),
		"Server Time: " + orNA(resp.ServerTime),
	}
	return joinLines(lines)
}

// Snapshot resolves a display price from the freshest field available:
// mid quote, then minute close, then day close, then previous close.
func (t *Forex) Snapshot(ctx context.Context, ticker string) string {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.SnapshotTicker(ctx, ticker)
	if err != nil {
		return errorText(err)
	}
	snap := resp.Ticker

	name := snap.Ticker
	if name == "" {
		name = ticker
	}

	price := "N/A"
	if snap.LastQuote != nil && snap.LastQuote.Ask != 0 && snap.LastQuote.Bid != 0 {
		price = fmt.Sprintf("%.5f (Mid)", (snap.LastQuote.Ask+snap.LastQuote.Bid)/2)
	} else if snap.Min != nil && snap.Min.Close != 0 {
		price = fmt.Sprintf("%v (Last Min)", snap.Min.Close)
	} else if snap.Day != nil && snap.Day.Close != 0 {
		price = fmt.Sprintf("%v (Day Close)", snap.Day.Close)
	} else if snap.PrevDay != nil && snap.PrevDay.Close != 0 {
		price = fmt.Sprintf("%v (Prev Close)", snap.PrevDay.Close)
	}

	volume := 0.0
	if snap.Day != nil {
		volume = snap.Day.Volume
	}
	if volume == 0 && snap.PrevDay != nil {
		volume = snap.PrevDay.Volume
	}

	lines := []string{
		fmt.Sprintf("Snapshot for %s:", name),
		dashRule,
		"Price: " + price,
		fmt.Sprintf("Change: %.2f%%", snap.TodaysChangePerc),
		fmt.Sprintf("Volume: %.0f", volume),
	}
	return joinLines(lines)
}

func (t *Forex) Movers(ctx context.Context, direction string) string {
	direction, err := normalizeEnum(direction, "", "direction", []string{domain.DirectionGainers, domain.DirectionLosers})
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.Movers(ctx, direction)
	if err != nil {
		return errorText(err)
	}

	lines := []string{fmt.Sprintf("Top Forex %s:", capitalize(direction)), equalRule}
	tickers := resp.Tickers
	if len(tickers) > 10 {
		tickers = tickers[:10]
	}
	for _, snap := range tickers {
		change := snap.TodaysChangePerc
		price := 0.0
		if snap.Day != nil {
			price = snap.Day.Close
		}
		// A flat API change usually means the day bar is empty; fall back to
		// the previous day's open/close.
		if change == 0 && snap.PrevDay != nil && snap.PrevDay.Open != 0 {
			change = (snap.PrevDay.Close - snap.PrevDay.Open) / snap.PrevDay.Open * 100
			if price == 0 {
				price = snap.PrevDay.Close
			}
		}
		lines = append(lines, fmt.Sprintf("%s | Change: %.2f%% | Price: %v", orNA(snap.Ticker), change, price))
	}
	return joinLines(lines)
}

func (t *Forex) PrevClose(ctx context.Context, ticker string) string {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	resp, err := t.api.PrevClose(ctx, ticker)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Results) == 0 {
		return "No previous day data found."
	}
	bar := resp.Results[0]

	lines := []string{
		fmt.Sprintf("Previous Day Close for %s:", ticker),
		dashRule,
		fmt.Sprintf("Open: %v | High: %v | Low: %v | Close: %v", bar.Open, bar.High, bar.Low, bar.Close),
		fmt.Sprintf("Volume: %v", bar.Volume),
	}
	return joinLines(lines)
}

func (t *Forex) History(ctx context.Context, ticker string, multiplier int, timespan, fromDate, toDate string) string {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	if multiplier == 0 {
		multiplier = 1
	}
	if multiplier < 1 {
		return errorText(domain.Validationf("multiplier must be at least 1"))
	}
	timespan, err = normalizeEnum(timespan, "day", "timespan", domain.SupportedTimespans)
	if err != nil {
		return errorText(err)
	}
	fromDate, err = normalizeDate(fromDate)
	if err != nil {
		return errorText(err)
	}
	toDate, err = normalizeDate(toDate)
	if err != nil {
		return errorText(err)
	}

	resp, err := t.api.CustomBars(ctx, ticker, multiplier, timespan, fromDate, toDate, "asc")
	if err != nil {
		return errorText(err)
	}
	if len(resp.Results) == 0 {
		return "No data found for this range."
	}

	lines := []string{fmt.Sprintf("Historical Data for %s (%d %s):", ticker, multiplier, timespan), dashRule}
	bars := resp.Results
	shown := bars
	if len(shown) > 20 {
		shown = shown[:20]
	}
	for _, bar := range shown {
		lines = append(lines, fmt.Sprintf("TS: %d | O: %v | H: %v | L: %v | C: %v", bar.Timestamp, bar.Open, bar.High, bar.Low, bar.Close))
	}
	if len(bars) > 20 {
		lines = append(lines, fmt.Sprintf("... (+%d more records)", len(bars)-20))
	}
	return joinLines(lines)
}

func (t *Forex) HistoricalQuotes(ctx context.Context, ticker, timestamp string, limit int) string {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	if strings.TrimSpace(timestamp) == "" {
		timestamp = t.now().Format("2006-01-02")
	}
	timestamp, err = normalizeDate(timestamp)
	if err != nil {
		return errorText(err)
	}
	limit, err = normalizeLimit(limit, 100, 50000)
	if err != nil {
		return errorText(err)
	}

	resp, err := t.api.HistoricalQuotes(ctx, ticker, timestamp, limit)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Results) == 0 {
		return fmt.Sprintf("No historical quotes found for %s on %s.", ticker, timestamp)
	}

	lines := []string{fmt.Sprintf("Historical Quotes (BBO) for %s on %s:", ticker, timestamp), dashRule}
	quotes := resp.Results
	shown := quotes
	if len(shown) > 20 {
		shown = shown[:20]
	}
	for _, quote := range shown {
		lines = append(lines, fmt.Sprintf("Time: %d | Bid: %v | Ask: %v", quote.ParticipantTimestamp, quote.BidPrice, quote.AskPrice))
	}
	if len(quotes) > 20 {
		lines = append(lines, fmt.Sprintf("... (+%d more records)", len(quotes)-20))
	}
	return joinLines(lines)
}

func (t *Forex) Indicator(ctx context.Context, indicator, ticker, timespan string, window int) string {
	kind, err := normalizeEnum(indicator, "", "indicator", domain.ForexIndicators)
	if err != nil {
		return errorText(err)
	}
	ticker, err = normalizeTicker(ticker)
	if err != nil {
		return errorText(err)
	}
	timespan, err = normalizeEnum(timespan, "day", "timespan", domain.SupportedTimespans)
	if err != nil {
		return errorText(err)
	}
	if window == 0 {
		window = 14
	}
	if window < 1 {
		return errorText(domain.Validationf("window must be at least 1"))
	}

	resp, err := t.api.Indicator(ctx, kind, ticker, timespan, window, 10)
	if err != nil {
		return errorText(err)
	}

	lines := []string{fmt.Sprintf("%s Indicator for %s:", strings.ToUpper(kind), ticker), dashRule}
	values := resp.Results.Values
	if len(values) > 10 {
		values = values[:10]
	}
	for _, value := range values {
		lines = append(lines, fmt.Sprintf("Date: %d | Value: %v", value.Timestamp, value.Value))
	}
	return joinLines(lines)
}

func (t *Forex) MarketSnapshot(ctx context.Context, tickers string, limit int) string {
	limit, err := normalizeLimit(limit, 100, 1000)
	if err != nil {
		return errorText(err)
	}
	filter := ""
	if strings.TrimSpace(tickers) != "" {
		parts := strings.Split(tickers, ",")
		cleaned := make([]string, 0, len(parts))
		for _, part := range parts {
			if ticker := strings.ToUpper(strings.TrimSpace(part)); ticker != "" {
				cleaned = append(cleaned, ticker)
			}
		}
		filter = strings.Join(cleaned, ",")
	}

	resp, err := t.api.SnapshotAll(ctx, filter)
	if err != nil {
		return errorText(err)
	}
	if len(resp.Tickers) == 0 {
		return "No snapshot data available."
	}

	lines := []string{"Market Snapshot:", dashRule}
	snaps := resp.Tickers
	if len(snaps) > limit {
		snaps = snaps[:limit]
	}
	for _, snap := range snaps {
		price := "N/A"
		if snap.LastTrade != nil {
			price = fmt.Sprintf("%v", snap.LastTrade.Price)
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%.2f%%)", orNA(snap.Ticker), price, snap.TodaysChangePerc))
	}
	return joinLines(lines)
}

func (t *Forex) MarketHolidays(ctx context.Context) string {
	holidays, err := t.api.MarketHolidays(ctx)
	if err != nil {
		return errorText(err)
	}
	if len(holidays) == 0 {
		return "No upcoming market holidays."
	}

	lines := []string{"Upcoming Market Holidays:", dashRule}
	for _, holiday := range holidays {
		lines = append(lines, fmt.Sprintf("%s | %s | %s (%s)",
			orNA(holiday.Date), orNA(holiday.Name), orNA(holiday.Exchange), orNA(holiday.Status)))
	}
	return joinLines(lines)
}
