package mcp

// Tool input shapes. Field descriptions feed the generated JSON schema the
// client sees; keep them short and concrete.

type cryptoPricesInput struct {
	Symbols string `json:"symbols" jsonschema:"comma-separated cryptocurrency symbols (e.g. BTC,ETH)"`
}

type topCryptosInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of cryptocurrencies to return, max 100"`
}

type cryptoMetadataInput struct {
	Symbols string `json:"symbols" jsonschema:"comma-separated cryptocurrency symbols (e.g. BTC,ETH)"`
}

type historicalPricesInput struct {
	Symbols   string `json:"symbols" jsonschema:"comma-separated cryptocurrency symbols (e.g. BTC,ETH)"`
	TimeStart string `json:"time_start,omitempty" jsonschema:"range start, ISO 8601 (e.g. 2024-01-01)"`
	TimeEnd   string `json:"time_end,omitempty" jsonschema:"range end, ISO 8601 (e.g. 2024-02-01)"`
	Interval  string `json:"interval,omitempty" jsonschema:"sampling interval: hourly, daily, weekly, monthly"`
}

type trendingCryptosInput struct {
	Limit      int    `json:"limit,omitempty" jsonschema:"number of cryptocurrencies to return, max 100"`
	TimePeriod string `json:"time_period,omitempty" jsonschema:"trending window: 1h, 24h, 7d, 30d"`
}

type globalMetricsInput struct{}

type marketPairsInput struct {
	Symbol string `json:"symbol" jsonschema:"cryptocurrency symbol (e.g. BTC)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"number of market pairs to return, max 100"`
}

type latestOHLCVInput struct {
	Symbols string `json:"symbols" jsonschema:"comma-separated cryptocurrency symbols (e.g. BTC,ETH)"`
}

type topExchangesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of exchanges to return, max 100"`
}

type cryptoMapInput struct {
	Limit         int    `json:"limit,omitempty" jsonschema:"number of map entries to return, max 5000"`
	ListingStatus string `json:"listing_status,omitempty" jsonschema:"listing status: active, inactive, untracked"`
}

type cryptoCategoriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of categories to return, max 500"`
}

type fearAndGreedInput struct{}

type historicalTopCryptosInput struct {
	Date  string `json:"date" jsonschema:"snapshot date, YYYY-MM-DD"`
	Limit int    `json:"limit,omitempty" jsonschema:"number of cryptocurrencies to return, max 100"`
}

type cryptoNewsInput struct {
	Symbols string `json:"symbols,omitempty" jsonschema:"optional comma-separated symbols to filter news (e.g. BTC,ETH)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"number of news items to return, max 100"`
}

type blockchainStatsInput struct {
	Slug string `json:"slug" jsonschema:"blockchain slug: bitcoin, ethereum, or litecoin"`
}

type cmc20IndexInput struct{}

type pricePerformanceInput struct {
	Symbols string `json:"symbols" jsonschema:"comma-separated cryptocurrency symbols (e.g. BTC,ETH)"`
}

type forexTickersInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of tickers to return, max 1000"`
}

type forexExchangesInput struct {
	AssetClass string `json:"asset_class,omitempty" jsonschema:"asset class filter, defaults to fx"`
	Locale     string `json:"locale,omitempty" jsonschema:"locale filter, defaults to global"`
}

type forexConversionInput struct {
	FromCurrency string  `json:"from_currency" jsonschema:"source currency code (e.g. EUR)"`
	ToCurrency   string  `json:"to_currency" jsonschema:"target currency code (e.g. USD)"`
	Amount       float64 `json:"amount,omitempty" jsonschema:"amount to convert, defaults to 1"`
}

type forexLastQuoteInput struct {
	Ticker string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
}

type forexMarketStatusInput struct{}

type forexMoversInput struct {
	Direction string `json:"direction" jsonschema:"direction: gainers or losers"`
}

type forexPrevCloseInput struct {
	Ticker string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
}

type forexHistoryInput struct {
	Ticker     string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
	Multiplier int    `json:"multiplier,omitempty" jsonschema:"bar size multiplier, defaults to 1"`
	Timespan   string `json:"timespan,omitempty" jsonschema:"bar timespan: minute, hour, day, week, month, quarter, year"`
	FromDate   string `json:"from_date" jsonschema:"range start, YYYY-MM-DD"`
	ToDate     string `json:"to_date" jsonschema:"range end, YYYY-MM-DD"`
}

type forexHistoricalQuotesInput struct {
	Ticker    string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
	Timestamp string `json:"timestamp,omitempty" jsonschema:"quote date, YYYY-MM-DD, defaults to today"`
	Limit     int    `json:"limit,omitempty" jsonschema:"number of quotes to fetch, max 50000"`
}

type forexIndicatorInput struct {
	Indicator string `json:"indicator" jsonschema:"indicator: sma, ema, macd, rsi, bollinger"`
	Ticker    string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
	Timespan  string `json:"timespan,omitempty" jsonschema:"aggregate timespan, defaults to day"`
	Window    int    `json:"window,omitempty" jsonschema:"indicator window size, defaults to 14"`
}

type forexMarketSnapshotInput struct {
	Tickers string `json:"tickers,omitempty" jsonschema:"optional comma-separated tickers to filter the snapshot"`
	Limit   int    `json:"limit,omitempty" jsonschema:"number of tickers to show, max 1000"`
}

type forexSnapshotInput struct {
	Ticker string `json:"ticker" jsonschema:"forex pair ticker (e.g. C:EURUSD or EURUSD)"`
}

type forexMarketHolidaysInput struct{}
