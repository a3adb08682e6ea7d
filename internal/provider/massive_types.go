package provider

// Massive response shapes. Field tags follow the provider's wire names
// (snapshot aggregates use single-letter keys).

type ReferenceTicker struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

type TickersResponse struct {
	Results []ReferenceTicker `json:"results"`
}

type ForexExchange struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ExchangesResponse struct {
	Results []ForexExchange `json:"results"`
}

type MarketStatus struct {
	Market     string `json:"market"`
	ServerTime string `json:"serverTime"`
	Currencies struct {
		FX     string `json:"fx"`
		Crypto string `json:"crypto"`
	} `json:"currencies"`
}

type MarketHoliday struct {
	Exchange string `json:"exchange"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type ForexQuote struct {
	Ask       float64 `json:"ask"`
	Bid       float64 `json:"bid"`
	Timestamp int64   `json:"timestamp"`
}

type ConversionResult struct {
	Converted float64     `json:"converted"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Last      *ForexQuote `json:"last"`
}

type LastQuoteResponse struct {
	Last *ForexQuote `json:"last"`
}

type BBOQuote struct {
	AskPrice             float64 `json:"ask_price"`
	BidPrice             float64 `json:"bid_price"`
	ParticipantTimestamp int64   `json:"participant_timestamp"`
}

type BBOQuotesResponse struct {
	Results []BBOQuote `json:"results"`
}

type SnapshotAgg struct {
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

type SnapshotQuote struct {
	Ask float64 `json:"a"`
	Bid float64 `json:"b"`
}

type SnapshotTrade struct {
	Price float64 `json:"p"`
}

type TickerSnapshot struct {
	Ticker           string         `json:"ticker"`
	TodaysChangePerc float64        `json:"todaysChangePerc"`
	Day              *SnapshotAgg   `json:"day"`
	PrevDay          *SnapshotAgg   `json:"prevDay"`
	Min              *SnapshotAgg   `json:"min"`
	LastQuote        *SnapshotQuote `json:"lastQuote"`
	LastTrade        *SnapshotTrade `json:"lastTrade"`
}

type SnapshotResponse struct {
	Ticker TickerSnapshot `json:"ticker"`
}

type SnapshotsResponse struct {
	Tickers []TickerSnapshot `json:"tickers"`
}

type AggBar struct {
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
	Timestamp int64   `json:"t"`
}

type AggsResponse struct {
	Results []AggBar `json:"results"`
}

type IndicatorValue struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

type IndicatorResponse struct {
	Results struct {
		Values []IndicatorValue `json:"values"`
	} `json:"results"`
}
