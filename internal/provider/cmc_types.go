package provider

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// The v2 CoinMarketCap endpoints return either an object or an array of
// objects per symbol depending on plan and symbol ambiguity. assetList absorbs
// both shapes.
type assetList[T any] []T

func (l *assetList[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var many []T
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = assetList[T]{one}
	return nil
}

// Flex accepts a JSON string or number and keeps its text form. Blockchain
// statistics mix the two freely.
type Flex string

func (f *Flex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	*f = Flex(b)
	return nil
}

func (f Flex) String() string {
	if f == "" {
		return "N/A"
	}
	return string(f)
}

type USDQuote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	PercentChange30d float64 `json:"percent_change_30d"`
	TotalMarketCap   float64 `json:"total_market_cap"`
	TotalVolume24h   float64 `json:"total_volume_24h"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	Volume           float64 `json:"volume"`
}

type QuoteAsset struct {
	ID      int                 `json:"id"`
	Name    string              `json:"name"`
	Symbol  string              `json:"symbol"`
	Rank    int                 `json:"rank"`
	CMCRank int                 `json:"cmc_rank"`
	Quote   map[string]USDQuote `json:"quote"`
}

func (a QuoteAsset) USD() USDQuote { return a.Quote["USD"] }

type QuotesResponse struct {
	Data map[string]assetList[QuoteAsset] `json:"data"`
}

// Asset returns the first entry for symbol, if any.
func (r *QuotesResponse) Asset(symbol string) (QuoteAsset, bool) {
	entries, ok := r.Data[symbol]
	if !ok || len(entries) == 0 {
		return QuoteAsset{}, false
	}
	return entries[0], true
}

type ListingsResponse struct {
	Data []QuoteAsset `json:"data"`
}

type AssetURLs struct {
	Website      []string `json:"website"`
	TechnicalDoc []string `json:"technical_doc"`
}

type AssetInfo struct {
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	URLs        AssetURLs `json:"urls"`
}

type InfoResponse struct {
	Data map[string]assetList[AssetInfo] `json:"data"`
}

type HistoricalQuote struct {
	Timestamp string              `json:"timestamp"`
	Quote     map[string]USDQuote `json:"quote"`
}

type HistoricalAsset struct {
	Name   string            `json:"name"`
	Symbol string            `json:"symbol"`
	Quotes []HistoricalQuote `json:"quotes"`
}

type HistoricalQuotesResponse struct {
	Data map[string]assetList[HistoricalAsset] `json:"data"`
}

type GlobalMetrics struct {
	BTCDominance           float64             `json:"btc_dominance"`
	ActiveCryptocurrencies int                 `json:"active_cryptocurrencies"`
	ActiveExchanges        int                 `json:"active_exchanges"`
	Quote                  map[string]USDQuote `json:"quote"`
}

type GlobalMetricsResponse struct {
	Data GlobalMetrics `json:"data"`
}

type MarketPair struct {
	Exchange struct {
		Name string `json:"name"`
	} `json:"exchange"`
	BaseSymbol  string              `json:"base_symbol"`
	QuoteSymbol string              `json:"quote_symbol"`
	Quote       map[string]USDQuote `json:"quote"`
}

type MarketPairsResponse struct {
	Data struct {
		Name        string       `json:"name"`
		Symbol      string       `json:"symbol"`
		MarketPairs []MarketPair `json:"market_pairs"`
	} `json:"data"`
}

type OHLCVAsset struct {
	Name   string              `json:"name"`
	Symbol string              `json:"symbol"`
	Quote  map[string]USDQuote `json:"quote"`
}

type OHLCVResponse struct {
	Data map[string]assetList[OHLCVAsset] `json:"data"`
}

type ExchangeListing struct {
	Rank           int                 `json:"rank"`
	Name           string              `json:"name"`
	LiquidityScore Flex                `json:"liquidity_score"`
	Quote          map[string]USDQuote `json:"quote"`
}

type ExchangeListingsResponse struct {
	Data []ExchangeListing `json:"data"`
}

type MapEntry struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Symbol              string `json:"symbol"`
	Rank                int    `json:"rank"`
	FirstHistoricalData string `json:"first_historical_data"`
}

type MapResponse struct {
	Data []MapEntry `json:"data"`
}

type Category struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NumTokens      int     `json:"num_tokens"`
	AvgPriceChange float64 `json:"avg_price_change"`
}

type CategoriesResponse struct {
	Data []Category `json:"data"`
}

type FearAndGreed struct {
	Value               int    `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           string `json:"timestamp"`
}

type FearAndGreedResponse struct {
	Data FearAndGreed `json:"data"`
}

type ContentItem struct {
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type ContentResponse struct {
	Data []ContentItem `json:"data"`
}

type BlockchainStats struct {
	Hashrate                 Flex `json:"hashrate"`
	TransactionCount24h      Flex `json:"transaction_count_24h"`
	AverageTransactionFeeUSD Flex `json:"average_transaction_fee_usd"`
	Difficulty               Flex `json:"difficulty"`
}

type BlockchainStatsResponse struct {
	Data map[string]BlockchainStats `json:"data"`
}

type IndexConstituent struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
}

type CMC20Index struct {
	Value        float64            `json:"value"`
	Timestamp    string             `json:"timestamp"`
	Constituents []IndexConstituent `json:"constituents"`
}

type CMC20IndexResponse struct {
	Data CMC20Index `json:"data"`
}

type PricePoint struct {
	Price       float64 `json:"price"`
	PercentDown float64 `json:"percent_down"`
}

type PerformanceUSD struct {
	AllTimeHigh      PricePoint `json:"all_time_high"`
	AllTimeLow       PricePoint `json:"all_time_low"`
	PercentChange24h float64    `json:"percent_change_24h"`
	PercentChange7d  float64    `json:"percent_change_7d"`
	PercentChange30d float64    `json:"percent_change_30d"`
}

type PerformanceAsset struct {
	Name   string                    `json:"name"`
	Symbol string                    `json:"symbol"`
	Quote  map[string]PerformanceUSD `json:"quote"`
}

type PricePerformanceResponse struct {
	Data map[string]assetList[PerformanceAsset] `json:"data"`
}

func itoa(n int) string { return strconv.Itoa(n) }
