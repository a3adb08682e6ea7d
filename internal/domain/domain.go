package domain

// Market vocabulary shared by the tool and provider layers. Values mirror the
// upstream APIs' accepted enums; anything outside these sets is rejected at the
// tool boundary before a request is issued.

const (
	IndicatorSMA       = "sma"
	IndicatorEMA       = "ema"
	IndicatorMACD      = "macd"
	IndicatorRSI       = "rsi"
	IndicatorBollinger = "bollinger"
)

var ForexIndicators = []string{
	IndicatorSMA,
	IndicatorEMA,
	IndicatorMACD,
	IndicatorRSI,
	IndicatorBollinger,
}

var SupportedTimespans = []string{"minute", "hour", "day", "week", "month", "quarter", "year"}

var TrendingPeriods = []string{"1h", "24h", "7d", "30d"}

var ListingStatuses = []string{"active", "inactive", "untracked"}

const (
	DirectionGainers = "gainers"
	DirectionLosers  = "losers"
)
