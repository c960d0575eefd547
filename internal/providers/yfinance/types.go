package yfinance

// --- Yahoo Finance API response types ---

// Numeric fields are pointers: Yahoo omits keys it has no value for
// (trailingPE on pre-earnings companies, dividendYield on non-payers),
// and an absent field must map to an unknown, not a zero.

// yfQuoteResponse wraps the v7 quote API response.
type yfQuoteResponse struct {
	QuoteResponse struct {
		Result []yfQuoteResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"quoteResponse"`
}

type yfQuoteResult struct {
	Symbol                      string   `json:"symbol"`
	ShortName                   string   `json:"shortName"`
	LongName                    string   `json:"longName"`
	Currency                    string   `json:"currency"`
	RegularMarketPrice          *float64 `json:"regularMarketPrice"`
	RegularMarketVolume         *float64 `json:"regularMarketVolume"`
	MarketCap                   *float64 `json:"marketCap"`
	FiftyTwoWeekHigh            *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow             *float64 `json:"fiftyTwoWeekLow"`
	TrailingPE                  *float64 `json:"trailingPE"`
	DividendYield               *float64 `json:"dividendYield"`
	TrailingAnnualDividendRate  *float64 `json:"trailingAnnualDividendRate"`
	TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield"`
	SharesOutstanding           *float64 `json:"sharesOutstanding"`
	AverageDailyVolume3Month    *float64 `json:"averageDailyVolume3Month"`
	RegularMarketTime           int64    `json:"regularMarketTime"`
}

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta       yfChartMeta  `json:"meta"`
	Timestamp  []int64      `json:"timestamp"`
	Indicators yfIndicators `json:"indicators"`
}

type yfChartMeta struct {
	Symbol             string   `json:"symbol"`
	Currency           string   `json:"currency"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}

type yfIndicators struct {
	Quote    []yfOHLCV    `json:"quote"`
	AdjClose []yfAdjClose `json:"adjclose"`
}

type yfOHLCV struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type yfAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

// yfError is Yahoo's embedded error object.
type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
