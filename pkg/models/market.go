package models

import "time"

// CryptoQuote is a spot price snapshot for one asset.
type CryptoQuote struct {
	Asset     Asset     `json:"asset"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"` // percent
	MarketCap float64   `json:"market_cap"`
	FetchedAt time.Time `json:"fetched_at"`
}

// MarketSnapshot is a best-effort stock quote for one ticker from one
// fetch cycle. Every numeric field is optional: an upstream outage or a
// missing field propagates as Unknown, never as zero. Snapshots are
// ephemeral and superseded entirely by the next fetch.
type MarketSnapshot struct {
	Ticker            string   `json:"ticker"`
	Name              string   `json:"name,omitempty"`
	Price             OptFloat `json:"price"`
	MarketCap         OptFloat `json:"market_cap"`
	SharesOutstanding OptFloat `json:"shares_outstanding"`
	PERatio           OptFloat `json:"pe_ratio"`
	WeekHigh52        OptFloat `json:"week_high_52"`
	WeekLow52         OptFloat `json:"week_low_52"`
	High1Y            OptFloat `json:"high_1y"`            // trailing-year high, for drawdown
	DrawdownFromHigh  OptFloat `json:"drawdown_from_high"` // <= 0 when known
	Volume            OptFloat `json:"volume"`
	AvgVolume         OptFloat `json:"avg_volume"`
	DividendYield     OptFloat `json:"dividend_yield"`
	HasDividend       bool     `json:"has_dividend"`
	FetchedAt         time.Time `json:"fetched_at"`
}

// PricePoint is one bar of daily price history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// TreasuryCompany is one entry from a public-treasury holdings feed,
// used to cross-check configured holdings against a third-party source.
type TreasuryCompany struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Country     string  `json:"country,omitempty"`
	TotalHoldings float64 `json:"total_holdings"`
	TotalValueUSD float64 `json:"total_current_value_usd"`
	PctOfSupply   float64 `json:"percentage_of_total_supply"`
}
