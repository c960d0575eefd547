package models

// ProductivityRecord captures one company's annualized treasury
// productivity: staking (or mined) yield plus premium capture minus
// operating burn, all in tokens before any USD conversion so the net
// rate carries no price assumption.
type ProductivityRecord struct {
	Ticker   string  `json:"ticker"`
	Asset    Asset   `json:"asset"`
	Holdings float64 `json:"holdings"`
	IsMiner  bool    `json:"is_miner"`

	AnnualYieldTokens       float64 `json:"annual_yield_tokens"`
	AnnualBurnTokens        float64 `json:"annual_burn_tokens"`
	AnnualizedPremiumTokens float64 `json:"annualized_premium_tokens"`
	TotalAnnualTokens       float64 `json:"total_annual_tokens"` // yield + premium - burn
	TotalAnnualUSD          float64 `json:"total_annual_usd"`

	// NetRate is total/holdings, unknown when holdings are zero.
	NetRate OptFloat `json:"net_rate"`
	// YieldMultiple is net rate over the benchmark APY. For assets with
	// no native yield any positive accretion beats the zero benchmark,
	// reported via InfiniteMultiple instead of a numeric value.
	YieldMultiple    OptFloat `json:"yield_multiple"`
	InfiniteMultiple bool     `json:"infinite_multiple"`

	IsAccretive bool `json:"is_accretive"` // total > 0
}

// ProductivitySummary aggregates productivity across one asset's
// company universe.
type ProductivitySummary struct {
	Asset              Asset                `json:"asset"`
	TotalYieldTokens   float64              `json:"total_yield_tokens"`
	TotalPremiumTokens float64              `json:"total_premium_tokens"`
	TotalBurnTokens    float64              `json:"total_burn_tokens"`
	TotalAnnualTokens  float64              `json:"total_annual_tokens"`
	TotalAnnualUSD     float64              `json:"total_annual_usd"`
	AccretiveCount     int                  `json:"accretive_count"`
	CompanyCount       int                  `json:"company_count"`
	Ranked             []ProductivityRecord `json:"ranked"` // total desc, ticker tiebreak
}
