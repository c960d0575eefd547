package models

import "time"

// Asset identifies the cryptocurrency a treasury company holds.
type Asset string

const (
	AssetETH  Asset = "ETH"
	AssetBTC  Asset = "BTC"
	AssetSOL  Asset = "SOL"
	AssetHYPE Asset = "HYPE"
	AssetBNB  Asset = "BNB"
)

// AllAssets lists the tracked asset classes in display order.
var AllAssets = []Asset{AssetETH, AssetBTC, AssetSOL, AssetHYPE, AssetBNB}

// Company is a digital asset treasury (DAT) company: a publicly traded
// firm holding a large crypto balance on its balance sheet. Companies are
// static reference data, defined at configuration load time and immutable
// for the lifetime of a session.
type Company struct {
	Ticker string `json:"ticker"` // e.g., "BMNR"
	Name   string `json:"name"`   // e.g., "Bitmine Immersion"
	Asset  Asset  `json:"asset"`
	Tier   int    `json:"tier"` // 1 = major holders, 2 = mid-size

	// Treasury state.
	Holdings         float64 `json:"holdings"`           // tokens held, >= 0
	StakingPct       float64 `json:"staking_pct"`        // fraction of holdings staked, [0,1]
	StakingAPY       float64 `json:"staking_apy"`        // fraction >= 0
	QuarterlyBurnUSD float64 `json:"quarterly_burn_usd"` // operating cost per quarter
	IsMiner          bool    `json:"is_miner"`           // BTC only: yield from mined production
	MinedAnnual      float64 `json:"mined_annual"`       // tokens mined per year, miners only

	// Capital-raise history.
	TokensFromPremium  float64   `json:"tokens_from_premium"`  // tokens attributable to above-NAV issuance
	AvgIssuancePremium float64   `json:"avg_issuance_premium"` // fraction, may be 0
	DATStart           time.Time `json:"dat_start"`            // when the treasury strategy began

	Leader   string `json:"leader,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// HasNativeYield reports whether the company's asset produces staking
// yield. Pure BTC treasuries have none; miners get production instead.
func (c Company) HasNativeYield() bool {
	return c.Asset != AssetBTC
}
