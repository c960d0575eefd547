package models

import "time"

// MacroPoint is one observation of a macro time series.
type MacroPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// MacroSeries is a fetched slice of a FRED series, oldest first.
type MacroSeries struct {
	SeriesID  string       `json:"series_id"` // e.g., "WALCL"
	Unit      string       `json:"unit"`
	Points    []MacroPoint `json:"points"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Latest returns the most recent observation, if any.
func (s MacroSeries) Latest() (MacroPoint, bool) {
	if len(s.Points) == 0 {
		return MacroPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// NetLiquidity is the net-liquidity decomposition: Fed balance sheet
// minus the Treasury General Account minus reverse repo.
type NetLiquidity struct {
	FedBalanceSheet float64   `json:"fed_balance_sheet"` // billions USD
	TGA             float64   `json:"tga"`
	ReverseRepo     float64   `json:"reverse_repo"`
	Net             float64   `json:"net"`
	AsOf            time.Time `json:"as_of"`
}

// TVLSnapshot is a DeFi TVL breakdown used to derive ETH ecosystem
// dominance (L1 plus major L2s over all chains).
type TVLSnapshot struct {
	ETHL1TVL     float64   `json:"eth_l1_tvl"`
	L2TVL        float64   `json:"l2_tvl"`
	EcosystemTVL float64   `json:"eth_ecosystem_tvl"`
	TotalTVL     float64   `json:"total_tvl"`
	Dominance    float64   `json:"eth_dominance"` // fraction of total
	FetchedAt    time.Time `json:"fetched_at"`
}

// StakingStats is a network staking snapshot.
type StakingStats struct {
	LidoTVLUSD   float64   `json:"lido_tvl_usd"` // largest provider, used as proxy
	EstimatedAPY float64   `json:"estimated_apy"`
	FetchedAt    time.Time `json:"fetched_at"`
}
