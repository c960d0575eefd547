package universe

import "github.com/reservelabs/datwatch/pkg/models"

// AlertThresholds are the levels at which a company metric flags a
// warning on the dashboard. Fractions throughout.
type AlertThresholds struct {
	NAVDiscountWarning  float64 `json:"nav_discount_warning"`  // warn if discount deeper than this
	DrawdownWarning     float64 `json:"drawdown_warning"`      // warn if drawdown deeper than this
	DilutionWarning     float64 `json:"dilution_warning"`      // warn if annual dilution above this
	StakingYieldWarning float64 `json:"staking_yield_warning"` // warn if network APY below this
}

// DefaultAlertThresholds are the built-in alert levels.
var DefaultAlertThresholds = AlertThresholds{
	NAVDiscountWarning:  0.30,
	DrawdownWarning:     0.40,
	DilutionWarning:     0.30,
	StakingYieldWarning: 0.02,
}

// benchmarkAPY is the per-asset network staking APY used as the
// productivity benchmark. BTC has no native yield.
var benchmarkAPY = map[models.Asset]float64{
	models.AssetETH:  0.035,
	models.AssetBTC:  0,
	models.AssetSOL:  0.070,
	models.AssetHYPE: 0.024,
	models.AssetBNB:  0.024,
}

// InvalidationRule is a qualitative thesis-invalidation trigger shown
// on the summary view.
type InvalidationRule struct {
	Key       string `json:"key"`
	Metric    string `json:"metric"`
	Threshold string `json:"threshold"`
	Duration  string `json:"duration,omitempty"`
	Meaning   string `json:"meaning"`
}

// InvalidationRules lists the conditions under which the core theses
// would be considered broken.
var InvalidationRules = []InvalidationRule{
	{
		Key:       "eth_tvl_dominance",
		Metric:    "ETH L1+L2 TVL Share",
		Threshold: "below 40%",
		Duration:  "2+ years",
		Meaning:   "ETH loses settlement dominance - core thesis broken",
	},
	{
		Key:       "eth_staking_yield",
		Metric:    "ETH Staking APY",
		Threshold: "below 1%",
		Duration:  "2+ years",
		Meaning:   "Productive capital thesis broken",
	},
	{
		Key:       "eth_per_share_decline",
		Metric:    "Tier-1 ETH/Share",
		Threshold: "declining",
		Duration:  "3+ consecutive quarters",
		Meaning:   "Accumulation failing",
	},
	{
		Key:       "dat_category_abandoned",
		Metric:    "Major DATs liquidating treasuries",
		Threshold: "qualitative",
		Meaning:   "No institutional recognition",
	},
	{
		Key:       "regulatory_kill",
		Metric:    "US bans corporate crypto holdings",
		Threshold: "qualitative",
		Meaning:   "Cannot operate",
	},
}
