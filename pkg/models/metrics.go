package models

// Phase is a point-in-time classification of a DAT company's market
// narrative. It is re-derived on every evaluation, never stored.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation" // NAV discount/premium driven
	PhaseTransition   Phase = "transition"   // moving toward earnings focus
	PhaseTerminal     Phase = "terminal"     // earnings-driven valuation
)

// Description returns the long-form phase label used by the views.
func (p Phase) Description() string {
	switch p {
	case PhaseTerminal:
		return "Phase 6c: Terminal - Earnings-driven valuation"
	case PhaseTransition:
		return "Phase 6b: Transition - Moving toward earnings focus"
	default:
		return "Phase 6a: Accumulation - NAV discount/premium driven"
	}
}

// DerivedMetrics are the valuation outputs computed per ticker from one
// (company, crypto quote, stock snapshot) triple. Each ratio field is
// independently possibly-unknown; an unknown never collapses to zero.
type DerivedMetrics struct {
	Ticker        string   `json:"ticker"`
	NAV           float64  `json:"nav"`             // holdings x asset price
	NAVPerShare   OptFloat `json:"nav_per_share"`   // unknown without a valid share count
	NAVDiscount   OptFloat `json:"nav_discount"`    // negative = below treasury value
	TokenPerShare OptFloat `json:"token_per_share"` // holdings / shares
	Phase         Phase    `json:"phase"`
}

// TreasuryChange decomposes a treasury value move between two
// observations into its price and accumulation components.
type TreasuryChange struct {
	TotalChange        float64  `json:"total_change"`
	PctChange          OptFloat `json:"pct_change"`
	PriceEffect        float64  `json:"price_effect"`
	AccumulationEffect float64  `json:"accumulation_effect"`
}
