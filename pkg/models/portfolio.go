package models

// Position is one personal holding: a share count and an optional cost
// basis. A missing cost basis means P&L cannot be computed for the
// position, not that the shares were free.
type Position struct {
	Ticker    string   `json:"ticker"`
	Shares    float64  `json:"shares"`
	CostBasis OptFloat `json:"cost_basis"` // per share
}

// PositionValue is a valued position from one snapshot.
type PositionValue struct {
	Ticker   string   `json:"ticker"`
	Shares   float64  `json:"shares"`
	Price    OptFloat `json:"price"`
	Value    float64  `json:"value"` // 0 when price unknown
	PnL      OptFloat `json:"pnl"`
	PnLPct   OptFloat `json:"pnl_pct"`
	Drawdown OptFloat `json:"drawdown"` // from trailing high, <= 0
}

// PortfolioSummary aggregates all positions. TotalPnL is defined only
// when every position with nonzero shares has a cost basis; a partial
// sum would mislead.
type PortfolioSummary struct {
	Positions  []PositionValue `json:"positions"`
	TotalValue float64         `json:"total_value"`
	TotalCost  OptFloat        `json:"total_cost"`
	TotalPnL   OptFloat        `json:"total_pnl"`
	TotalPnLPct OptFloat       `json:"total_pnl_pct"`
}
