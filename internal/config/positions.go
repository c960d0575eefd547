package config

import "github.com/reservelabs/datwatch/pkg/models"

// ModelPositions converts the configured portfolio entries into model
// positions. A nil cost basis becomes an explicit unknown.
func (p PortfolioConfig) ModelPositions() []models.Position {
	out := make([]models.Position, 0, len(p.Positions))
	for _, pos := range p.Positions {
		out = append(out, models.Position{
			Ticker:    pos.Ticker,
			Shares:    pos.Shares,
			CostBasis: models.FromPtr(pos.CostBasis),
		})
	}
	return out
}
