// Package portfolio values a holder's personal positions against the
// latest market snapshots: position values, P&L, drawdowns, and
// portfolio totals.
package portfolio

import (
	"sort"

	"github.com/reservelabs/datwatch/pkg/models"
)

// Value computes one position's value and P&L from a snapshot price.
// P&L is unknown without a cost basis: a missing basis means "cannot
// compute", never "zero cost".
func Value(pos models.Position, snap models.MarketSnapshot) models.PositionValue {
	pv := models.PositionValue{
		Ticker:   pos.Ticker,
		Shares:   pos.Shares,
		Price:    snap.Price,
		Drawdown: snap.DrawdownFromHigh,
	}

	price, priceKnown := snap.Price.Value()
	if priceKnown {
		pv.Value = pos.Shares * price
	}

	basis, basisKnown := pos.CostBasis.Value()
	if priceKnown && basisKnown {
		pv.PnL = models.Known((price - basis) * pos.Shares)
		if basis > 0 {
			pv.PnLPct = models.Known((price - basis) / basis)
		}
	}

	return pv
}

// Summarize values every position and aggregates the portfolio.
// Aggregate P&L is defined only when every position with nonzero shares
// has both a price and a cost basis; otherwise the total would silently
// exclude part of the book.
func Summarize(positions []models.Position, snapshots map[string]models.MarketSnapshot) models.PortfolioSummary {
	ordered := make([]models.Position, len(positions))
	copy(ordered, positions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Ticker < ordered[j].Ticker })

	summary := models.PortfolioSummary{}
	totalCost := 0.0
	costComplete := true

	for _, pos := range ordered {
		pv := Value(pos, snapshots[pos.Ticker])
		summary.Positions = append(summary.Positions, pv)
		summary.TotalValue += pv.Value

		if pos.Shares == 0 {
			continue
		}
		basis, ok := pos.CostBasis.Value()
		if !ok || !pv.Price.IsKnown() {
			costComplete = false
			continue
		}
		totalCost += pos.Shares * basis
	}

	if costComplete && len(ordered) > 0 {
		summary.TotalCost = models.Known(totalCost)
		summary.TotalPnL = models.Known(summary.TotalValue - totalCost)
		if totalCost > 0 {
			summary.TotalPnLPct = models.Known((summary.TotalValue - totalCost) / totalCost)
		}
	}

	return summary
}
