// Package valuation computes NAV-based metrics for DAT companies:
// treasury NAV, NAV per share, the NAV discount/premium, and tokens per
// share. Every function is pure and deterministic over its inputs;
// anything that cannot be computed comes back Unknown, never zero.
package valuation

import (
	"github.com/reservelabs/datwatch/pkg/models"
)

// NAV is the net asset value of a treasury: holdings times spot price.
// Inputs are expected non-negative; that is the caller's contract.
func NAV(holdings, assetPrice float64) float64 {
	return holdings * assetPrice
}

// NAVPerShare divides treasury NAV by shares outstanding. Unknown when
// the share count is absent, zero, or negative.
func NAVPerShare(holdings, assetPrice float64, shares models.OptFloat) models.OptFloat {
	s, ok := shares.Value()
	if !ok || s <= 0 {
		return models.Unknown()
	}
	return models.Known(NAV(holdings, assetPrice) / s)
}

// NAVDiscount is the relative gap between the stock price and NAV per
// share. Negative means the stock trades below treasury value (a
// discount); positive means a premium. Unknown when either input is
// absent or NAV per share is non-positive.
func NAVDiscount(stockPrice, navPerShare models.OptFloat) models.OptFloat {
	p, ok := stockPrice.Value()
	if !ok {
		return models.Unknown()
	}
	nps, ok := navPerShare.Value()
	if !ok || nps <= 0 {
		return models.Unknown()
	}
	return models.Known((p - nps) / nps)
}

// TokenPerShare is holdings divided by shares outstanding, under the
// same share-count guard as NAVPerShare.
func TokenPerShare(holdings float64, shares models.OptFloat) models.OptFloat {
	s, ok := shares.Value()
	if !ok || s <= 0 {
		return models.Unknown()
	}
	return models.Known(holdings / s)
}

// Drawdown is the decline of a price from a prior high. Unknown when the
// high is non-positive; at or above the high it is >= 0 only at a new
// high observation (callers tracking a high-water mark update the mark
// first, keeping the result <= 0).
func Drawdown(price, high float64) models.OptFloat {
	if high <= 0 {
		return models.Unknown()
	}
	return models.Known((price - high) / high)
}

// DilutionRate is the annualized share-count growth between two
// observations. Unknown without a valid starting count or period.
func DilutionRate(currentShares, previousShares, periodYears float64) models.OptFloat {
	if previousShares <= 0 || periodYears <= 0 {
		return models.Unknown()
	}
	growth := (currentShares - previousShares) / previousShares
	return models.Known(growth / periodYears)
}

// TreasuryChange decomposes a treasury value move into the part driven
// by price and the part driven by accumulation.
func TreasuryChange(currentTokens, previousTokens, currentPrice, previousPrice float64) models.TreasuryChange {
	currentValue := currentTokens * currentPrice
	previousValue := previousTokens * previousPrice

	change := models.TreasuryChange{
		TotalChange:        currentValue - previousValue,
		PriceEffect:        previousTokens * (currentPrice - previousPrice),
		AccumulationEffect: (currentTokens - previousTokens) * currentPrice,
	}
	if previousValue > 0 {
		change.PctChange = models.Known(change.TotalChange / previousValue)
	}
	return change
}

// Compute derives the full valuation block for one company from a spot
// price and a market snapshot, including the phase classification.
func Compute(c models.Company, assetPrice float64, snap models.MarketSnapshot) models.DerivedMetrics {
	m := models.DerivedMetrics{
		Ticker:        c.Ticker,
		NAV:           NAV(c.Holdings, assetPrice),
		NAVPerShare:   NAVPerShare(c.Holdings, assetPrice, snap.SharesOutstanding),
		TokenPerShare: TokenPerShare(c.Holdings, snap.SharesOutstanding),
	}
	m.NAVDiscount = NAVDiscount(snap.Price, m.NAVPerShare)
	m.Phase = ClassifyPhase(m.NAVDiscount, snap.HasDividend, snap.PERatio, models.Unknown())
	return m
}
