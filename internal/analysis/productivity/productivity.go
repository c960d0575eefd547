// Package productivity measures whether a DAT company's treasury grows
// or shrinks on its own: annualized staking (or mined) yield plus
// annualized premium capture, minus operating burn. All arithmetic
// happens in tokens before any USD conversion so the net rate never
// compounds a price assumption.
package productivity

import (
	"sort"
	"time"

	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

// Compute builds the productivity record for a single company.
//
// benchmarkAPY is the network staking APY the net rate is compared
// against. For assets with no native yield (a pure BTC treasury) any
// positive accretion beats the zero benchmark; the multiple is reported
// as infinite rather than a number.
//
// Burn conversion needs a price. When assetPrice <= 0 the burn is
// treated as zero tokens rather than poisoning the sum with an unknown;
// the asymmetry with the share-count guards is intentional and kept.
func Compute(c models.Company, assetPrice, benchmarkAPY float64, now time.Time) models.ProductivityRecord {
	rec := models.ProductivityRecord{
		Ticker:   c.Ticker,
		Asset:    c.Asset,
		Holdings: c.Holdings,
		IsMiner:  c.IsMiner,
	}

	// Yield: mined production and staking rewards are mutually
	// exclusive, selected by the miner flag.
	if c.IsMiner {
		rec.AnnualYieldTokens = c.MinedAnnual
	} else {
		staked := c.Holdings * c.StakingPct
		rec.AnnualYieldTokens = staked * c.StakingAPY
	}

	// Operating burn, converted into tokens at the current price.
	if assetPrice > 0 {
		rec.AnnualBurnTokens = (c.QuarterlyBurnUSD * 4) / assetPrice
	}

	// Premium capture: cumulative tokens from above-NAV issuance,
	// annualized over the company's active lifetime.
	yearsActive := utils.YearsActive(c.DATStart, now)
	rec.AnnualizedPremiumTokens = c.TokensFromPremium / yearsActive

	rec.TotalAnnualTokens = rec.AnnualYieldTokens + rec.AnnualizedPremiumTokens - rec.AnnualBurnTokens
	rec.TotalAnnualUSD = rec.TotalAnnualTokens * assetPrice
	rec.IsAccretive = rec.TotalAnnualTokens > 0

	if c.Holdings > 0 {
		rec.NetRate = models.Known(rec.TotalAnnualTokens / c.Holdings)
	}

	rec.YieldMultiple, rec.InfiniteMultiple = yieldMultiple(rec.NetRate, benchmarkAPY, rec.TotalAnnualTokens)
	return rec
}

// yieldMultiple compares the net rate against a benchmark APY.
func yieldMultiple(netRate models.OptFloat, benchmarkAPY, totalTokens float64) (models.OptFloat, bool) {
	if benchmarkAPY <= 0 {
		// Zero-yield benchmark: any positive accretion is infinitely
		// better than holding; anything else scores zero.
		if totalTokens > 0 {
			return models.Unknown(), true
		}
		return models.Known(0), false
	}
	rate, ok := netRate.Value()
	if !ok {
		return models.Unknown(), false
	}
	return models.Known(rate / benchmarkAPY), false
}

// Aggregate sums productivity across one asset's universe and ranks
// companies by total annual tokens, descending. Ties break on ticker so
// the ordering is deterministic across fetch cycles.
func Aggregate(asset models.Asset, records []models.ProductivityRecord) models.ProductivitySummary {
	summary := models.ProductivitySummary{
		Asset:        asset,
		CompanyCount: len(records),
		Ranked:       make([]models.ProductivityRecord, len(records)),
	}
	copy(summary.Ranked, records)

	for _, r := range records {
		summary.TotalYieldTokens += r.AnnualYieldTokens
		summary.TotalPremiumTokens += r.AnnualizedPremiumTokens
		summary.TotalBurnTokens += r.AnnualBurnTokens
		summary.TotalAnnualTokens += r.TotalAnnualTokens
		summary.TotalAnnualUSD += r.TotalAnnualUSD
		if r.IsAccretive {
			summary.AccretiveCount++
		}
	}

	sort.Slice(summary.Ranked, func(i, j int) bool {
		a, b := summary.Ranked[i], summary.Ranked[j]
		if a.TotalAnnualTokens != b.TotalAnnualTokens {
			return a.TotalAnnualTokens > b.TotalAnnualTokens
		}
		return a.Ticker < b.Ticker
	})

	return summary
}
