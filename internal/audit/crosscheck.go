package audit

import (
	"math"
	"strings"

	"github.com/reservelabs/datwatch/pkg/models"
)

// holdingsTolerance flags configured holdings that differ from a
// third-party treasury feed by more than this fraction.
const holdingsTolerance = 0.05

// CrossCheckAssets lists the assets with a public treasury registry
// feed worth checking against.
var CrossCheckAssets = []models.Asset{models.AssetBTC, models.AssetETH}

// Discrepancy is one configured holding that disagrees with the feed.
type Discrepancy struct {
	Ticker       string  `json:"ticker"`
	Configured   float64 `json:"configured"`
	Reported     float64 `json:"reported"`
	DiffPct      float64 `json:"diff_pct"` // signed, configured vs reported
	FeedName     string  `json:"feed_name"`
}

// CrossCheckHoldings compares configured company holdings against a
// public treasury feed. Companies absent from the feed are skipped; the
// feed covers large holders only and absence proves nothing.
func CrossCheckHoldings(companies []models.Company, feed []models.TreasuryCompany) []Discrepancy {
	bySymbol := make(map[string]models.TreasuryCompany, len(feed))
	for _, entry := range feed {
		bySymbol[strings.ToUpper(entry.Symbol)] = entry
	}

	var out []Discrepancy
	for _, c := range companies {
		entry, ok := bySymbol[strings.ToUpper(c.Ticker)]
		if !ok || entry.TotalHoldings <= 0 {
			continue
		}
		diff := c.Holdings/entry.TotalHoldings - 1
		if math.Abs(diff) > holdingsTolerance {
			out = append(out, Discrepancy{
				Ticker:     c.Ticker,
				Configured: c.Holdings,
				Reported:   entry.TotalHoldings,
				DiffPct:    diff,
				FeedName:   entry.Name,
			})
		}
	}
	return out
}
