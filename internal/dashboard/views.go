// Package dashboard assembles fetched market data and static reference
// data into the views the API and CLI render. The analysis packages stay
// pure; this service is the only place fetching and computation meet.
package dashboard

import (
	"time"

	"github.com/reservelabs/datwatch/pkg/models"
)

// CompanyView is the full per-ticker dashboard row: reference data, the
// latest market snapshot, and everything derived from the pair.
type CompanyView struct {
	Company      models.Company            `json:"company"`
	Snapshot     models.MarketSnapshot     `json:"snapshot"`
	Metrics      models.DerivedMetrics     `json:"metrics"`
	Productivity models.ProductivityRecord `json:"productivity"`
}

// AssetSummary groups one asset's companies with the asset spot quote
// and the aggregate productivity ranking.
type AssetSummary struct {
	Asset         models.Asset                `json:"asset"`
	Quote         models.CryptoQuote          `json:"quote"`
	TotalHoldings float64                     `json:"total_holdings"`
	TotalNAV      float64                     `json:"total_nav"`
	Companies     []CompanyView               `json:"companies"`
	Productivity  models.ProductivitySummary  `json:"productivity"`
}

// AlertKind names the threshold a company tripped.
type AlertKind string

const (
	AlertNAVDiscount  AlertKind = "nav_discount"
	AlertDrawdown     AlertKind = "drawdown"
	AlertDilution     AlertKind = "dilution"
	AlertStakingYield AlertKind = "staking_yield"
)

// Alert is one tripped company-level threshold.
type Alert struct {
	Ticker  string    `json:"ticker"`
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
	Value   float64   `json:"value"`
}

// Summary is one complete dashboard snapshot. It is rebuilt wholesale on
// every refresh; consumers never see a partially updated view.
type Summary struct {
	GeneratedAt   time.Time                  `json:"generated_at"`
	Assets        []AssetSummary             `json:"assets"`
	Alerts        []Alert                    `json:"alerts"`
	Preconditions []models.PreconditionResult `json:"preconditions"`
	NetLiquidity  *models.NetLiquidity       `json:"net_liquidity,omitempty"`
	Degraded      []string                   `json:"degraded,omitempty"` // sources that failed this cycle
}

// CompanyByTicker finds one company's view in the summary.
func (s *Summary) CompanyByTicker(ticker string) (CompanyView, bool) {
	for _, as := range s.Assets {
		for _, cv := range as.Companies {
			if cv.Company.Ticker == ticker {
				return cv, true
			}
		}
	}
	return CompanyView{}, false
}

// AssetSummaryFor finds one asset's block in the summary.
func (s *Summary) AssetSummaryFor(asset models.Asset) (AssetSummary, bool) {
	for _, as := range s.Assets {
		if as.Asset == asset {
			return as, true
		}
	}
	return AssetSummary{}, false
}
