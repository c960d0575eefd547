// Package universe holds the static reference data the dashboard runs
// on: the DAT company registries per asset, the 13-thesis taxonomy, and
// the alert/invalidation thresholds. A Universe is constructed once at
// startup and never mutated; editing reference data means building and
// atomically swapping in a new snapshot, so readers can never observe a
// half-updated registry.
package universe

import (
	"sort"

	"github.com/reservelabs/datwatch/pkg/models"
)

// Universe is an immutable snapshot of all reference data.
type Universe struct {
	byTicker map[string]models.Company
	byAsset  map[models.Asset][]models.Company
	theses   []models.ThesisRecord
	alerts   AlertThresholds
}

// New builds a Universe from explicit company and thesis lists.
// Input slices are copied; the caller keeps no handle into the snapshot.
func New(companies []models.Company, theses []models.ThesisRecord, alerts AlertThresholds) *Universe {
	u := &Universe{
		byTicker: make(map[string]models.Company, len(companies)),
		byAsset:  make(map[models.Asset][]models.Company),
		theses:   make([]models.ThesisRecord, len(theses)),
		alerts:   alerts,
	}
	for _, c := range companies {
		u.byTicker[c.Ticker] = c
		u.byAsset[c.Asset] = append(u.byAsset[c.Asset], c)
	}
	for _, list := range u.byAsset {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Tier != list[j].Tier {
				return list[i].Tier < list[j].Tier
			}
			return list[i].Holdings > list[j].Holdings
		})
	}
	copy(u.theses, theses)
	return u
}

// Default builds the built-in reference universe.
func Default() *Universe {
	return New(defaultCompanies(), defaultTheses(), DefaultAlertThresholds)
}

// Company looks up one company by ticker.
func (u *Universe) Company(ticker string) (models.Company, bool) {
	c, ok := u.byTicker[ticker]
	return c, ok
}

// Companies returns the full registry for one asset, tier-ordered.
func (u *Universe) Companies(asset models.Asset) []models.Company {
	src := u.byAsset[asset]
	out := make([]models.Company, len(src))
	copy(out, src)
	return out
}

// AllCompanies returns every tracked company across assets.
func (u *Universe) AllCompanies() []models.Company {
	var out []models.Company
	for _, asset := range models.AllAssets {
		out = append(out, u.byAsset[asset]...)
	}
	return out
}

// Tickers returns all tracked tickers, sorted.
func (u *Universe) Tickers() []string {
	out := make([]string, 0, len(u.byTicker))
	for t := range u.byTicker {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Theses returns the thesis taxonomy, ID-ordered.
func (u *Universe) Theses() []models.ThesisRecord {
	out := make([]models.ThesisRecord, len(u.theses))
	copy(out, u.theses)
	return out
}

// Thesis looks up one thesis by ID.
func (u *Universe) Thesis(id int) (models.ThesisRecord, bool) {
	for _, th := range u.theses {
		if th.ID == id {
			return th, true
		}
	}
	return models.ThesisRecord{}, false
}

// Alerts returns the configured alert thresholds.
func (u *Universe) Alerts() AlertThresholds {
	return u.alerts
}

// BenchmarkAPY returns the network staking APY the productivity yield
// multiple is compared against. BTC has no native yield: zero.
func (u *Universe) BenchmarkAPY(asset models.Asset) float64 {
	return benchmarkAPY[asset]
}
