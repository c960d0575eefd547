package audit

import (
	"context"
	"fmt"
	"time"
)

// Tracked field names. They match the Company struct fields that are
// maintained by hand and therefore go stale.
const (
	FieldHoldings   = "holdings"
	FieldStakingPct = "staking_pct"
	FieldBurn       = "quarterly_burn_usd"
)

// maxAgeDays is the re-verification window per field. Holdings move
// with every ATM raise so they get a monthly window; burn only changes
// with a 10-Q.
var maxAgeDays = map[string]int{
	FieldHoldings:   30,
	FieldStakingPct: 30,
	FieldBurn:       90,
}

const defaultMaxAgeDays = 30

// MaxAgeDays returns the re-verification window for a field.
func MaxAgeDays(field string) int {
	if d, ok := maxAgeDays[field]; ok {
		return d
	}
	return defaultMaxAgeDays
}

// FieldFreshness rates one field's verification age.
type FieldFreshness string

const (
	FreshnessFresh         FieldFreshness = "fresh"
	FreshnessWarning       FieldFreshness = "warning" // past 70% of the window
	FreshnessStale         FieldFreshness = "stale"
	FreshnessNeverVerified FieldFreshness = "never_verified"
)

// FieldStatus is the freshness of one (ticker, field) pair.
type FieldStatus struct {
	Ticker     string         `json:"ticker"`
	Field      string         `json:"field"`
	Status     FieldFreshness `json:"status"`
	AgeDays    int            `json:"age_days"` // -1 when never verified
	MaxAgeDays int            `json:"max_age_days"`
	Value      string         `json:"value,omitempty"`
	Source     string         `json:"source,omitempty"`
}

// rate classifies an age against a window.
func rate(ageDays, maxAge int) FieldFreshness {
	switch {
	case ageDays > maxAge:
		return FreshnessStale
	case float64(ageDays) > float64(maxAge)*0.7:
		return FreshnessWarning
	default:
		return FreshnessFresh
	}
}

// FieldStatuses rates the given fields of one ticker as of now.
func (s *Store) FieldStatuses(ctx context.Context, ticker string, fields []string, now time.Time) ([]FieldStatus, error) {
	latest, err := s.Latest(ctx, ticker)
	if err != nil {
		return nil, err
	}

	statuses := make([]FieldStatus, 0, len(fields))
	for _, field := range fields {
		status := FieldStatus{
			Ticker:     ticker,
			Field:      field,
			MaxAgeDays: MaxAgeDays(field),
		}
		rec, ok := latest[field]
		if !ok {
			status.Status = FreshnessNeverVerified
			status.AgeDays = -1
		} else {
			status.AgeDays = int(now.Sub(rec.VerifiedAt).Hours() / 24)
			status.Status = rate(status.AgeDays, status.MaxAgeDays)
			status.Value = rec.Value
			status.Source = rec.Source
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// StaleFields returns the fields of one ticker that are past their
// window, including never-verified ones.
func (s *Store) StaleFields(ctx context.Context, ticker string, fields []string, now time.Time) ([]FieldStatus, error) {
	statuses, err := s.FieldStatuses(ctx, ticker, fields, now)
	if err != nil {
		return nil, err
	}
	var stale []FieldStatus
	for _, st := range statuses {
		if st.Status == FreshnessStale || st.Status == FreshnessNeverVerified {
			stale = append(stale, st)
		}
	}
	return stale, nil
}

// CompanyHealth is the rolled-up audit state of one ticker.
type CompanyHealth struct {
	Ticker        string        `json:"ticker"`
	Overall       FieldFreshness `json:"overall"`
	Fields        []FieldStatus `json:"fields"`
	LastVerified  *time.Time    `json:"last_verified,omitempty"`
}

// HealthSummary rates every given ticker. A company is fresh only when
// all its tracked fields are inside their windows.
func (s *Store) HealthSummary(ctx context.Context, tickers []string, fields []string, now time.Time) ([]CompanyHealth, error) {
	out := make([]CompanyHealth, 0, len(tickers))
	for _, ticker := range tickers {
		statuses, err := s.FieldStatuses(ctx, ticker, fields, now)
		if err != nil {
			return nil, fmt.Errorf("health for %s: %w", ticker, err)
		}

		health := CompanyHealth{Ticker: ticker, Fields: statuses}
		anyVerified := false
		allFresh := true
		for _, st := range statuses {
			if st.Status == FreshnessNeverVerified {
				allFresh = false
				continue
			}
			anyVerified = true
			if st.Status == FreshnessStale {
				allFresh = false
			}
		}

		switch {
		case !anyVerified:
			health.Overall = FreshnessNeverVerified
		case allFresh:
			health.Overall = FreshnessFresh
		default:
			health.Overall = FreshnessStale
		}

		latest, err := s.Latest(ctx, ticker)
		if err == nil {
			for _, rec := range latest {
				if health.LastVerified == nil || rec.VerifiedAt.After(*health.LastVerified) {
					t := rec.VerifiedAt
					health.LastVerified = &t
				}
			}
		}

		out = append(out, health)
	}
	return out, nil
}
