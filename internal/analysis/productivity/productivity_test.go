package productivity

import (
	"math"
	"testing"
	"time"

	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-2
}

// The worked scenario: 100k tokens, 80% staked at 3.5% APY, $2M
// quarterly burn at a $3,500 price, 5,000 tokens of premium capture over
// two years active.
func TestComputeScenario(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// 24 mean-length months back, so the lifetime is exactly 2.0 years.
	start := now.Add(-time.Duration(24 * 30.44 * 24 * float64(time.Hour)))
	c := models.Company{
		Ticker:            "SBET",
		Asset:             models.AssetETH,
		Holdings:          100_000,
		StakingPct:        0.80,
		StakingAPY:        0.035,
		QuarterlyBurnUSD:  2_000_000,
		TokensFromPremium: 5_000,
		DATStart:          start,
	}

	rec := Compute(c, 3500, 0.035, now)

	if !almostEqual(rec.AnnualYieldTokens, 2800) {
		t.Errorf("yield = %v, want 2800", rec.AnnualYieldTokens)
	}
	if !almostEqual(rec.AnnualBurnTokens, 2285.71) {
		t.Errorf("burn = %v, want 2285.71", rec.AnnualBurnTokens)
	}
	if !almostEqual(rec.AnnualizedPremiumTokens, 2500) {
		t.Errorf("premium = %v, want 2500", rec.AnnualizedPremiumTokens)
	}
	if !almostEqual(rec.TotalAnnualTokens, 3014.29) {
		t.Errorf("total = %v, want 3014.29", rec.TotalAnnualTokens)
	}
	rate, ok := rec.NetRate.Value()
	if !ok || math.Abs(rate-0.0301) > 0.0005 {
		t.Errorf("net rate = %v, %v, want ~0.0301", rate, ok)
	}
	if !rec.IsAccretive {
		t.Error("expected accretive")
	}
	mult, ok := rec.YieldMultiple.Value()
	if !ok || math.Abs(mult-rate/0.035) > 1e-9 {
		t.Errorf("yield multiple = %v, %v", mult, ok)
	}
}

func TestComputeMinerYield(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := models.Company{
		Ticker:      "MARA",
		Asset:       models.AssetBTC,
		Holdings:    45_000,
		IsMiner:     true,
		MinedAnnual: 8_000,
		// Staking fields must be ignored for miners.
		StakingPct: 0.5,
		StakingAPY: 0.05,
		DATStart:   now.AddDate(-3, 0, 0),
	}

	rec := Compute(c, 95_000, 0, now)
	if rec.AnnualYieldTokens != 8000 {
		t.Errorf("miner yield = %v, want mined production 8000", rec.AnnualYieldTokens)
	}
	if !rec.InfiniteMultiple {
		t.Error("positive accretion against a zero benchmark should be infinite")
	}
	if rec.YieldMultiple.IsKnown() {
		t.Error("infinite multiple should carry no numeric value")
	}
}

func TestComputeBurnPolicyWithoutPrice(t *testing.T) {
	// Burn cannot be converted without a price: policy-zeroed, not
	// propagated as unknown.
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := models.Company{
		Ticker:           "ETHZ",
		Asset:            models.AssetETH,
		Holdings:         94_000,
		StakingPct:       0.5,
		StakingAPY:       0.03,
		QuarterlyBurnUSD: 1_000_000,
		DATStart:         now.AddDate(-1, 0, 0),
	}

	rec := Compute(c, 0, 0.03, now)
	if rec.AnnualBurnTokens != 0 {
		t.Errorf("burn with no price = %v, want 0", rec.AnnualBurnTokens)
	}
	if rec.TotalAnnualTokens != rec.AnnualYieldTokens+rec.AnnualizedPremiumTokens {
		t.Error("total should exclude the unconvertible burn")
	}
}

func TestComputeNewCompanyAnnualization(t *testing.T) {
	// A week-old company annualizes premium over the one-month floor
	// instead of dividing by a near-zero lifetime.
	now := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	c := models.Company{
		Ticker:            "GAME",
		Asset:             models.AssetETH,
		Holdings:          10_000,
		TokensFromPremium: 1_200,
		DATStart:          now.AddDate(0, 0, -7),
	}

	rec := Compute(c, 3500, 0.035, now)
	want := 1200 / utils.YearsActive(c.DATStart, now)
	if !almostEqual(rec.AnnualizedPremiumTokens, want) {
		t.Errorf("premium = %v, want %v", rec.AnnualizedPremiumTokens, want)
	}
	if rec.AnnualizedPremiumTokens > 1200*12+1 {
		t.Errorf("premium annualization should be floored at one month, got %v", rec.AnnualizedPremiumTokens)
	}
}

func TestNetRateUndefinedWithoutHoldings(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := models.Company{Ticker: "FGNX", Asset: models.AssetETH, DATStart: now.AddDate(-1, 0, 0)}

	rec := Compute(c, 3500, 0.035, now)
	if rec.NetRate.IsKnown() {
		t.Error("net rate with zero holdings should be unknown")
	}
}

func TestAccretiveConsistency(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []models.Company{
		{Ticker: "A", Asset: models.AssetETH, Holdings: 1000, StakingPct: 1, StakingAPY: 0.04, DATStart: now.AddDate(-1, 0, 0)},
		{Ticker: "B", Asset: models.AssetETH, Holdings: 1000, QuarterlyBurnUSD: 5_000_000, DATStart: now.AddDate(-1, 0, 0)},
		{Ticker: "C", Asset: models.AssetETH, DATStart: now.AddDate(-1, 0, 0)},
	}
	for _, c := range cases {
		rec := Compute(c, 3500, 0.035, now)
		if rec.IsAccretive != (rec.TotalAnnualTokens > 0) {
			t.Errorf("%s: accretive flag %v inconsistent with total %v", c.Ticker, rec.IsAccretive, rec.TotalAnnualTokens)
		}
	}
}

func TestAggregate(t *testing.T) {
	records := []models.ProductivityRecord{
		{Ticker: "BBB", TotalAnnualTokens: 500, AnnualYieldTokens: 600, AnnualBurnTokens: 100, IsAccretive: true},
		{Ticker: "AAA", TotalAnnualTokens: 500, AnnualYieldTokens: 700, AnnualBurnTokens: 200, IsAccretive: true},
		{Ticker: "CCC", TotalAnnualTokens: -50, AnnualBurnTokens: 50},
		{Ticker: "DDD", TotalAnnualTokens: 2000, AnnualizedPremiumTokens: 2000, IsAccretive: true},
	}

	s := Aggregate(models.AssetETH, records)

	if s.CompanyCount != 4 {
		t.Errorf("count = %d", s.CompanyCount)
	}
	if s.AccretiveCount != 3 {
		t.Errorf("accretive = %d, want 3", s.AccretiveCount)
	}
	if !almostEqual(s.TotalAnnualTokens, 2950) {
		t.Errorf("total = %v, want 2950", s.TotalAnnualTokens)
	}
	if !almostEqual(s.TotalBurnTokens, 350) {
		t.Errorf("burn = %v, want 350", s.TotalBurnTokens)
	}

	wantOrder := []string{"DDD", "AAA", "BBB", "CCC"}
	for i, want := range wantOrder {
		if s.Ranked[i].Ticker != want {
			t.Errorf("rank %d = %s, want %s", i, s.Ranked[i].Ticker, want)
		}
	}

	// Input order must be left untouched.
	if records[0].Ticker != "BBB" {
		t.Error("Aggregate mutated its input slice")
	}
}
