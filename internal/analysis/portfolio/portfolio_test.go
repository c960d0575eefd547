package portfolio

import (
	"math"
	"testing"

	"github.com/reservelabs/datwatch/pkg/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValueWithCostBasis(t *testing.T) {
	pos := models.Position{Ticker: "BMNR", Shares: 10_000, CostBasis: models.Known(40)}
	snap := models.MarketSnapshot{Ticker: "BMNR", Price: models.Known(60)}

	pv := Value(pos, snap)
	if !almostEqual(pv.Value, 600_000) {
		t.Errorf("value = %v", pv.Value)
	}
	pnl, ok := pv.PnL.Value()
	if !ok || !almostEqual(pnl, 200_000) {
		t.Errorf("pnl = %v, %v", pnl, ok)
	}
	pct, ok := pv.PnLPct.Value()
	if !ok || !almostEqual(pct, 0.5) {
		t.Errorf("pnl pct = %v, %v", pct, ok)
	}
}

func TestValueMissingCostBasis(t *testing.T) {
	pos := models.Position{Ticker: "SBET", Shares: 1_000}
	snap := models.MarketSnapshot{Ticker: "SBET", Price: models.Known(12.50)}

	pv := Value(pos, snap)
	if !almostEqual(pv.Value, 12_500) {
		t.Errorf("value = %v", pv.Value)
	}
	if pv.PnL.IsKnown() || pv.PnLPct.IsKnown() {
		t.Error("P&L without a cost basis must be unknown, not zero")
	}
}

func TestValueMissingPrice(t *testing.T) {
	pos := models.Position{Ticker: "ETHM", Shares: 500, CostBasis: models.Known(20)}
	pv := Value(pos, models.MarketSnapshot{Ticker: "ETHM"})

	if pv.Value != 0 {
		t.Errorf("value without a price = %v, want 0", pv.Value)
	}
	if pv.PnL.IsKnown() {
		t.Error("P&L without a price must be unknown")
	}
}

func TestSummarizeCompleteBook(t *testing.T) {
	positions := []models.Position{
		{Ticker: "SBET", Shares: 1_000, CostBasis: models.Known(10)},
		{Ticker: "BMNR", Shares: 10_000, CostBasis: models.Known(40)},
	}
	snaps := map[string]models.MarketSnapshot{
		"BMNR": {Ticker: "BMNR", Price: models.Known(60)},
		"SBET": {Ticker: "SBET", Price: models.Known(12.50)},
	}

	s := Summarize(positions, snaps)

	if !almostEqual(s.TotalValue, 612_500) {
		t.Errorf("total value = %v", s.TotalValue)
	}
	cost, ok := s.TotalCost.Value()
	if !ok || !almostEqual(cost, 410_000) {
		t.Errorf("total cost = %v, %v", cost, ok)
	}
	pnl, ok := s.TotalPnL.Value()
	if !ok || !almostEqual(pnl, 202_500) {
		t.Errorf("total pnl = %v, %v", pnl, ok)
	}

	// Positions come back in deterministic ticker order.
	if s.Positions[0].Ticker != "BMNR" || s.Positions[1].Ticker != "SBET" {
		t.Errorf("unexpected ordering: %s, %s", s.Positions[0].Ticker, s.Positions[1].Ticker)
	}
}

func TestSummarizeMissingBasisPoisonsAggregate(t *testing.T) {
	positions := []models.Position{
		{Ticker: "BMNR", Shares: 10_000, CostBasis: models.Known(40)},
		{Ticker: "SBET", Shares: 1_000}, // no basis
	}
	snaps := map[string]models.MarketSnapshot{
		"BMNR": {Ticker: "BMNR", Price: models.Known(60)},
		"SBET": {Ticker: "SBET", Price: models.Known(12.50)},
	}

	s := Summarize(positions, snaps)

	// Value still sums; P&L must not be a partial sum.
	if !almostEqual(s.TotalValue, 612_500) {
		t.Errorf("total value = %v", s.TotalValue)
	}
	if s.TotalPnL.IsKnown() || s.TotalCost.IsKnown() {
		t.Error("aggregate P&L with an incomplete book must be unknown")
	}
}

func TestSummarizeZeroSharePositionDoesNotPoison(t *testing.T) {
	positions := []models.Position{
		{Ticker: "BMNR", Shares: 10_000, CostBasis: models.Known(40)},
		{Ticker: "ETH", Shares: 0}, // placeholder row, no basis
	}
	snaps := map[string]models.MarketSnapshot{
		"BMNR": {Ticker: "BMNR", Price: models.Known(60)},
	}

	s := Summarize(positions, snaps)
	if !s.TotalPnL.IsKnown() {
		t.Error("zero-share positions should not block the aggregate")
	}
}

func TestHighWaterMarkDrawdownBound(t *testing.T) {
	h := NewHighWaterMark(models.Unknown())

	prices := []float64{50, 80, 60, 100, 90, 120, 40}
	for _, p := range prices {
		d, ok := h.Observe(p).Value()
		if !ok {
			t.Fatalf("drawdown at %v should be known", p)
		}
		if d > 0 {
			t.Errorf("drawdown must never exceed 0, got %v at price %v", d, p)
		}
	}

	// Equality only at a new high.
	h2 := NewHighWaterMark(models.Unknown())
	if d, _ := h2.Observe(100).Value(); d != 0 {
		t.Errorf("first observation drawdown = %v, want 0", d)
	}
	if d, _ := h2.Observe(150).Value(); d != 0 {
		t.Errorf("new high drawdown = %v, want 0", d)
	}
	if d, _ := h2.Observe(120).Value(); !almostEqual(d, -0.2) {
		t.Errorf("drawdown = %v, want -0.2", d)
	}
}

func TestHighWaterMarkSeed(t *testing.T) {
	h := NewHighWaterMark(models.Known(200))
	d, ok := h.Observe(150).Value()
	if !ok || !almostEqual(d, -0.25) {
		t.Errorf("seeded drawdown = %v, %v, want -0.25", d, ok)
	}

	// A price above the seed resets the mark first.
	d, _ = h.Observe(250).Value()
	if d != 0 {
		t.Errorf("above-seed drawdown = %v, want 0", d)
	}
}

func TestHighWaterMarkNoObservations(t *testing.T) {
	h := NewHighWaterMark(models.Unknown())
	if h.High().IsKnown() {
		t.Error("no observations should mean no high")
	}
	if h.Observe(0).IsKnown() {
		t.Error("a non-positive first price gives no drawdown")
	}
}
