package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/reservelabs/datwatch/pkg/models"
)

var trackedFields = []string{FieldHoldings, FieldStakingPct, FieldBurn}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogAndLatest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Log(ctx, VerificationRecord{
		Ticker: "BMNR",
		Field:  FieldHoldings,
		Value:  "4000000",
		Source: "8-K filing",
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if first.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Log should assign an ID")
	}
	if first.VerifiedBy != VerifiedManual || first.Confidence != ConfidenceHigh {
		t.Errorf("defaults not applied: by=%s conf=%s", first.VerifiedBy, first.Confidence)
	}

	// A newer verification supersedes the first.
	_, err = s.Log(ctx, VerificationRecord{
		Ticker:     "BMNR",
		Field:      FieldHoldings,
		Value:      "4110000",
		Source:     "press release",
		VerifiedAt: first.VerifiedAt.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("second Log: %v", err)
	}

	latest, err := s.Latest(ctx, "BMNR")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got := latest[FieldHoldings].Value; got != "4110000" {
		t.Errorf("latest holdings = %s, want 4110000", got)
	}

	history, err := s.History(ctx, "BMNR", FieldHoldings)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Value != "4110000" {
		t.Errorf("history should be newest first, got %s", history[0].Value)
	}
}

func TestLogRejectsIncompleteRecord(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Log(context.Background(), VerificationRecord{Field: FieldHoldings}); err == nil {
		t.Error("Log should reject a record without a ticker")
	}
	if _, err := s.Log(context.Background(), VerificationRecord{Ticker: "BMNR"}); err == nil {
		t.Error("Log should reject a record without a field")
	}
}

func TestFieldStatuses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	// Holdings verified 10 days ago: fresh. Burn 100 days ago: stale
	// against its 90 day window. Staking never verified.
	mustLog(t, s, "SBET", FieldHoldings, "800000", now.AddDate(0, 0, -10))
	mustLog(t, s, "SBET", FieldBurn, "9000000", now.AddDate(0, 0, -100))

	statuses, err := s.FieldStatuses(ctx, "SBET", trackedFields, now)
	if err != nil {
		t.Fatalf("FieldStatuses: %v", err)
	}
	byField := map[string]FieldStatus{}
	for _, st := range statuses {
		byField[st.Field] = st
	}

	if got := byField[FieldHoldings].Status; got != FreshnessFresh {
		t.Errorf("holdings = %s, want fresh", got)
	}
	if got := byField[FieldBurn].Status; got != FreshnessStale {
		t.Errorf("burn = %s, want stale", got)
	}
	st := byField[FieldStakingPct]
	if st.Status != FreshnessNeverVerified || st.AgeDays != -1 {
		t.Errorf("staking = %s age %d, want never_verified age -1", st.Status, st.AgeDays)
	}

	stale, err := s.StaleFields(ctx, "SBET", trackedFields, now)
	if err != nil {
		t.Fatalf("StaleFields: %v", err)
	}
	if len(stale) != 2 {
		t.Errorf("got %d stale fields, want 2 (burn + never-verified staking)", len(stale))
	}
}

func TestWarningWindow(t *testing.T) {
	// 25 of 30 days is past the 70% mark but not stale.
	if got := rate(25, 30); got != FreshnessWarning {
		t.Errorf("rate(25, 30) = %s, want warning", got)
	}
	if got := rate(10, 30); got != FreshnessFresh {
		t.Errorf("rate(10, 30) = %s, want fresh", got)
	}
	if got := rate(31, 30); got != FreshnessStale {
		t.Errorf("rate(31, 30) = %s, want stale", got)
	}
}

func TestHealthSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	fields := []string{FieldHoldings, FieldBurn}

	// AAA fully fresh, BBB partially stale, CCC never verified.
	mustLog(t, s, "AAA", FieldHoldings, "1", now.AddDate(0, 0, -5))
	mustLog(t, s, "AAA", FieldBurn, "1", now.AddDate(0, 0, -5))
	mustLog(t, s, "BBB", FieldHoldings, "1", now.AddDate(0, 0, -45))

	summary, err := s.HealthSummary(ctx, []string{"AAA", "BBB", "CCC"}, fields, now)
	if err != nil {
		t.Fatalf("HealthSummary: %v", err)
	}

	want := map[string]FieldFreshness{
		"AAA": FreshnessFresh,
		"BBB": FreshnessStale,
		"CCC": FreshnessNeverVerified,
	}
	for _, h := range summary {
		if h.Overall != want[h.Ticker] {
			t.Errorf("%s overall = %s, want %s", h.Ticker, h.Overall, want[h.Ticker])
		}
	}
}

func TestCrossCheckHoldings(t *testing.T) {
	companies := []models.Company{
		{Ticker: "MSTR", Asset: models.AssetBTC, Holdings: 446_000},
		{Ticker: "MARA", Asset: models.AssetBTC, Holdings: 44_000},
		{Ticker: "ZZZZ", Asset: models.AssetBTC, Holdings: 1_000},
	}
	feed := []models.TreasuryCompany{
		{Name: "Strategy", Symbol: "MSTR", TotalHoldings: 450_000},  // within 5%
		{Name: "MARA Holdings", Symbol: "mara", TotalHoldings: 52_000}, // ~15% off
	}

	out := CrossCheckHoldings(companies, feed)
	if len(out) != 1 {
		t.Fatalf("got %d discrepancies, want 1", len(out))
	}
	d := out[0]
	if d.Ticker != "MARA" {
		t.Errorf("discrepancy ticker = %s, want MARA", d.Ticker)
	}
	if d.DiffPct > -0.15 || d.DiffPct < -0.16 {
		t.Errorf("DiffPct = %f, want about -0.154", d.DiffPct)
	}
}

func TestReport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	mustLog(t, s, "BMNR", FieldHoldings, "4110000", now.AddDate(0, 0, -3))
	mustLog(t, s, "BMNR", FieldBurn, "15000000", now.AddDate(0, 0, -120))

	report, err := s.Report(ctx, trackedFields, now)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	for _, want := range []string{"BMNR", "[ok]", "[STALE]", "[never]"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func mustLog(t *testing.T, s *Store, ticker, field, value string, at time.Time) {
	t.Helper()
	_, err := s.Log(context.Background(), VerificationRecord{
		Ticker:     ticker,
		Field:      field,
		Value:      value,
		Source:     "test",
		VerifiedAt: at,
	})
	if err != nil {
		t.Fatalf("Log %s.%s: %v", ticker, field, err)
	}
}
