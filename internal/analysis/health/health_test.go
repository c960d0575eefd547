package health

import (
	"testing"

	"github.com/reservelabs/datwatch/pkg/models"
)

func TestEvaluateHigherIsBetter(t *testing.T) {
	th := Thresholds{Warning: 0.50, Critical: 0.40, HigherIsBetter: true}

	cases := []struct {
		value float64
		want  models.HealthStatus
	}{
		{0.60, models.HealthHealthy},
		{0.50, models.HealthHealthy}, // boundary is healthy
		{0.45, models.HealthWarning},
		{0.40, models.HealthWarning}, // boundary is warning
		{0.35, models.HealthCritical},
	}
	for _, tc := range cases {
		if got := Evaluate(models.Known(tc.value), th); got != tc.want {
			t.Errorf("Evaluate(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestEvaluateLowerIsBetter(t *testing.T) {
	th := Thresholds{Warning: -3.0, Critical: 0.0, HigherIsBetter: false}

	cases := []struct {
		value float64
		want  models.HealthStatus
	}{
		{-6.5, models.HealthHealthy}, // deep deficit confirms the thesis
		{-3.0, models.HealthHealthy},
		{-1.0, models.HealthWarning},
		{0.0, models.HealthWarning},
		{2.0, models.HealthCritical}, // surplus refutes it
	}
	for _, tc := range cases {
		if got := Evaluate(models.Known(tc.value), th); got != tc.want {
			t.Errorf("Evaluate(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestEvaluateUnknownIsNotCritical(t *testing.T) {
	th := Thresholds{Warning: 0.03, Critical: 0.02, HigherIsBetter: true}
	got := Evaluate(models.Unknown(), th)
	if got != models.HealthUnknown {
		t.Errorf("absent input = %s, want unknown", got)
	}
	if got == models.HealthCritical {
		t.Error("no data must never rate as critical")
	}
}

func TestPreconditions(t *testing.T) {
	results := Preconditions(models.Known(0.55), models.Known(0.035), models.Known(-6.2))

	byKey := map[string]models.PreconditionResult{}
	for _, r := range results {
		byKey[r.Key] = r
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 preconditions, got %d", len(results))
	}

	if byKey["eth_dominance"].Status != models.HealthHealthy {
		t.Errorf("dominance = %s", byKey["eth_dominance"].Status)
	}
	if byKey["eth_yield"].Status != models.HealthHealthy {
		t.Errorf("yield = %s", byKey["eth_yield"].Status)
	}
	if byKey["macro_backdrop"].Status != models.HealthHealthy {
		t.Errorf("macro = %s", byKey["macro_backdrop"].Status)
	}
	if byKey["eth_dominance"].Label != "55.0% ETH ecosystem TVL share" {
		t.Errorf("label = %q", byKey["eth_dominance"].Label)
	}
}

func TestPreconditionsIndependentAbsence(t *testing.T) {
	results := Preconditions(models.Unknown(), models.Known(0.025), models.Unknown())

	byKey := map[string]models.PreconditionResult{}
	for _, r := range results {
		byKey[r.Key] = r
	}

	if byKey["eth_dominance"].Status != models.HealthUnknown {
		t.Errorf("dominance = %s", byKey["eth_dominance"].Status)
	}
	if byKey["eth_dominance"].Label != "Data unavailable" {
		t.Errorf("label = %q", byKey["eth_dominance"].Label)
	}
	if byKey["eth_yield"].Status != models.HealthWarning {
		t.Errorf("a present neighbor must still evaluate, got %s", byKey["eth_yield"].Status)
	}
	if byKey["macro_backdrop"].Status != models.HealthUnknown {
		t.Errorf("macro = %s", byKey["macro_backdrop"].Status)
	}
}
