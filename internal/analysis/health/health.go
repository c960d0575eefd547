// Package health maps macro and on-chain indicators onto the
// three-level thesis-precondition status. Absent indicators are
// reported as unknown, which is a distinct state from critical: "no
// data" and "bad data" demand different operator responses.
package health

import (
	"fmt"

	"github.com/reservelabs/datwatch/pkg/models"
)

// Thresholds for one indicator. Direction decides which side of the
// thresholds is healthy.
type Thresholds struct {
	Warning        float64
	Critical       float64
	HigherIsBetter bool
}

// Evaluate rates an indicator against its thresholds.
//
// Higher-is-better: v >= warning is healthy, v >= critical is warning,
// below critical is critical. Lower-is-better inverts symmetrically.
func Evaluate(value models.OptFloat, th Thresholds) models.HealthStatus {
	v, ok := value.Value()
	if !ok {
		return models.HealthUnknown
	}

	if th.HigherIsBetter {
		switch {
		case v >= th.Warning:
			return models.HealthHealthy
		case v >= th.Critical:
			return models.HealthWarning
		default:
			return models.HealthCritical
		}
	}

	switch {
	case v <= th.Warning:
		return models.HealthHealthy
	case v <= th.Critical:
		return models.HealthWarning
	default:
		return models.HealthCritical
	}
}

// Precondition thresholds, from the thesis invalidation rules.
var (
	ethDominanceThresholds = Thresholds{Warning: 0.50, Critical: 0.40, HigherIsBetter: true}
	ethYieldThresholds     = Thresholds{Warning: 0.03, Critical: 0.02, HigherIsBetter: true}
	// Deficit/GDP is reported negative for a deficit. The fiscal
	// dominance thesis is CONFIRMED by sustained deficits, so deeper
	// deficits rate healthier; a surplus would refute the thesis.
	deficitGDPThresholds = Thresholds{Warning: -3.0, Critical: 0.0, HigherIsBetter: false}
)

// Preconditions evaluates the full thesis-precondition battery. Inputs
// arrive independently from different fetchers; any of them may be
// absent without affecting the others.
func Preconditions(ethDominance, ethStakingAPY, deficitGDPRatio models.OptFloat) []models.PreconditionResult {
	results := []models.PreconditionResult{
		{
			Key:       "eth_dominance",
			Value:     ethDominance,
			Status:    Evaluate(ethDominance, ethDominanceThresholds),
			Threshold: "Invalidation below 40% for 2+ years",
		},
		{
			Key:       "eth_yield",
			Value:     ethStakingAPY,
			Status:    Evaluate(ethStakingAPY, ethYieldThresholds),
			Threshold: "Invalidation below 1% for 2+ years",
		},
		{
			Key:       "macro_backdrop",
			Value:     deficitGDPRatio,
			Status:    Evaluate(deficitGDPRatio, deficitGDPThresholds),
			Threshold: "Thesis confirmed by continued deficits",
		},
	}

	for i := range results {
		results[i].Label = label(results[i])
	}
	return results
}

func label(r models.PreconditionResult) string {
	v, ok := r.Value.Value()
	if !ok {
		return "Data unavailable"
	}
	switch r.Key {
	case "eth_dominance":
		return fmt.Sprintf("%.1f%% ETH ecosystem TVL share", v*100)
	case "eth_yield":
		return fmt.Sprintf("%.2f%% staking APY", v*100)
	case "macro_backdrop":
		return fmt.Sprintf("%.1f%% deficit/GDP", v)
	default:
		return fmt.Sprintf("%g", v)
	}
}
