package valuation

import (
	"math"

	"github.com/reservelabs/datwatch/pkg/models"
)

// Thresholds for the phase rules. A terminal company has an established
// earnings multiple; a transition company either pays a dividend or
// trades within a narrow band of NAV.
const (
	terminalPERatio   = 20.0
	transitionNAVBand = 0.10
)

// ClassifyPhase maps a company's current metrics to its lifecycle phase.
// The rules are evaluated in priority order, first match wins:
//
//  1. Terminal: paying a dividend with a known P/E above 20.
//  2. Transition: paying a dividend, or the NAV discount is known and
//     within ±10%.
//  3. Accumulation: everything else, including "not enough information
//     to claim a narrower discount".
//
// This is a stateless point-in-time classification, not a stored state
// machine; noisy inputs may flip the result between calls.
//
// opsCostRatio is accepted for symmetry with the transition-signal list
// but does not participate in the decision.
func ClassifyPhase(navDiscount models.OptFloat, hasDividend bool, peRatio, opsCostRatio models.OptFloat) models.Phase {
	_ = opsCostRatio

	if pe, ok := peRatio.Value(); hasDividend && ok && pe > terminalPERatio {
		return models.PhaseTerminal
	}

	if hasDividend {
		return models.PhaseTransition
	}
	if d, ok := navDiscount.Value(); ok && math.Abs(d) < transitionNAVBand {
		return models.PhaseTransition
	}

	return models.PhaseAccumulation
}

// TransitionSignals counts how many of the phase-transition indicators
// are currently present for a company.
func TransitionSignals(hasDividend, opsCostsDeclining, narrativeShift, discountNarrowing, optionsMarket bool) (present, total int) {
	signals := []bool{hasDividend, opsCostsDeclining, narrativeShift, discountNarrowing, optionsMarket}
	for _, s := range signals {
		if s {
			present++
		}
	}
	return present, len(signals)
}
