package portfolio

import "github.com/reservelabs/datwatch/pkg/models"

// HighWaterMark tracks the highest price observed for a ticker and
// reports drawdown against it. The mark updates before the drawdown for
// the same observation is computed, so the result is always <= 0, with
// equality exactly at a new high.
type HighWaterMark struct {
	high float64
	seen bool
}

// NewHighWaterMark starts a tracker, optionally seeded with a known
// historical high (e.g., a trailing one-year high from a fetch).
func NewHighWaterMark(seed models.OptFloat) *HighWaterMark {
	h := &HighWaterMark{}
	if v, ok := seed.Value(); ok && v > 0 {
		h.high = v
		h.seen = true
	}
	return h
}

// Observe records a price and returns the drawdown from the running
// high. The first positive observation establishes the mark and reports
// zero drawdown.
func (h *HighWaterMark) Observe(price float64) models.OptFloat {
	if price <= 0 {
		if !h.seen {
			return models.Unknown()
		}
		return models.Known((price - h.high) / h.high)
	}
	if !h.seen || price > h.high {
		h.high = price
		h.seen = true
	}
	return models.Known((price - h.high) / h.high)
}

// High returns the current high-water mark, if one has been observed.
func (h *HighWaterMark) High() models.OptFloat {
	if !h.seen {
		return models.Unknown()
	}
	return models.Known(h.high)
}
