// Package models defines the core data structures used throughout datwatch.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OptFloat is a numeric value that is either present or unknown.
// Upstream fetches fail, fields go missing, and denominators come back
// zero; every calculation input that can be absent is an OptFloat so that
// "value is 0" and "value is unknown" can never be confused. The zero
// value is Unknown.
type OptFloat struct {
	value float64
	known bool
}

// Known returns an OptFloat holding v.
func Known(v float64) OptFloat {
	return OptFloat{value: v, known: true}
}

// Unknown returns an absent OptFloat.
func Unknown() OptFloat {
	return OptFloat{}
}

// FromPtr converts a possibly-nil pointer into an OptFloat.
func FromPtr(p *float64) OptFloat {
	if p == nil {
		return Unknown()
	}
	return Known(*p)
}

// IsKnown reports whether the value is present.
func (o OptFloat) IsKnown() bool { return o.known }

// Value returns the held value and whether it is present.
func (o OptFloat) Value() (float64, bool) { return o.value, o.known }

// Or returns the held value, or def when unknown.
func (o OptFloat) Or(def float64) float64 {
	if !o.known {
		return def
	}
	return o.value
}

// String renders the value, or "unknown" when absent.
func (o OptFloat) String() string {
	if !o.known {
		return "unknown"
	}
	return fmt.Sprintf("%g", o.value)
}

// MarshalJSON encodes an unknown value as JSON null. The presentation
// layer owns the "N/A" rendering; the wire carries null.
func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.known {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as Unknown and any number as Known.
func (o *OptFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Unknown()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Known(v)
	return nil
}
