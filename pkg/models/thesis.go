package models

// ThesisStatus tracks where a thesis sits in its lifecycle.
type ThesisStatus string

const (
	ThesisWorldview ThesisStatus = "worldview"
	ThesisCore      ThesisStatus = "core"
	ThesisActive    ThesisStatus = "active"
	ThesisTesting   ThesisStatus = "testing"
	ThesisLongTerm  ThesisStatus = "long-term"
)

// Conviction is the holder's confidence level in a thesis.
type Conviction string

const (
	ConvictionHigh       Conviction = "high"
	ConvictionMediumHigh Conviction = "medium-high"
	ConvictionMedium     Conviction = "medium"
)

// ThesisRecord is one of the 13 fixed investment theses. Read-only
// reference data; nothing about a thesis is computed.
type ThesisRecord struct {
	ID         int          `json:"id"`
	Layer      int          `json:"layer"` // 1-4
	LayerName  string       `json:"layer_name"`
	Title      string       `json:"title"`
	CoreClaim  string       `json:"core_claim"`
	Confirms   []string     `json:"confirms"`
	Refutes    []string     `json:"refutes"`
	Status     ThesisStatus `json:"status"`
	Conviction Conviction   `json:"conviction"`
}
