package models

// HealthStatus is the three-level precondition health rating plus an
// explicit unknown. Unknown means the indicator itself was unavailable;
// it is never conflated with critical, because "no data" and "bad data"
// call for different operator actions.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
	HealthUnknown  HealthStatus = "unknown"
)

// PreconditionResult is the evaluated health of one thesis precondition.
type PreconditionResult struct {
	Key       string       `json:"key"` // e.g., "eth_dominance"
	Label     string       `json:"label"`
	Value     OptFloat     `json:"value"`
	Status    HealthStatus `json:"status"`
	Threshold string       `json:"threshold"` // human-readable invalidation rule
}
