package fred

// --- FRED API response types ---

// observationsResponse wraps /series/observations.
type observationsResponse struct {
	Units        string        `json:"units"`
	Observations []observation `json:"observations"`
}

// observation values arrive as strings; missing data is ".".
type observation struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value string `json:"value"`
}

// errorResponse is FRED's error envelope.
type errorResponse struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
