package models

import "time"

// NewsArticle is a single item from a market news feed.
type NewsArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Tickers     []string  `json:"tickers,omitempty"` // tickers mentioned, if detected
	PublishedAt time.Time `json:"published_at"`
}

// Filing is one SEC EDGAR filing reference for a tracked company.
type Filing struct {
	Ticker      string    `json:"ticker"`
	CIK         string    `json:"cik,omitempty"`
	FormType    string    `json:"form_type"` // "8-K", "10-Q", "10-K", ...
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	FiledAt     time.Time `json:"filed_at"`
}
