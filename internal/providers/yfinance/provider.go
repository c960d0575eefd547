// Package yfinance implements the Yahoo Finance data provider.
// It wraps Yahoo's public quote (v7) and chart (v8) APIs into the
// standard provider/fetcher framework.
//
// Yahoo Finance is a free, no-API-key source and is the primary quote
// provider for the DAT equity universe.
package yfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/infra"
	"github.com/reservelabs/datwatch/internal/provider"
)

const providerName = "yfinance"

// baseURL is a package var so tests can point fetchers at a local server.
var baseURL = "https://query1.finance.yahoo.com"

// Provider implements provider.Provider for Yahoo Finance.
type Provider struct {
	provider.BaseProvider
}

// New creates a new Yahoo Finance provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Yahoo Finance - free global equity quotes and history",
			"https://finance.yahoo.com",
			nil, // no credentials required
		),
	}

	p.RegisterFetcher(newStockQuoteFetcher())
	p.RegisterFetcher(newStockHistoryFetcher())

	return p
}

// Ping checks connectivity to Yahoo Finance.
func (p *Provider) Ping(ctx context.Context) error {
	url := baseURL + "/v8/finance/chart/MSTR?range=1d&interval=1d"
	body, _, err := infra.DoGet(ctx, url, jsonHeaders())
	if err != nil {
		return fmt.Errorf("yfinance ping: %w", err)
	}
	body.Close()
	return nil
}

// --- Shared helpers ---

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fetchJSON performs a GET request and decodes the response into dest.
func fetchJSON(ctx context.Context, url string, dest any) error {
	data, err := infra.GetJSONBytes(ctx, url, jsonHeaders())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// newResult creates a FetchResult with the current timestamp.
func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}

// newCachedResult creates a FetchResult marked as cached.
func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
		Cached:    true,
	}
}
