// Package sec implements the SEC EDGAR data provider. It resolves
// tickers to CIK numbers and serves recent filings for the tracked
// companies.
//
// EDGAR requires a descriptive User-Agent with contact info; requests
// without one are rejected. The fair-access policy also caps request
// rates, so the fetchers run a strict limiter.
package sec

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/reservelabs/datwatch/internal/infra"
	"github.com/reservelabs/datwatch/internal/provider"
)

const providerName = "sec"

// Base URLs are package vars so tests can point fetchers at a local server.
var (
	dataURL = "https://data.sec.gov"
	wwwURL  = "https://www.sec.gov"
)

// Provider implements provider.Provider for SEC EDGAR.
type Provider struct {
	provider.BaseProvider

	mu     sync.Mutex
	cikMap map[string]string // ticker → zero-padded CIK
}

// New creates a new SEC provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"SEC EDGAR - company filings",
			"https://www.sec.gov/edgar",
			[]provider.ProviderCredential{
				{
					Name:        "user_agent",
					Description: "Descriptive User-Agent with contact email, per EDGAR fair access policy",
					Required:    false,
					EnvVar:      "DATWATCH_PROVIDERS_SEC_USER_AGENT",
				},
			},
		),
	}

	p.RegisterFetcher(newFilingsFetcher(p))

	return p
}

// Ping checks connectivity to EDGAR.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, wwwURL+"/files/company_tickers.json", p.headers())
	if err != nil {
		return fmt.Errorf("sec ping: %w", err)
	}
	body.Close()
	return nil
}

func (p *Provider) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if ua := p.Credential("user_agent"); ua != "" {
		h["User-Agent"] = ua
	}
	return h
}

// fetchJSON performs a GET request and decodes the response into dest.
func (p *Provider) fetchJSON(ctx context.Context, url string, dest any) error {
	data, err := infra.GetJSONBytes(ctx, url, p.headers())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// resolveCIK maps a ticker to its zero-padded CIK, loading and caching
// the full EDGAR ticker table on first use.
func (p *Provider) resolveCIK(ctx context.Context, ticker string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cikMap == nil {
		var table map[string]cikEntry
		if err := p.fetchJSON(ctx, wwwURL+"/files/company_tickers.json", &table); err != nil {
			return "", fmt.Errorf("sec ticker table: %w", err)
		}
		p.cikMap = make(map[string]string, len(table))
		for _, e := range table {
			p.cikMap[e.Ticker] = fmt.Sprintf("%010d", e.CIK)
		}
	}

	cik, ok := p.cikMap[ticker]
	if !ok {
		return "", fmt.Errorf("no CIK for ticker %q", ticker)
	}
	return cik, nil
}

func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now()}
}

func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now(), Cached: true}
}
