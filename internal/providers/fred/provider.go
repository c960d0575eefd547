// Package fred implements the FRED (Federal Reserve Economic Data)
// provider. It serves individual macro series and the net-liquidity
// composite the macro dashboard is built on.
//
// FRED requires a free API key from https://fred.stlouisfed.org.
package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/infra"
	"github.com/reservelabs/datwatch/internal/provider"
)

const providerName = "fred"

// baseURL is a package var so tests can point fetchers at a local server.
var baseURL = "https://api.stlouisfed.org/fred"

// Series ids used by the precondition and liquidity views.
const (
	SeriesFedBalanceSheet = "WALCL"     // Fed total assets, millions USD, weekly
	SeriesTGA             = "WTREGEN"   // Treasury General Account, billions USD, weekly
	SeriesReverseRepo     = "RRPONTSYD" // Overnight reverse repo, billions USD, daily
	SeriesDeficit         = "FYFSD"     // Federal surplus/deficit, millions USD, annual
	SeriesGDP             = "GDP"       // Nominal GDP, billions USD, quarterly
)

// Provider implements provider.Provider for FRED.
type Provider struct {
	provider.BaseProvider
}

// New creates a new FRED provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Federal Reserve Economic Data - macro time series",
			"https://fred.stlouisfed.org",
			[]provider.ProviderCredential{
				{
					Name:        "api_key",
					Description: "FRED API key from fred.stlouisfed.org/docs/api/api_key.html",
					Required:    true,
					EnvVar:      "DATWATCH_PROVIDERS_FRED_API_KEY",
				},
			},
		),
	}

	p.RegisterFetcher(newMacroSeriesFetcher(p))
	p.RegisterFetcher(newNetLiquidityFetcher(p))

	return p
}

// Ping verifies the API key against a cheap endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/series?series_id=GDP&api_key=%s&file_type=json", baseURL, p.Credential("api_key"))
	body, _, err := infra.DoGet(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("fred ping: %w", err)
	}
	body.Close()
	return nil
}

// fetchJSON performs a GET request and decodes the response into dest.
func fetchJSON(ctx context.Context, url string, dest any) error {
	data, err := infra.GetJSONBytes(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now()}
}

func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now(), Cached: true}
}
