// Package coingecko implements the CoinGecko data provider.
// It covers spot prices for the treasury assets and CoinGecko's
// public-companies treasury registry, which the audit layer uses to
// cross-check configured holdings.
//
// The free API needs no key but is aggressively rate limited, so the
// fetchers run with a conservative limiter and a long cache.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/infra"
	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

const providerName = "coingecko"

// baseURL is a package var so tests can point fetchers at a local server.
var baseURL = "https://api.coingecko.com/api/v3"

// coinIDs maps treasury assets to CoinGecko coin ids.
var coinIDs = map[models.Asset]string{
	models.AssetETH:  "ethereum",
	models.AssetBTC:  "bitcoin",
	models.AssetSOL:  "solana",
	models.AssetHYPE: "hyperliquid",
	models.AssetBNB:  "binancecoin",
}

// assetByID is the reverse of coinIDs.
var assetByID = func() map[string]models.Asset {
	m := make(map[string]models.Asset, len(coinIDs))
	for asset, id := range coinIDs {
		m[id] = asset
	}
	return m
}()

// Provider implements provider.Provider for CoinGecko.
type Provider struct {
	provider.BaseProvider
}

// New creates a new CoinGecko provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"CoinGecko - crypto spot prices and public treasury registry",
			"https://www.coingecko.com",
			nil, // free tier, no credentials
		),
	}

	p.RegisterFetcher(newCryptoPriceFetcher())
	p.RegisterFetcher(newTreasuryCompaniesFetcher())

	return p
}

// Ping checks connectivity to CoinGecko.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("coingecko ping: %w", err)
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
