// Package defillama implements the DefiLlama data provider. It serves
// the chain TVL breakdown behind the ETH-dominance precondition and a
// staking-yield snapshot proxied through the largest liquid staking
// pools.
//
// DefiLlama's APIs are free and unauthenticated.
package defillama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/infra"
	"github.com/reservelabs/datwatch/internal/provider"
)

const providerName = "defillama"

// Base URLs are package vars so tests can point fetchers at a local server.
var (
	baseURL   = "https://api.llama.fi"
	yieldsURL = "https://yields.llama.fi"
)

// Provider implements provider.Provider for DefiLlama.
type Provider struct {
	provider.BaseProvider
}

// New creates a new DefiLlama provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"DefiLlama - chain TVL and staking yields",
			"https://defillama.com",
			nil, // no credentials
		),
	}

	p.RegisterFetcher(newTVLFetcher())
	p.RegisterFetcher(newStakingFetcher())

	return p
}

// Ping checks connectivity to DefiLlama.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, baseURL+"/v2/chains", nil)
	if err != nil {
		return fmt.Errorf("defillama ping: %w", err)
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
