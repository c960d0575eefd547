package defillama

import (
	"context"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- DefiTVL fetcher ---

// ethL2Chains are the rollups counted toward the ETH ecosystem.
// Settlement ultimately lands on L1, so their TVL backs the
// dominance thesis the same way mainnet TVL does.
var ethL2Chains = map[string]bool{
	"Arbitrum": true,
	"Base":     true,
	"OP Mainnet": true,
	"Optimism": true,
	"Scroll":   true,
	"Linea":    true,
	"zkSync Era": true,
	"Blast":    true,
	"Mantle":   true,
}

type chainTVL struct {
	Name string  `json:"name"`
	TVL  float64 `json:"tvl"`
}

type tvlFetcher struct {
	provider.BaseFetcher
}

func newTVLFetcher() *tvlFetcher {
	return &tvlFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelDefiTVL,
			"Chain TVL breakdown and ETH ecosystem dominance",
			nil,
			nil,
			30*time.Minute, 3, time.Second,
		),
	}
}

func (f *tvlFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	var chains []chainTVL
	if err := fetchJSON(ctx, baseURL+"/v2/chains", &chains); err != nil {
		return nil, fmt.Errorf("defillama chains: %w", err)
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("defillama returned no chains")
	}

	snap := models.TVLSnapshot{FetchedAt: time.Now()}
	for _, c := range chains {
		snap.TotalTVL += c.TVL
		switch {
		case c.Name == "Ethereum":
			snap.ETHL1TVL += c.TVL
		case ethL2Chains[c.Name]:
			snap.L2TVL += c.TVL
		}
	}
	snap.EcosystemTVL = snap.ETHL1TVL + snap.L2TVL
	if snap.TotalTVL > 0 {
		snap.Dominance = snap.EcosystemTVL / snap.TotalTVL
	}

	f.CacheSetTTL(cacheKey, snap, 30*time.Minute)
	return newResult(snap), nil
}
