package defillama

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- StakingStats fetcher ---

// stakingPools names the liquid-staking pool used as the network APY
// proxy per asset. Lido stETH tracks the ETH consensus yield closely;
// the others track their chains' native staking rates.
var stakingPools = map[models.Asset]struct {
	project string
	symbol  string
}{
	models.AssetETH: {"lido", "STETH"},
	models.AssetSOL: {"marinade-liquid-staking", "MSOL"},
	models.AssetBNB: {"binance-staked-bnb", "BNBX"},
}

type poolsResponse struct {
	Data []poolEntry `json:"data"`
}

type poolEntry struct {
	Project string  `json:"project"`
	Symbol  string  `json:"symbol"`
	Chain   string  `json:"chain"`
	TVLUSD  float64 `json:"tvlUsd"`
	APY     float64 `json:"apy"` // percent
}

type stakingFetcher struct {
	provider.BaseFetcher
}

func newStakingFetcher() *stakingFetcher {
	return &stakingFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelStaking,
			"Network staking APY proxied via the largest liquid staking pool",
			[]string{provider.ParamAsset},
			nil,
			time.Hour, 3, time.Second,
		),
	}
}

func (f *stakingFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	asset := models.Asset(strings.ToUpper(params[provider.ParamAsset]))
	pool, ok := stakingPools[asset]
	if !ok {
		return nil, fmt.Errorf("no staking proxy for asset %q", asset)
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	var resp poolsResponse
	if err := fetchJSON(ctx, yieldsURL+"/pools", &resp); err != nil {
		return nil, fmt.Errorf("defillama pools: %w", err)
	}

	// Pick the largest matching pool; projects often run several.
	var best *poolEntry
	for i := range resp.Data {
		e := &resp.Data[i]
		if e.Project != pool.project || !strings.EqualFold(e.Symbol, pool.symbol) {
			continue
		}
		if best == nil || e.TVLUSD > best.TVLUSD {
			best = e
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no %s pool found for %s", pool.project, asset)
	}

	stats := models.StakingStats{
		LidoTVLUSD:   best.TVLUSD,
		EstimatedAPY: best.APY / 100, // percent to fraction
		FetchedAt:    time.Now(),
	}

	f.CacheSetTTL(cacheKey, stats, time.Hour)
	return newResult(stats), nil
}
