package fred

import (
	"context"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- NetLiquidity fetcher ---

// Net liquidity = Fed balance sheet − Treasury General Account −
// overnight reverse repo, all in billions USD. WALCL is published in
// millions and is scaled down here; the other two arrive in billions.

type netLiquidityFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newNetLiquidityFetcher(p *Provider) *netLiquidityFetcher {
	return &netLiquidityFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelNetLiquidity,
			"Net liquidity composite (WALCL - TGA - RRP)",
			nil,
			nil,
			time.Hour, 5, time.Second,
		),
		p: p,
	}
}

func (f *netLiquidityFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	// 90 days covers the weekly series' publication lag.
	fed, err := f.latest(ctx, SeriesFedBalanceSheet)
	if err != nil {
		return nil, err
	}
	tga, err := f.latest(ctx, SeriesTGA)
	if err != nil {
		return nil, err
	}
	rrp, err := f.latest(ctx, SeriesReverseRepo)
	if err != nil {
		return nil, err
	}

	fedBillions := fed.Value / 1000

	nl := models.NetLiquidity{
		FedBalanceSheet: fedBillions,
		TGA:             tga.Value,
		ReverseRepo:     rrp.Value,
		Net:             fedBillions - tga.Value - rrp.Value,
		AsOf:            fed.Date,
	}

	f.CacheSetTTL(cacheKey, nl, time.Hour)
	return newResult(nl), nil
}

func (f *netLiquidityFetcher) latest(ctx context.Context, seriesID string) (models.MacroPoint, error) {
	series, err := f.p.fetchSeries(ctx, seriesID, "90d", "")
	if err != nil {
		return models.MacroPoint{}, err
	}
	pt, ok := series.Latest()
	if !ok {
		return models.MacroPoint{}, fmt.Errorf("fred series %s: empty window", seriesID)
	}
	return pt, nil
}
