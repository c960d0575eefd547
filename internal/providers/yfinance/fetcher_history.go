package yfinance

import (
	"context"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- StockHistory fetcher ---

type stockHistoryFetcher struct {
	provider.BaseFetcher
}

func newStockHistoryFetcher() *stockHistoryFetcher {
	return &stockHistoryFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelStockHistory,
			"Daily closing price history from Yahoo Finance",
			[]string{provider.ParamTicker},
			[]string{provider.ParamRange},
			15*time.Minute, 5, time.Second,
		),
	}
}

func (f *stockHistoryFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	ticker := params[provider.ParamTicker]

	rng := params[provider.ParamRange]
	if rng == "" {
		rng = "1y"
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", baseURL, ticker, rng)

	var resp yfChartResponse
	if err := fetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("yfinance chart %s: %w", ticker, err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yfinance chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no history for %s", ticker)
	}

	points := parseHistory(resp.Chart.Result[0])
	f.CacheSetTTL(cacheKey, points, 15*time.Minute)
	return newResult(points), nil
}

// parseHistory converts a chart result into close-price points.
// Bars with a null close (halted days) are skipped.
func parseHistory(r yfChartResult) []models.PricePoint {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	closes := r.Indicators.Quote[0].Close
	// Prefer adjusted closes when present.
	if len(r.Indicators.AdjClose) > 0 && len(r.Indicators.AdjClose[0].AdjClose) == len(r.Timestamp) {
		closes = r.Indicators.AdjClose[0].AdjClose
	}

	points := make([]models.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return points
}
