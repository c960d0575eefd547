package yfinance

import (
	"context"
	"fmt"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- StockQuote fetcher ---

type stockQuoteFetcher struct {
	provider.BaseFetcher
}

func newStockQuoteFetcher() *stockQuoteFetcher {
	return &stockQuoteFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelStockQuote,
			"Stock quote with fundamentals from Yahoo Finance",
			[]string{provider.ParamTicker},
			nil,
			5*time.Minute, 5, time.Second,
		),
	}
}

func (f *stockQuoteFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	ticker := params[provider.ParamTicker]

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", baseURL, ticker)

	var resp yfQuoteResponse
	if err := fetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("yfinance quote %s: %w", ticker, err)
	}

	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteResponse.Error.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote for %s", ticker)
	}

	snap := toSnapshot(resp.QuoteResponse.Result[0])
	f.CacheSet(cacheKey, snap)
	return newResult(snap), nil
}

// toSnapshot maps a Yahoo quote result onto the standard snapshot model.
// Absent upstream fields stay Unknown.
func toSnapshot(r yfQuoteResult) models.MarketSnapshot {
	name := r.LongName
	if name == "" {
		name = r.ShortName
	}

	snap := models.MarketSnapshot{
		Ticker:            r.Symbol,
		Name:              name,
		Price:             models.FromPtr(r.RegularMarketPrice),
		MarketCap:         models.FromPtr(r.MarketCap),
		SharesOutstanding: models.FromPtr(r.SharesOutstanding),
		PERatio:           models.FromPtr(r.TrailingPE),
		WeekHigh52:        models.FromPtr(r.FiftyTwoWeekHigh),
		WeekLow52:         models.FromPtr(r.FiftyTwoWeekLow),
		Volume:            models.FromPtr(r.RegularMarketVolume),
		AvgVolume:         models.FromPtr(r.AverageDailyVolume3Month),
		DividendYield:     models.FromPtr(r.DividendYield),
		FetchedAt:         time.Now(),
	}

	// A positive trailing dividend rate counts as paying even when the
	// yield field is missing.
	if y, ok := snap.DividendYield.Value(); ok && y > 0 {
		snap.HasDividend = true
	} else if r.TrailingAnnualDividendRate != nil && *r.TrailingAnnualDividendRate > 0 {
		snap.HasDividend = true
	}

	return snap
}
