package fred

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

// --- MacroSeries fetcher ---

type macroSeriesFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newMacroSeriesFetcher(p *Provider) *macroSeriesFetcher {
	return &macroSeriesFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelMacroSeries,
			"Single FRED time series by id",
			[]string{provider.ParamSeries},
			[]string{provider.ParamRange, provider.ParamLimit},
			time.Hour, 5, time.Second,
		),
		p: p,
	}
}

func (f *macroSeriesFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	seriesID := params[provider.ParamSeries]

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	series, err := f.p.fetchSeries(ctx, seriesID, params[provider.ParamRange], params[provider.ParamLimit])
	if err != nil {
		return nil, err
	}

	f.CacheSetTTL(cacheKey, series, time.Hour)
	return newResult(series), nil
}

// fetchSeries retrieves and parses one series. Observations with the
// FRED missing-value marker are dropped rather than zeroed.
func (p *Provider) fetchSeries(ctx context.Context, seriesID, rng, limit string) (models.MacroSeries, error) {
	url := fmt.Sprintf(
		"%s/series/observations?series_id=%s&api_key=%s&file_type=json&sort_order=asc",
		baseURL, seriesID, p.Credential("api_key"),
	)
	if rng != "" {
		if start, ok := rangeStart(rng); ok {
			url += "&observation_start=" + start.Format(utils.DateFormat)
		}
	}
	if limit != "" {
		url += "&limit=" + limit
	}

	var resp observationsResponse
	if err := fetchJSON(ctx, url, &resp); err != nil {
		return models.MacroSeries{}, fmt.Errorf("fred series %s: %w", seriesID, err)
	}
	if len(resp.Observations) == 0 {
		return models.MacroSeries{}, fmt.Errorf("fred series %s: no observations", seriesID)
	}

	points := make([]models.MacroPoint, 0, len(resp.Observations))
	for _, obs := range resp.Observations {
		if obs.Value == "." {
			continue
		}
		v, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		d, err := time.Parse(utils.DateFormat, obs.Date)
		if err != nil {
			continue
		}
		points = append(points, models.MacroPoint{Date: d, Value: v})
	}

	return models.MacroSeries{
		SeriesID:  seriesID,
		Unit:      resp.Units,
		Points:    points,
		FetchedAt: time.Now(),
	}, nil
}

// rangeStart turns a range string like "90d" or "2y" into a start date.
func rangeStart(rng string) (time.Time, bool) {
	if len(rng) < 2 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(rng[:len(rng)-1])
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	now := time.Now()
	switch rng[len(rng)-1] {
	case 'd':
		return now.AddDate(0, 0, -n), true
	case 'm':
		return now.AddDate(0, -n, 0), true
	case 'y':
		return now.AddDate(-n, 0, 0), true
	}
	return time.Time{}, false
}
