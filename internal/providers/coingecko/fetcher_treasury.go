package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- TreasuryCompanies fetcher ---

// CoinGecko only publishes treasury registries for BTC and ETH.
var treasuryAssets = map[models.Asset]bool{
	models.AssetBTC: true,
	models.AssetETH: true,
}

type treasuryResponse struct {
	Companies []treasuryEntry `json:"companies"`
}

type treasuryEntry struct {
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Country           string  `json:"country"`
	TotalHoldings     float64 `json:"total_holdings"`
	TotalCurrentValue float64 `json:"total_current_value_usd"`
	PctOfSupply       float64 `json:"percentage_of_total_supply"`
}

type treasuryCompaniesFetcher struct {
	provider.BaseFetcher
}

func newTreasuryCompaniesFetcher() *treasuryCompaniesFetcher {
	return &treasuryCompaniesFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelTreasuryCompanies,
			"Public companies treasury registry from CoinGecko",
			[]string{provider.ParamAsset},
			nil,
			time.Hour, 2, time.Second,
		),
	}
}

func (f *treasuryCompaniesFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	asset := models.Asset(strings.ToUpper(params[provider.ParamAsset]))
	if !treasuryAssets[asset] {
		return nil, fmt.Errorf("no treasury registry for asset %q", asset)
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/companies/public_treasury/%s", baseURL, coinIDs[asset])

	var resp treasuryResponse
	if err := fetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("coingecko treasury %s: %w", asset, err)
	}

	companies := make([]models.TreasuryCompany, 0, len(resp.Companies))
	for _, e := range resp.Companies {
		// Symbols arrive exchange-qualified ("NASDAQ:MSTR").
		symbol := e.Symbol
		if i := strings.LastIndex(symbol, ":"); i >= 0 {
			symbol = symbol[i+1:]
		}
		companies = append(companies, models.TreasuryCompany{
			Name:          e.Name,
			Symbol:        symbol,
			Country:       e.Country,
			TotalHoldings: e.TotalHoldings,
			TotalValueUSD: e.TotalCurrentValue,
			PctOfSupply:   e.PctOfSupply,
		})
	}

	f.CacheSetTTL(cacheKey, companies, time.Hour)
	return newResult(companies), nil
}
