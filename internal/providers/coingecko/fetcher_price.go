package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- CryptoPrice fetcher ---

// simplePriceEntry is one coin's block in the /simple/price response.
type simplePriceEntry struct {
	USD          float64 `json:"usd"`
	USDMarketCap float64 `json:"usd_market_cap"`
	USD24hChange float64 `json:"usd_24h_change"`
}

type cryptoPriceFetcher struct {
	provider.BaseFetcher
}

func newCryptoPriceFetcher() *cryptoPriceFetcher {
	return &cryptoPriceFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelCryptoPrice,
			"Spot prices for all treasury assets from CoinGecko",
			nil,
			[]string{provider.ParamAsset},
			2*time.Minute, 2, time.Second,
		),
	}
}

// Fetch returns map[models.Asset]models.CryptoQuote. Without an asset
// param it fetches all treasury assets in one request, which is the
// normal dashboard path.
func (f *cryptoPriceFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	ids := make([]string, 0, len(coinIDs))
	if raw := params[provider.ParamAsset]; raw != "" {
		id, ok := coinIDs[models.Asset(strings.ToUpper(raw))]
		if !ok {
			return nil, fmt.Errorf("unknown asset %q", raw)
		}
		ids = append(ids, id)
	} else {
		for _, id := range coinIDs {
			ids = append(ids, id)
		}
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(
		"%s/simple/price?ids=%s&vs_currencies=usd&include_market_cap=true&include_24hr_change=true",
		baseURL, strings.Join(ids, ","),
	)

	var resp map[string]simplePriceEntry
	if err := fetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("coingecko prices: %w", err)
	}

	now := time.Now()
	quotes := make(map[models.Asset]models.CryptoQuote, len(resp))
	for id, entry := range resp {
		asset, ok := assetByID[id]
		if !ok {
			continue
		}
		quotes[asset] = models.CryptoQuote{
			Asset:     asset,
			Price:     entry.USD,
			Change24h: entry.USD24hChange,
			MarketCap: entry.USDMarketCap,
			FetchedAt: now,
		}
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("coingecko returned no prices")
	}

	f.CacheSet(cacheKey, quotes)
	return newResult(quotes), nil
}
