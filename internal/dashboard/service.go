package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reservelabs/datwatch/internal/analysis/health"
	"github.com/reservelabs/datwatch/internal/analysis/portfolio"
	"github.com/reservelabs/datwatch/internal/analysis/productivity"
	"github.com/reservelabs/datwatch/internal/analysis/valuation"
	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/internal/universe"
	"github.com/reservelabs/datwatch/pkg/models"
)

const defaultConcurrency = 6

// Service builds dashboard snapshots from the provider registry and the
// static company universe.
type Service struct {
	reg         *provider.Registry
	uni         *universe.Universe
	log         *zap.Logger
	concurrency int

	mu   sync.RWMutex
	last *Summary

	// First-seen share counts, the baseline for dilution alerts.
	sharesMu       sync.Mutex
	baselineShares map[string]float64
}

// New creates a snapshot service. concurrency bounds parallel stock
// quote fetches; zero means the default.
func New(reg *provider.Registry, uni *universe.Universe, log *zap.Logger, concurrency int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		reg:            reg,
		uni:            uni,
		log:            log,
		concurrency:    concurrency,
		baselineShares: make(map[string]float64),
	}
}

// Last returns the most recent snapshot, or nil before the first refresh.
func (s *Service) Last() *Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Snapshot rebuilds the full dashboard view. Stock-level fetch failures
// degrade to all-unknown snapshots rather than failing the cycle; only a
// total crypto price outage is fatal, since every NAV needs a spot price.
func (s *Service) Snapshot(ctx context.Context) (*Summary, error) {
	now := time.Now()
	summary := &Summary{GeneratedAt: now}

	quotes, err := s.cryptoQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("crypto prices: %w", err)
	}

	snapshots := s.stockSnapshots(ctx, summary)

	for _, asset := range models.AllAssets {
		companies := s.uni.Companies(asset)
		if len(companies) == 0 {
			continue
		}
		quote, ok := quotes[asset]
		if !ok {
			s.log.Warn("no spot quote for asset, skipping", zap.String("asset", string(asset)))
			summary.Degraded = append(summary.Degraded, "price:"+string(asset))
			continue
		}

		as := AssetSummary{Asset: asset, Quote: quote}
		records := make([]models.ProductivityRecord, 0, len(companies))
		for _, c := range companies {
			snap := snapshots[c.Ticker]
			view := CompanyView{
				Company:      c,
				Snapshot:     snap,
				Metrics:      valuation.Compute(c, quote.Price, snap),
				Productivity: productivity.Compute(c, quote.Price, s.uni.BenchmarkAPY(asset), now),
			}
			as.Companies = append(as.Companies, view)
			as.TotalHoldings += c.Holdings
			as.TotalNAV += view.Metrics.NAV
			records = append(records, view.Productivity)
		}
		as.Productivity = productivity.Aggregate(asset, records)
		summary.Assets = append(summary.Assets, as)
	}

	summary.Alerts = s.buildAlerts(summary)
	summary.Preconditions = s.preconditions(ctx, summary)
	summary.NetLiquidity = s.netLiquidity(ctx, summary)

	s.mu.Lock()
	s.last = summary
	s.mu.Unlock()
	return summary, nil
}

// cryptoQuotes fetches spot prices for every tracked asset in one call.
func (s *Service) cryptoQuotes(ctx context.Context) (map[models.Asset]models.CryptoQuote, error) {
	result, err := s.reg.Fetch(ctx, provider.ModelCryptoPrice, provider.QueryParams{})
	if err != nil {
		return nil, err
	}
	quotes, ok := result.Data.(map[models.Asset]models.CryptoQuote)
	if !ok {
		return nil, fmt.Errorf("unexpected crypto price payload %T", result.Data)
	}
	return quotes, nil
}

// stockSnapshots fans out quote fetches across the universe. A failed
// ticker yields a zero-value snapshot, which is all-unknown.
func (s *Service) stockSnapshots(ctx context.Context, summary *Summary) map[string]models.MarketSnapshot {
	tickers := s.uni.Tickers()
	snapshots := make(map[string]models.MarketSnapshot, len(tickers))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, ticker := range tickers {
		ticker := ticker
		g.Go(func() error {
			snap, err := s.stockQuote(gctx, ticker)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn("stock quote fetch failed",
					zap.String("ticker", ticker), zap.Error(err))
				summary.Degraded = append(summary.Degraded, "quote:"+ticker)
				snapshots[ticker] = models.MarketSnapshot{Ticker: ticker, FetchedAt: time.Now()}
				return nil
			}
			snapshots[ticker] = s.enrichDrawdown(gctx, snap)
			return nil
		})
	}
	g.Wait()

	sort.Strings(summary.Degraded)
	return snapshots
}

func (s *Service) stockQuote(ctx context.Context, ticker string) (models.MarketSnapshot, error) {
	result, err := s.reg.Fetch(ctx, provider.ModelStockQuote, provider.QueryParams{
		provider.ParamTicker: ticker,
	})
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	snap, ok := result.Data.(models.MarketSnapshot)
	if !ok {
		return models.MarketSnapshot{}, fmt.Errorf("unexpected quote payload %T", result.Data)
	}
	return snap, nil
}

// enrichDrawdown fills High1Y and DrawdownFromHigh from trailing-year
// daily closes. A history failure leaves both unknown; the quote stands.
func (s *Service) enrichDrawdown(ctx context.Context, snap models.MarketSnapshot) models.MarketSnapshot {
	price, ok := snap.Price.Value()
	if !ok || snap.DrawdownFromHigh.IsKnown() {
		return snap
	}

	result, err := s.reg.Fetch(ctx, provider.ModelStockHistory, provider.QueryParams{
		provider.ParamTicker: snap.Ticker,
		provider.ParamRange:  "1y",
	})
	if err != nil {
		s.log.Debug("price history fetch failed",
			zap.String("ticker", snap.Ticker), zap.Error(err))
		return snap
	}
	points, ok := result.Data.([]models.PricePoint)
	if !ok || len(points) == 0 {
		return snap
	}

	high := price
	for _, p := range points {
		if p.Close > high {
			high = p.Close
		}
	}
	snap.High1Y = models.Known(high)
	snap.DrawdownFromHigh = valuation.Drawdown(price, high)
	return snap
}

// preconditions gathers the thesis-health indicators. Each is fetched
// independently; any failure leaves that indicator unknown.
func (s *Service) preconditions(ctx context.Context, summary *Summary) []models.PreconditionResult {
	dominance := models.Unknown()
	if result, err := s.reg.Fetch(ctx, provider.ModelDefiTVL, provider.QueryParams{}); err == nil {
		if tvl, ok := result.Data.(models.TVLSnapshot); ok {
			dominance = models.Known(tvl.Dominance)
		}
	} else {
		summary.Degraded = append(summary.Degraded, "tvl")
	}

	stakingAPY := models.Unknown()
	if result, err := s.reg.Fetch(ctx, provider.ModelStaking, provider.QueryParams{
		provider.ParamAsset: string(models.AssetETH),
	}); err == nil {
		if stats, ok := result.Data.(models.StakingStats); ok {
			stakingAPY = models.Known(stats.EstimatedAPY)
		}
	} else {
		summary.Degraded = append(summary.Degraded, "staking")
	}

	return health.Preconditions(dominance, stakingAPY, s.deficitGDPRatio(ctx, summary))
}

// deficitGDPRatio derives the fiscal backdrop in percent of GDP,
// negative for a deficit. Requires the FRED provider; unknown without it.
func (s *Service) deficitGDPRatio(ctx context.Context, summary *Summary) models.OptFloat {
	deficit, ok := s.latestMacro(ctx, "FYFSD") // millions USD, negative = deficit
	if !ok {
		summary.Degraded = append(summary.Degraded, "macro:FYFSD")
		return models.Unknown()
	}
	gdp, ok := s.latestMacro(ctx, "GDP") // billions USD
	if !ok || gdp == 0 {
		summary.Degraded = append(summary.Degraded, "macro:GDP")
		return models.Unknown()
	}
	return models.Known(deficit / 1000 / gdp * 100)
}

func (s *Service) latestMacro(ctx context.Context, seriesID string) (float64, bool) {
	result, err := s.reg.Fetch(ctx, provider.ModelMacroSeries, provider.QueryParams{
		provider.ParamSeries: seriesID,
		provider.ParamLimit:  strconv.Itoa(1),
	})
	if err != nil {
		return 0, false
	}
	series, ok := result.Data.(models.MacroSeries)
	if !ok {
		return 0, false
	}
	point, ok := series.Latest()
	if !ok {
		return 0, false
	}
	return point.Value, true
}

func (s *Service) netLiquidity(ctx context.Context, summary *Summary) *models.NetLiquidity {
	result, err := s.reg.Fetch(ctx, provider.ModelNetLiquidity, provider.QueryParams{})
	if err != nil {
		summary.Degraded = append(summary.Degraded, "net_liquidity")
		return nil
	}
	nl, ok := result.Data.(models.NetLiquidity)
	if !ok {
		return nil
	}
	return &nl
}

// Portfolio values the configured positions against live quotes.
// Portfolio tickers need not belong to the tracked universe.
func (s *Service) Portfolio(ctx context.Context, positions []models.Position) (models.PortfolioSummary, error) {
	snapshots := make(map[string]models.MarketSnapshot, len(positions))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, pos := range positions {
		pos := pos
		g.Go(func() error {
			snap, err := s.stockQuote(gctx, pos.Ticker)
			if err != nil {
				s.log.Warn("portfolio quote fetch failed",
					zap.String("ticker", pos.Ticker), zap.Error(err))
				snap = models.MarketSnapshot{Ticker: pos.Ticker}
			} else {
				snap = s.enrichDrawdown(gctx, snap)
			}
			mu.Lock()
			snapshots[pos.Ticker] = snap
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return portfolio.Summarize(positions, snapshots), nil
}

// News returns recent treasury news, optionally scoped to a ticker.
func (s *Service) News(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	params := provider.QueryParams{}
	if ticker != "" {
		params[provider.ParamTicker] = ticker
	}
	if limit > 0 {
		params[provider.ParamLimit] = strconv.Itoa(limit)
	}
	result, err := s.reg.Fetch(ctx, provider.ModelNews, params)
	if err != nil {
		return nil, err
	}
	articles, ok := result.Data.([]models.NewsArticle)
	if !ok {
		return nil, fmt.Errorf("unexpected news payload %T", result.Data)
	}
	return articles, nil
}

// TreasuryCompanies returns the third-party public-treasury registry
// for one asset, used to cross-check configured holdings.
func (s *Service) TreasuryCompanies(ctx context.Context, asset models.Asset) ([]models.TreasuryCompany, error) {
	result, err := s.reg.Fetch(ctx, provider.ModelTreasuryCompanies, provider.QueryParams{
		provider.ParamAsset: string(asset),
	})
	if err != nil {
		return nil, err
	}
	feed, ok := result.Data.([]models.TreasuryCompany)
	if !ok {
		return nil, fmt.Errorf("unexpected treasury registry payload %T", result.Data)
	}
	return feed, nil
}

// Filings returns recent disclosure filings for one ticker.
func (s *Service) Filings(ctx context.Context, ticker string) ([]models.Filing, error) {
	result, err := s.reg.Fetch(ctx, provider.ModelFilings, provider.QueryParams{
		provider.ParamTicker: ticker,
	})
	if err != nil {
		return nil, err
	}
	filings, ok := result.Data.([]models.Filing)
	if !ok {
		return nil, fmt.Errorf("unexpected filings payload %T", result.Data)
	}
	return filings, nil
}
