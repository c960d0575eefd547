package rssnews

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

// --- News fetcher ---

const defaultNewsLimit = 50

// treasuryKeywords marks an article as treasury-relevant. General crypto
// feeds carry far more than treasury coverage, so items matching none of
// these are dropped.
var treasuryKeywords = []string{
	"treasury",
	"digital asset treasury",
	"eth accumulation",
	"ethereum accumulation",
	"corporate ethereum",
	"corporate bitcoin",
	"nav",
	"holdings",
	"bitmine",
	"sharplink",
	"microstrategy",
	"strategy inc",
	"ether machine",
	"staking yield",
	"buyback",
	"at-the-market",
	"dilution",
}

// tickerAliases supplements a raw ticker with company names so filing
// headlines that never print the symbol still match.
var tickerAliases = map[string][]string{
	"BMNR": {"bitmine"},
	"SBET": {"sharplink"},
	"ETHM": {"ether machine"},
	"BTBT": {"bit digital"},
	"BTCS": {"btcs inc"},
	"MSTR": {"microstrategy", "strategy inc"},
	"MARA": {"marathon digital", "mara holdings"},
	"RIOT": {"riot platforms"},
	"CLSK": {"cleanspark"},
	"HUT":  {"hut 8"},
	"SMLR": {"semler scientific"},
	"UPXI": {"upexi"},
	"DFDV": {"defi development"},
}

type newsFetcher struct {
	provider.BaseFetcher
	feeds  []Feed
	parser *gofeed.Parser
}

func newNewsFetcher(feeds []Feed) *newsFetcher {
	return &newsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelNews,
			"Treasury-relevant articles aggregated from crypto RSS feeds",
			nil,
			[]string{provider.ParamTicker, provider.ParamQuery, provider.ParamLimit},
			10*time.Minute, 2, time.Second,
		),
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

func (f *newsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	var articles []models.NewsArticle
	for _, feed := range f.feeds {
		items, err := f.fetchFeed(ctx, feed)
		if err != nil {
			// Non-critical: a dead feed should not sink the aggregate.
			continue
		}
		articles = append(articles, items...)
	}

	keywords := filterKeywords(params)
	if len(keywords) > 0 {
		articles = filterArticles(articles, keywords)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	limit := defaultNewsLimit
	if raw, ok := params[provider.ParamLimit]; ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}

	f.CacheSet(cacheKey, articles)
	return newResult(articles), nil
}

func (f *newsFetcher) fetchFeed(ctx context.Context, src Feed) ([]models.NewsArticle, error) {
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	feed, err := f.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Title:   strings.TrimSpace(item.Title),
			URL:     item.Link,
			Source:  src.Name,
			Summary: stripHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = item.PublishedParsed.UTC()
		}
		a.Tickers = mentionedTickers(a.Title + " " + a.Summary)
		articles = append(articles, a)
	}

	return articles, nil
}

// filterKeywords resolves the search terms for a request. A ticker param
// narrows to that company, an explicit query replaces the default
// treasury filter entirely.
func filterKeywords(params provider.QueryParams) []string {
	if ticker, ok := params[provider.ParamTicker]; ok && ticker != "" {
		t := strings.ToUpper(strings.TrimSpace(ticker))
		keywords := []string{strings.ToLower(t)}
		keywords = append(keywords, tickerAliases[t]...)
		return keywords
	}
	if query, ok := params[provider.ParamQuery]; ok && query != "" {
		return []string{strings.ToLower(query)}
	}
	return treasuryKeywords
}

func filterArticles(articles []models.NewsArticle, keywords []string) []models.NewsArticle {
	var out []models.NewsArticle
	for _, a := range articles {
		content := strings.ToLower(a.Title + " " + a.Summary)
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// mentionedTickers scans content for known ticker aliases.
func mentionedTickers(content string) []string {
	lower := strings.ToLower(content)
	var tickers []string
	for ticker, aliases := range tickerAliases {
		matched := containsWord(content, ticker)
		for _, alias := range aliases {
			if matched {
				break
			}
			matched = strings.Contains(lower, alias)
		}
		if matched {
			tickers = append(tickers, ticker)
		}
	}
	sort.Strings(tickers)
	return tickers
}

// containsWord reports whether content carries s as a standalone token.
// Plain Contains would match "HUT" inside "shutdown".
func containsWord(content, s string) bool {
	idx := 0
	for {
		i := strings.Index(content[idx:], s)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(s)
		beforeOK := start == 0 || !isWordChar(content[start-1])
		afterOK := end == len(content) || !isWordChar(content[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// stripHTML flattens feed description markup to plain text.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now()}
}

func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{Data: data, FetchedAt: time.Now(), Cached: true}
}
