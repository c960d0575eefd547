// Package rssnews aggregates digital asset treasury news from crypto
// RSS feeds. Feed items are filtered down to treasury-relevant articles
// so the dashboard feed is not drowned out by general market coverage.
package rssnews

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/reservelabs/datwatch/internal/provider"
)

const providerName = "rssnews"

// Feed is one configured RSS source.
type Feed struct {
	Name string
	URL  string
}

// defaultFeeds lists the crypto news feeds polled for treasury coverage.
// Package var so tests can point the fetcher at local servers.
var defaultFeeds = []Feed{
	{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
	{Name: "Cointelegraph", URL: "https://cointelegraph.com/rss"},
	{Name: "The Defiant", URL: "https://thedefiant.io/api/feed"},
	{Name: "Google News", URL: "https://news.google.com/rss/search?q=digital+asset+treasury+company&hl=en-US&gl=US&ceid=US:en"},
}

// Provider implements provider.Provider over a set of RSS feeds.
type Provider struct {
	provider.BaseProvider
}

// New creates a news provider reading the default feed set.
func New() *Provider {
	return NewWithFeeds(defaultFeeds)
}

// NewWithFeeds creates a news provider with a custom feed set.
func NewWithFeeds(feeds []Feed) *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Crypto RSS feeds - treasury news aggregation",
			"https://www.coindesk.com",
			nil, // no credentials
		),
	}

	p.RegisterFetcher(newNewsFetcher(feeds))

	return p
}

// Ping checks that at least one configured feed parses.
func (p *Provider) Ping(ctx context.Context) error {
	parser := gofeed.NewParser()
	for _, feed := range defaultFeeds {
		if _, err := parser.ParseURLWithContext(feed.URL, ctx); err == nil {
			return nil
		}
	}
	return fmt.Errorf("rssnews ping: no feed reachable")
}
