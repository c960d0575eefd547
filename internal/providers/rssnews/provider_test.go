package rssnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>%s</title>
<link>https://example.com</link>
%s
</channel></rss>`

func rssItem(title, link, desc, pubDate string) string {
	return fmt.Sprintf(`<item>
<title>%s</title>
<link>%s</link>
<description>%s</description>
<pubDate>%s</pubDate>
</item>`, title, link, desc, pubDate)
}

func newFeedServer(t *testing.T, name string, items ...string) *httptest.Server {
	t.Helper()
	body := ""
	for _, item := range items {
		body += item + "\n"
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, name, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewsFetchFiltersAndSorts(t *testing.T) {
	srv := newFeedServer(t, "TestWire",
		rssItem("BitMine adds 50k ETH to treasury", "https://example.com/1",
			"<p>BMNR expanded its <b>holdings</b> again.</p>", "Mon, 24 Aug 2026 09:00:00 GMT"),
		rssItem("Altcoin L1 launches testnet", "https://example.com/2",
			"Nothing about balance sheets here.", "Tue, 25 Aug 2026 09:00:00 GMT"),
		rssItem("SharpLink discloses staking yield", "https://example.com/3",
			"Quarterly update from SBET.", "Wed, 26 Aug 2026 09:00:00 GMT"),
	)

	p := NewWithFeeds([]Feed{{Name: "TestWire", URL: srv.URL}})
	if err := p.Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}

	fetcher := p.Fetcher(provider.ModelNews)
	if fetcher == nil {
		t.Fatal("news fetcher not registered")
	}

	result, err := fetcher.Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	articles, ok := result.Data.([]models.NewsArticle)
	if !ok {
		t.Fatalf("Data is %T, want []models.NewsArticle", result.Data)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2 (testnet item filtered out)", len(articles))
	}

	// Newest first.
	if articles[0].Title != "SharpLink discloses staking yield" {
		t.Errorf("first article = %q, want the Aug 26 item", articles[0].Title)
	}
	if articles[0].Source != "TestWire" {
		t.Errorf("Source = %q, want TestWire", articles[0].Source)
	}

	bmnr := articles[1]
	if bmnr.Summary != "BMNR expanded its holdings again." {
		t.Errorf("Summary = %q, want HTML stripped", bmnr.Summary)
	}
	if len(bmnr.Tickers) != 1 || bmnr.Tickers[0] != "BMNR" {
		t.Errorf("Tickers = %v, want [BMNR]", bmnr.Tickers)
	}
}

func TestNewsTickerFilter(t *testing.T) {
	srv := newFeedServer(t, "TestWire",
		rssItem("SharpLink treasury update", "https://example.com/1", "SBET news.", "Mon, 24 Aug 2026 09:00:00 GMT"),
		rssItem("BitMine treasury update", "https://example.com/2", "BMNR news.", "Tue, 25 Aug 2026 09:00:00 GMT"),
	)

	p := NewWithFeeds([]Feed{{Name: "TestWire", URL: srv.URL}})
	if err := p.Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}
	fetcher := p.Fetcher(provider.ModelNews)

	result, err := fetcher.Fetch(context.Background(), provider.QueryParams{
		provider.ParamTicker: "bmnr",
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	articles := result.Data.([]models.NewsArticle)
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	if articles[0].Title != "BitMine treasury update" {
		t.Errorf("Title = %q, want the BMNR item", articles[0].Title)
	}
}

func TestNewsQueryAndLimit(t *testing.T) {
	srv := newFeedServer(t, "TestWire",
		rssItem("Restaking roundup one", "https://example.com/1", "", "Mon, 24 Aug 2026 09:00:00 GMT"),
		rssItem("Restaking roundup two", "https://example.com/2", "", "Tue, 25 Aug 2026 09:00:00 GMT"),
		rssItem("Restaking roundup three", "https://example.com/3", "", "Wed, 26 Aug 2026 09:00:00 GMT"),
	)

	p := NewWithFeeds([]Feed{{Name: "TestWire", URL: srv.URL}})
	if err := p.Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}
	fetcher := p.Fetcher(provider.ModelNews)

	result, err := fetcher.Fetch(context.Background(), provider.QueryParams{
		provider.ParamQuery: "restaking",
		provider.ParamLimit: "2",
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	articles := result.Data.([]models.NewsArticle)
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want limit of 2", len(articles))
	}
	if articles[0].Title != "Restaking roundup three" {
		t.Errorf("first article = %q, want newest", articles[0].Title)
	}
}

func TestNewsDeadFeedSkipped(t *testing.T) {
	live := newFeedServer(t, "Live",
		rssItem("Treasury holdings grow", "https://example.com/1", "", "Mon, 24 Aug 2026 09:00:00 GMT"),
	)
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer dead.Close()

	p := NewWithFeeds([]Feed{
		{Name: "Dead", URL: dead.URL},
		{Name: "Live", URL: live.URL},
	})
	if err := p.Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}
	fetcher := p.Fetcher(provider.ModelNews)

	result, err := fetcher.Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	articles := result.Data.([]models.NewsArticle)
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 from the live feed", len(articles))
	}
}

func TestMentionedTickersWordBoundary(t *testing.T) {
	if got := mentionedTickers("The network shutdown continues"); len(got) != 0 {
		t.Errorf("mentionedTickers matched inside a word: %v", got)
	}
	got := mentionedTickers("HUT 8 and CleanSpark report earnings")
	if len(got) != 2 || got[0] != "CLSK" || got[1] != "HUT" {
		t.Errorf("mentionedTickers = %v, want [CLSK HUT]", got)
	}
}
