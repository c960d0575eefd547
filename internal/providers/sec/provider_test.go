package sec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

const tickerTableJSON = `{
	"0":{"cik_str":1050446,"ticker":"MSTR","title":"Strategy Inc"},
	"1":{"cik_str":1829311,"ticker":"BMNR","title":"Bitmine Immersion Technologies Inc"}
}`

func newTestProviderWithServers(t *testing.T, submissions string) *Provider {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files/company_tickers.json"):
			w.Write([]byte(tickerTableJSON))
		case strings.HasPrefix(r.URL.Path, "/submissions/"):
			w.Write([]byte(submissions))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	origData, origWWW := dataURL, wwwURL
	dataURL, wwwURL = srv.URL, srv.URL
	t.Cleanup(func() { dataURL, wwwURL = origData, origWWW })

	p := New()
	if err := p.Init(map[string]string{"user_agent": "test/1.0 (test@example.com)"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return p
}

func TestProviderInfo(t *testing.T) {
	p := New()
	if p.Info().Name != "sec" {
		t.Errorf("name = %s", p.Info().Name)
	}
	// The user agent is recommended but not required.
	if err := p.Init(nil); err != nil {
		t.Errorf("Init without credentials: %v", err)
	}
}

func TestFilingsFetch(t *testing.T) {
	p := newTestProviderWithServers(t, `{
		"cik":"1050446","name":"Strategy Inc",
		"filings":{"recent":{
			"accessionNumber":["0001050446-26-000012","0001050446-26-000011","0001050446-26-000010"],
			"filingDate":["2026-08-04","2026-07-15","2026-07-01"],
			"form":["8-K","S-8","10-Q"],
			"primaryDocument":["mstr-8k.htm","plan.htm","mstr-10q.htm"],
			"primaryDocDescription":["Current report","Stock plan","Quarterly report"]
		}}
	}`)

	f := p.Fetcher(provider.ModelFilings)
	result, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamTicker: "MSTR"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	filings, ok := result.Data.([]models.Filing)
	if !ok {
		t.Fatalf("result data is %T", result.Data)
	}
	// The S-8 is filtered out as irrelevant.
	if len(filings) != 2 {
		t.Fatalf("got %d filings, want 2", len(filings))
	}
	if filings[0].FormType != "8-K" || filings[1].FormType != "10-Q" {
		t.Errorf("forms: %s, %s", filings[0].FormType, filings[1].FormType)
	}
	if filings[0].Ticker != "MSTR" {
		t.Errorf("ticker = %s", filings[0].Ticker)
	}
	wantURL := wwwURL + "/Archives/edgar/data/1050446/000105044626000012/mstr-8k.htm"
	if filings[0].URL != wantURL {
		t.Errorf("url = %s\nwant %s", filings[0].URL, wantURL)
	}
	if filings[0].FiledAt.Format("2006-01-02") != "2026-08-04" {
		t.Errorf("filed at = %s", filings[0].FiledAt)
	}
}

func TestFilingsFormFilter(t *testing.T) {
	p := newTestProviderWithServers(t, `{
		"cik":"1050446","name":"Strategy Inc",
		"filings":{"recent":{
			"accessionNumber":["a-1","a-2"],
			"filingDate":["2026-08-04","2026-07-15"],
			"form":["8-K","10-Q"],
			"primaryDocument":["a.htm","b.htm"],
			"primaryDocDescription":["",""]
		}}
	}`)

	f := p.Fetcher(provider.ModelFilings)
	result, err := f.Fetch(context.Background(), provider.QueryParams{
		provider.ParamTicker: "MSTR",
		provider.ParamForm:   "10-Q",
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	filings := result.Data.([]models.Filing)
	if len(filings) != 1 || filings[0].FormType != "10-Q" {
		t.Errorf("filings: %+v", filings)
	}
}

func TestFilingsUnknownTicker(t *testing.T) {
	p := newTestProviderWithServers(t, `{}`)
	f := p.Fetcher(provider.ModelFilings)
	if _, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamTicker: "ZZZZ"}); err == nil {
		t.Error("expected error for unknown ticker")
	}
}

func TestResolveCIKCachesTable(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/files/company_tickers.json") {
			hits++
			w.Write([]byte(tickerTableJSON))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	origWWW := wwwURL
	wwwURL = srv.URL
	defer func() { wwwURL = origWWW }()

	p := New()
	_ = p.Init(nil)

	ctx := context.Background()
	if _, err := p.resolveCIK(ctx, "MSTR"); err != nil {
		t.Fatal(err)
	}
	cik, err := p.resolveCIK(ctx, "BMNR")
	if err != nil {
		t.Fatal(err)
	}
	if cik != "0001829311" {
		t.Errorf("cik = %q, want zero-padded", cik)
	}
	if hits != 1 {
		t.Errorf("ticker table fetched %d times, want 1", hits)
	}
}
