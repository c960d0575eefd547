package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
)

func TestProviderInfo(t *testing.T) {
	p := New()
	if p.Info().Name != "coingecko" {
		t.Errorf("name = %s", p.Info().Name)
	}
	if len(p.Info().Credentials) != 0 {
		t.Error("coingecko should need no credentials")
	}
}

func TestCoinIDCoverage(t *testing.T) {
	for _, asset := range models.AllAssets {
		if _, ok := coinIDs[asset]; !ok {
			t.Errorf("no CoinGecko id for asset %s", asset)
		}
	}
}

func TestCryptoPriceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "vs_currencies=usd") {
			t.Errorf("missing vs_currencies in query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"ethereum":{"usd":3500.12,"usd_market_cap":420000000000,"usd_24h_change":2.4},
			"bitcoin":{"usd":97000,"usd_market_cap":1920000000000,"usd_24h_change":-0.8}
		}`))
	}))
	defer srv.Close()

	orig := baseURL
	baseURL = srv.URL
	defer func() { baseURL = orig }()

	f := newCryptoPriceFetcher()
	result, err := f.Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	quotes, ok := result.Data.(map[models.Asset]models.CryptoQuote)
	if !ok {
		t.Fatalf("result data is %T", result.Data)
	}
	eth, ok := quotes[models.AssetETH]
	if !ok {
		t.Fatal("no ETH quote")
	}
	if eth.Price != 3500.12 || eth.Change24h != 2.4 {
		t.Errorf("ETH quote: %+v", eth)
	}
	if quotes[models.AssetBTC].Price != 97000 {
		t.Errorf("BTC price: %v", quotes[models.AssetBTC].Price)
	}
}

func TestCryptoPriceSingleAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query().Get("ids")
		if ids != "solana" {
			t.Errorf("ids = %q, want solana", ids)
		}
		w.Write([]byte(`{"solana":{"usd":180.5,"usd_market_cap":85000000000,"usd_24h_change":1.1}}`))
	}))
	defer srv.Close()

	orig := baseURL
	baseURL = srv.URL
	defer func() { baseURL = orig }()

	f := newCryptoPriceFetcher()
	result, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamAsset: "sol"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	quotes := result.Data.(map[models.Asset]models.CryptoQuote)
	if len(quotes) != 1 || quotes[models.AssetSOL].Price != 180.5 {
		t.Errorf("quotes: %+v", quotes)
	}
}

func TestCryptoPriceUnknownAsset(t *testing.T) {
	f := newCryptoPriceFetcher()
	if _, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamAsset: "DOGE"}); err == nil {
		t.Error("expected error for unlisted asset")
	}
}

func TestTreasuryCompaniesFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/companies/public_treasury/bitcoin") {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"companies":[
			{"name":"Strategy","symbol":"NASDAQ:MSTR","country":"US","total_holdings":446400,"total_current_value_usd":43000000000,"percentage_of_total_supply":2.126},
			{"name":"MARA Holdings","symbol":"NASDAQ:MARA","country":"US","total_holdings":44893,"total_current_value_usd":4300000000,"percentage_of_total_supply":0.214}
		]}`))
	}))
	defer srv.Close()

	orig := baseURL
	baseURL = srv.URL
	defer func() { baseURL = orig }()

	f := newTreasuryCompaniesFetcher()
	result, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamAsset: "BTC"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	companies := result.Data.([]models.TreasuryCompany)
	if len(companies) != 2 {
		t.Fatalf("got %d companies", len(companies))
	}
	// Exchange prefix is stripped.
	if companies[0].Symbol != "MSTR" {
		t.Errorf("symbol = %q, want MSTR", companies[0].Symbol)
	}
	if companies[0].TotalHoldings != 446400 {
		t.Errorf("holdings = %v", companies[0].TotalHoldings)
	}
}

func TestTreasuryCompaniesUnsupportedAsset(t *testing.T) {
	f := newTreasuryCompaniesFetcher()
	// CoinGecko has no SOL registry.
	if _, err := f.Fetch(context.Background(), provider.QueryParams{provider.ParamAsset: "SOL"}); err == nil {
		t.Error("expected error for asset without a registry")
	}
}
