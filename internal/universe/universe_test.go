package universe

import (
	"testing"

	"github.com/reservelabs/datwatch/pkg/models"
)

func TestDefaultLookup(t *testing.T) {
	u := Default()

	c, ok := u.Company("BMNR")
	if !ok {
		t.Fatal("expected BMNR in default universe")
	}
	if c.Asset != models.AssetETH || c.Tier != 1 {
		t.Errorf("BMNR = asset %s tier %d, want ETH tier 1", c.Asset, c.Tier)
	}

	if _, ok := u.Company("NOPE"); ok {
		t.Error("unknown ticker should not resolve")
	}
}

func TestCompaniesOrdering(t *testing.T) {
	u := Default()
	eth := u.Companies(models.AssetETH)
	if len(eth) == 0 {
		t.Fatal("no ETH companies")
	}
	for i := 1; i < len(eth); i++ {
		prev, cur := eth[i-1], eth[i]
		if cur.Tier < prev.Tier {
			t.Fatalf("tier order violated at %s: %d after %d", cur.Ticker, cur.Tier, prev.Tier)
		}
		if cur.Tier == prev.Tier && cur.Holdings > prev.Holdings {
			t.Fatalf("holdings order violated within tier at %s", cur.Ticker)
		}
	}
	if eth[0].Ticker != "BMNR" {
		t.Errorf("largest tier-1 ETH company = %s, want BMNR", eth[0].Ticker)
	}
}

func TestEveryAssetHasCompanies(t *testing.T) {
	u := Default()
	for _, asset := range models.AllAssets {
		if len(u.Companies(asset)) == 0 {
			t.Errorf("no companies for %s", asset)
		}
	}
}

func TestTheses(t *testing.T) {
	u := Default()
	theses := u.Theses()
	if len(theses) != 13 {
		t.Fatalf("thesis count = %d, want 13", len(theses))
	}

	th, ok := u.Thesis(6)
	if !ok {
		t.Fatal("thesis 6 missing")
	}
	if th.Status != models.ThesisCore {
		t.Errorf("thesis 6 status = %s, want core", th.Status)
	}
	if th.Layer != 2 {
		t.Errorf("thesis 6 layer = %d, want 2", th.Layer)
	}

	seen := map[int]bool{}
	for _, th := range theses {
		if th.Layer < 1 || th.Layer > 4 {
			t.Errorf("thesis %d layer out of range: %d", th.ID, th.Layer)
		}
		if seen[th.ID] {
			t.Errorf("duplicate thesis id %d", th.ID)
		}
		seen[th.ID] = true
	}

	if _, ok := u.Thesis(99); ok {
		t.Error("thesis 99 should not exist")
	}
}

func TestBenchmarkAPY(t *testing.T) {
	u := Default()
	if got := u.BenchmarkAPY(models.AssetBTC); got != 0 {
		t.Errorf("BTC benchmark = %v, want 0", got)
	}
	if got := u.BenchmarkAPY(models.AssetETH); got != 0.035 {
		t.Errorf("ETH benchmark = %v, want 0.035", got)
	}
}

func TestNewCopiesInputs(t *testing.T) {
	companies := defaultCompanies()
	u := New(companies, nil, DefaultAlertThresholds)
	companies[0].Holdings = -1
	c, _ := u.Company(companies[0].Ticker)
	if c.Holdings == -1 {
		t.Error("universe shares memory with caller slice")
	}
}

func TestAlerts(t *testing.T) {
	u := Default()
	a := u.Alerts()
	if a.NAVDiscountWarning != 0.30 || a.DrawdownWarning != 0.40 {
		t.Errorf("unexpected default alert thresholds: %+v", a)
	}
}
