package sec

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

// --- Filings fetcher ---

// defaultFilingLimit bounds how many recent filings one fetch returns.
const defaultFilingLimit = 20

// treasuryRelevantForms are the forms worth surfacing on the dashboard.
// Everything else (S-8 registrations, SD, and the like) is noise here.
var treasuryRelevantForms = map[string]bool{
	"8-K":     true,
	"10-Q":    true,
	"10-K":    true,
	"S-1":     true,
	"S-3":     true,
	"424B5":   true,
	"SC 13D":  true,
	"SC 13G":  true,
	"DEF 14A": true,
}

type filingsFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newFilingsFetcher(p *Provider) *filingsFetcher {
	return &filingsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelFilings,
			"Recent EDGAR filings for one ticker",
			[]string{provider.ParamTicker},
			[]string{provider.ParamForm, provider.ParamLimit},
			30*time.Minute, 5, time.Second,
		),
		p: p,
	}
}

func (f *filingsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	ticker := strings.ToUpper(params[provider.ParamTicker])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	cik, err := f.p.resolveCIK(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var resp submissionsResponse
	url := fmt.Sprintf("%s/submissions/CIK%s.json", dataURL, cik)
	if err := f.p.fetchJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("sec submissions %s: %w", ticker, err)
	}

	limit := defaultFilingLimit
	if raw := params[provider.ParamLimit]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	formFilter := strings.ToUpper(params[provider.ParamForm])

	filings := collectFilings(ticker, cik, resp.Filings.Recent, formFilter, limit)

	f.CacheSetTTL(cacheKey, filings, 30*time.Minute)
	return newResult(filings), nil
}

// collectFilings walks the column-oriented recent block and assembles
// filing records, newest first as EDGAR serves them.
func collectFilings(ticker, cik string, recent recentFilings, formFilter string, limit int) []models.Filing {
	filings := make([]models.Filing, 0, limit)
	for i := range recent.AccessionNumber {
		if len(filings) >= limit {
			break
		}
		form := recent.Form[i]
		if formFilter != "" {
			if !strings.EqualFold(form, formFilter) {
				continue
			}
		} else if !treasuryRelevantForms[form] {
			continue
		}

		filedAt, err := time.Parse(utils.DateFormat, recent.FilingDate[i])
		if err != nil {
			continue
		}

		title := form
		if i < len(recent.PrimaryDocDescription) && recent.PrimaryDocDescription[i] != "" {
			title = form + " - " + recent.PrimaryDocDescription[i]
		}

		filings = append(filings, models.Filing{
			Ticker:      ticker,
			CIK:         cik,
			FormType:    form,
			Title:       title,
			Description: primaryDoc(recent, i),
			URL:         filingURL(cik, recent.AccessionNumber[i], primaryDoc(recent, i)),
			FiledAt:     filedAt,
		})
	}
	return filings
}

func primaryDoc(recent recentFilings, i int) string {
	if i < len(recent.PrimaryDocument) {
		return recent.PrimaryDocument[i]
	}
	return ""
}

// filingURL builds the Archives URL for a filing's primary document.
func filingURL(cik, accession, doc string) string {
	accNoDashes := strings.ReplaceAll(accession, "-", "")
	cikTrimmed := strings.TrimLeft(cik, "0")
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s", wwwURL, cikTrimmed, accNoDashes, doc)
}
