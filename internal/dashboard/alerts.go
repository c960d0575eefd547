package dashboard

import (
	"fmt"
	"sort"

	"github.com/reservelabs/datwatch/pkg/models"
)

// buildAlerts scans the freshly built summary for tripped thresholds.
// Dilution is measured against the first share count this service
// observed for the ticker, so an intra-session ATM raise surfaces even
// without persisted share history.
func (s *Service) buildAlerts(summary *Summary) []Alert {
	th := s.uni.Alerts()
	var alerts []Alert

	for _, as := range summary.Assets {
		for _, cv := range as.Companies {
			ticker := cv.Company.Ticker

			if disc, ok := cv.Metrics.NAVDiscount.Value(); ok && disc <= -th.NAVDiscountWarning {
				alerts = append(alerts, Alert{
					Ticker: ticker,
					Kind:   AlertNAVDiscount,
					Value:  disc,
					Message: fmt.Sprintf("%s trades %.0f%% below treasury NAV",
						ticker, -disc*100),
				})
			}

			if dd, ok := cv.Snapshot.DrawdownFromHigh.Value(); ok && dd <= -th.DrawdownWarning {
				alerts = append(alerts, Alert{
					Ticker: ticker,
					Kind:   AlertDrawdown,
					Value:  dd,
					Message: fmt.Sprintf("%s is down %.0f%% from its trailing-year high",
						ticker, -dd*100),
				})
			}

			if dilution, ok := s.dilutionSinceBaseline(ticker, cv.Snapshot.SharesOutstanding); ok && dilution >= th.DilutionWarning {
				alerts = append(alerts, Alert{
					Ticker: ticker,
					Kind:   AlertDilution,
					Value:  dilution,
					Message: fmt.Sprintf("%s share count grew %.0f%% since tracking began",
						ticker, dilution*100),
				})
			}

			c := cv.Company
			if c.HasNativeYield() && c.StakingPct > 0 && c.StakingAPY < th.StakingYieldWarning {
				alerts = append(alerts, Alert{
					Ticker: ticker,
					Kind:   AlertStakingYield,
					Value:  c.StakingAPY,
					Message: fmt.Sprintf("%s staking APY %.2f%% is below the %.0f%% floor",
						ticker, c.StakingAPY*100, th.StakingYieldWarning*100),
				})
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Ticker != alerts[j].Ticker {
			return alerts[i].Ticker < alerts[j].Ticker
		}
		return alerts[i].Kind < alerts[j].Kind
	})
	return alerts
}

// dilutionSinceBaseline records the first known share count per ticker
// and reports growth relative to it.
func (s *Service) dilutionSinceBaseline(ticker string, shares models.OptFloat) (float64, bool) {
	current, ok := shares.Value()
	if !ok || current <= 0 {
		return 0, false
	}

	s.sharesMu.Lock()
	defer s.sharesMu.Unlock()

	baseline, seen := s.baselineShares[ticker]
	if !seen || baseline <= 0 {
		s.baselineShares[ticker] = current
		return 0, false
	}
	return current/baseline - 1, true
}
