package audit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Report renders a plain-text audit report across all audited tickers.
func (s *Store) Report(ctx context.Context, fields []string, now time.Time) (string, error) {
	tickers, err := s.Tickers(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Data Verification Audit\nGenerated: %s\n\n", now.Format(time.RFC3339))

	if len(tickers) == 0 {
		b.WriteString("No verifications recorded.\n")
		return b.String(), nil
	}

	for _, ticker := range tickers {
		statuses, err := s.FieldStatuses(ctx, ticker, fields, now)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s\n", ticker)
		for _, st := range statuses {
			switch st.Status {
			case FreshnessNeverVerified:
				fmt.Fprintf(&b, "  [never] %-20s (max %dd)\n", st.Field, st.MaxAgeDays)
			case FreshnessStale:
				fmt.Fprintf(&b, "  [STALE] %-20s %s  %dd old (max %dd)  src=%s\n",
					st.Field, st.Value, st.AgeDays, st.MaxAgeDays, st.Source)
			case FreshnessWarning:
				fmt.Fprintf(&b, "  [warn]  %-20s %s  %dd old (max %dd)  src=%s\n",
					st.Field, st.Value, st.AgeDays, st.MaxAgeDays, st.Source)
			default:
				fmt.Fprintf(&b, "  [ok]    %-20s %s  %dd old  src=%s\n",
					st.Field, st.Value, st.AgeDays, st.Source)
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
