// datwatch: digital asset treasury analytics.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reservelabs/datwatch/api"
	"github.com/reservelabs/datwatch/internal/audit"
	"github.com/reservelabs/datwatch/internal/config"
	"github.com/reservelabs/datwatch/internal/dashboard"
	"github.com/reservelabs/datwatch/internal/provider"
	"github.com/reservelabs/datwatch/internal/providers"
	"github.com/reservelabs/datwatch/internal/universe"
	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, loaded in PersistentPreRunE.
var (
	cfg *config.Config
	log *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "datwatch",
	Short: "datwatch: digital asset treasury company analytics",
	Long: `datwatch tracks publicly traded digital asset treasury (DAT)
companies: NAV and NAV discount per ticker, treasury productivity
(staking, mining, issuance premium, burn), thesis preconditions, and a
personal portfolio view.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		log, err = buildLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		zap.ReplaceGlobals(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(productivityCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(auditCmd)
}

// buildLogger constructs the zap logger from config.
func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// newService wires the provider registry, universe and snapshot service.
func newService() (*dashboard.Service, *universe.Universe, error) {
	reg := provider.NewRegistry()
	if err := providers.RegisterAllTo(reg); err != nil {
		return nil, nil, fmt.Errorf("provider setup: %w", err)
	}
	uni := universe.Default()
	return dashboard.New(reg, uni, log, cfg.Fetch.ConcurrentFetches), uni, nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("datwatch %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, uni, err := newService()
		if err != nil {
			return err
		}

		store, err := audit.Open(cfg.Audit.DBPath)
		if err != nil {
			log.Warn("audit store unavailable, audit endpoints disabled", zap.Error(err))
			store = nil
		}

		srv := api.NewServer(cfg, svc, store, uni, log)
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		log.Info("starting API server", zap.String("addr", addr))
		return srv.ListenAndServe(addr)
	},
}

// --- Table Command ---

var tableCmd = &cobra.Command{
	Use:   "table [asset]",
	Short: "Print the valuation table for one asset universe",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset := models.AssetETH
		if len(args) == 1 {
			asset = models.Asset(strings.ToUpper(args[0]))
		}

		summary, err := fetchSummary(cmd.Context())
		if err != nil {
			return err
		}
		as, ok := summary.AssetSummaryFor(asset)
		if !ok {
			return fmt.Errorf("no data for asset %s", asset)
		}

		fmt.Printf("%s  spot %s  (24h %s)\n\n", asset,
			utils.FormatCurrency(as.Quote.Price, 2),
			utils.FormatSignedPercentage(as.Quote.Change24h/100, 1))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICKER\tPRICE\tNAV\tNAV/SH\tDISCOUNT\tTOKEN/SH\tPHASE")
		for _, cv := range as.Companies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cv.Company.Ticker,
				utils.FormatOpt(cv.Snapshot.Price, func(v float64) string { return utils.FormatCurrency(v, 2) }),
				utils.FormatCurrencyCompact(cv.Metrics.NAV),
				utils.FormatOpt(cv.Metrics.NAVPerShare, func(v float64) string { return utils.FormatCurrency(v, 2) }),
				utils.FormatOptPercentage(cv.Metrics.NAVDiscount, 1),
				utils.FormatOpt(cv.Metrics.TokenPerShare, func(v float64) string { return fmt.Sprintf("%.4f", v) }),
				cv.Metrics.Phase,
			)
		}
		w.Flush()

		fmt.Printf("\nTotal: %s across %s\n",
			utils.FormatCurrencyCompact(as.TotalNAV),
			utils.FormatTokenAmount(as.TotalHoldings, asset))

		printAlerts(summary, asset)
		return nil
	},
}

// --- Productivity Command ---

var productivityCmd = &cobra.Command{
	Use:   "productivity [asset]",
	Short: "Print the treasury productivity ranking for one asset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset := models.AssetETH
		if len(args) == 1 {
			asset = models.Asset(strings.ToUpper(args[0]))
		}

		summary, err := fetchSummary(cmd.Context())
		if err != nil {
			return err
		}
		as, ok := summary.AssetSummaryFor(asset)
		if !ok {
			return fmt.Errorf("no data for asset %s", asset)
		}
		ps := as.Productivity

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICKER\tYIELD/YR\tPREMIUM/YR\tBURN/YR\tNET/YR\tNET RATE\tVS BENCH")
		for _, rec := range ps.Ranked {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.Ticker,
				utils.FormatTokenAmount(rec.AnnualYieldTokens, asset),
				utils.FormatTokenAmount(rec.AnnualizedPremiumTokens, asset),
				utils.FormatTokenAmount(rec.AnnualBurnTokens, asset),
				utils.FormatTokenAmount(rec.TotalAnnualTokens, asset),
				utils.FormatOptPercentage(rec.NetRate, 2),
				utils.FormatYieldMultiple(rec),
			)
		}
		w.Flush()

		fmt.Printf("\n%d of %d companies accretive; aggregate %s/yr (%s)\n",
			ps.AccretiveCount, ps.CompanyCount,
			utils.FormatTokenAmount(ps.TotalAnnualTokens, asset),
			utils.FormatCurrencyCompact(ps.TotalAnnualUSD))
		return nil
	},
}

// --- Portfolio Command ---

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Value the configured positions against live quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		positions := cfg.Portfolio.ModelPositions()
		if len(positions) == 0 {
			fmt.Println("No positions configured (portfolio.positions in config.yaml).")
			return nil
		}

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		summary, err := svc.Portfolio(ctx, positions)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICKER\tSHARES\tPRICE\tVALUE\tP&L\tP&L %\tDRAWDOWN")
		for _, pv := range summary.Positions {
			fmt.Fprintf(w, "%s\t%.0f\t%s\t%s\t%s\t%s\t%s\n",
				pv.Ticker, pv.Shares,
				utils.FormatOpt(pv.Price, func(v float64) string { return utils.FormatCurrency(v, 2) }),
				utils.FormatCurrencyCompact(pv.Value),
				utils.FormatOpt(pv.PnL, utils.FormatCurrencyCompact),
				utils.FormatOptPercentage(pv.PnLPct, 1),
				utils.FormatOptPercentage(pv.Drawdown, 1),
			)
		}
		w.Flush()

		fmt.Printf("\nTotal value: %s", utils.FormatCurrencyCompact(summary.TotalValue))
		if pnl, ok := summary.TotalPnL.Value(); ok {
			fmt.Printf("   P&L: %s (%s)", utils.FormatCurrencyCompact(pnl),
				utils.FormatOptPercentage(summary.TotalPnLPct, 1))
		} else {
			fmt.Printf("   P&L: n/a (missing cost basis)")
		}
		fmt.Println()
		return nil
	},
}

// --- News Command ---

var newsCmd = &cobra.Command{
	Use:   "news [ticker]",
	Short: "Show recent treasury news, optionally for one ticker",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := ""
		if len(args) == 1 {
			ticker = strings.ToUpper(args[0])
		}
		limit, _ := cmd.Flags().GetInt("limit")

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		articles, err := svc.News(ctx, ticker, limit)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			fmt.Println("No matching articles.")
			return nil
		}

		for _, a := range articles {
			age := ""
			if !a.PublishedAt.IsZero() {
				age = fmt.Sprintf(" (%s)", a.PublishedAt.Format("Jan 02"))
			}
			fmt.Printf("[%s]%s %s\n", a.Source, age, a.Title)
			if a.URL != "" {
				fmt.Printf("    %s\n", a.URL)
			}
		}
		return nil
	},
}

func init() {
	newsCmd.Flags().Int("limit", 20, "max articles to show")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, API keys, and provider coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("datwatch %s\n\n", version)

		fmt.Println("API keys:")
		for _, ks := range config.CheckAPIKeys(cfg) {
			state := "not set"
			if ks.IsSet {
				state = fmt.Sprintf("set via %s (%s)", ks.Source, ks.Masked)
			}
			fmt.Printf("  %-14s %s\n", ks.Name, state)
		}

		reg := provider.NewRegistry()
		if err := providers.RegisterAllTo(reg); err != nil {
			return err
		}

		fmt.Println("\nProviders:")
		for _, info := range reg.List() {
			fmt.Printf("  %-10s %d models\n", info.Name, len(info.Models))
		}

		fmt.Println("\nModel coverage:")
		coverage := reg.ModelCoverage()
		modelNames := make([]string, 0, len(coverage))
		for m := range coverage {
			modelNames = append(modelNames, string(m))
		}
		sort.Strings(modelNames)
		for _, m := range modelNames {
			fmt.Printf("  %-20s %s\n", m, strings.Join(coverage[provider.ModelType(m)], ", "))
		}

		uni := universe.Default()
		fmt.Printf("\nUniverse: %d companies, %d theses\n",
			len(uni.AllCompanies()), len(uni.Theses()))
		return nil
	},
}

// --- Audit Command ---

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Print the data verification report",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := audit.Open(cfg.Audit.DBPath)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer store.Close()

		fields := []string{audit.FieldHoldings, audit.FieldStakingPct, audit.FieldBurn}
		report, err := store.Report(cmd.Context(), fields, time.Now())
		if err != nil {
			return err
		}
		fmt.Print(report)
		return nil
	},
}

var auditCrossCheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Compare configured holdings against public treasury registries",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, uni, err := newService()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		clean := true
		for _, asset := range audit.CrossCheckAssets {
			companies := uni.Companies(asset)
			if len(companies) == 0 {
				continue
			}
			feed, err := svc.TreasuryCompanies(ctx, asset)
			if err != nil {
				fmt.Printf("%s: registry unavailable (%v)\n", asset, err)
				clean = false
				continue
			}
			for _, d := range audit.CrossCheckHoldings(companies, feed) {
				fmt.Printf("%s: configured %s vs %s reported by %s (%s)\n",
					d.Ticker,
					utils.FormatTokenAmount(d.Configured, asset),
					utils.FormatTokenAmount(d.Reported, asset),
					d.FeedName,
					utils.FormatSignedPercentage(d.DiffPct, 1),
				)
				clean = false
			}
		}
		if clean {
			fmt.Println("All configured holdings match the registries within tolerance.")
		}
		return nil
	},
}

var auditLogCmd = &cobra.Command{
	Use:   "log [ticker] [field] [value]",
	Short: "Record a manual data verification",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := strings.ToUpper(args[0])
		if _, ok := universe.Default().Company(ticker); !ok {
			return fmt.Errorf("unknown ticker %s", ticker)
		}

		store, err := audit.Open(cfg.Audit.DBPath)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer store.Close()

		source, _ := cmd.Flags().GetString("source")
		url, _ := cmd.Flags().GetString("url")
		notes, _ := cmd.Flags().GetString("notes")

		rec, err := store.Log(cmd.Context(), audit.VerificationRecord{
			Ticker:    ticker,
			Field:     args[1],
			Value:     args[2],
			Source:    source,
			SourceURL: url,
			Notes:     notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s.%s = %s (id %s)\n", rec.Ticker, rec.Field, rec.Value, rec.ID)
		return nil
	},
}

func init() {
	auditLogCmd.Flags().String("source", "manual check", "where the value was verified")
	auditLogCmd.Flags().String("url", "", "source URL")
	auditLogCmd.Flags().String("notes", "", "context or discrepancies")
	auditCmd.AddCommand(auditCrossCheckCmd)
	auditCmd.AddCommand(auditLogCmd)
}

// --- helpers ---

// fetchSummary builds a one-shot dashboard snapshot.
func fetchSummary(ctx context.Context) (*dashboard.Summary, error) {
	svc, _, err := newService()
	if err != nil {
		return nil, err
	}
	fetchCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	return svc.Snapshot(fetchCtx)
}

func printAlerts(summary *dashboard.Summary, asset models.Asset) {
	as, ok := summary.AssetSummaryFor(asset)
	if !ok {
		return
	}
	tickers := map[string]bool{}
	for _, cv := range as.Companies {
		tickers[cv.Company.Ticker] = true
	}

	printed := false
	for _, alert := range summary.Alerts {
		if !tickers[alert.Ticker] {
			continue
		}
		if !printed {
			fmt.Println("\nAlerts:")
			printed = true
		}
		fmt.Printf("  ! %s\n", alert.Message)
	}
}
