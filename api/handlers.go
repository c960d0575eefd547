package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/reservelabs/datwatch/internal/audit"
	"github.com/reservelabs/datwatch/internal/config"
	"github.com/reservelabs/datwatch/internal/dashboard"
	"github.com/reservelabs/datwatch/pkg/models"
)

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if last := s.svc.Last(); last != nil {
		data["last_snapshot"] = last.GeneratedAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// summary returns the cached snapshot, building one on first use or
// when ?refresh=true.
func (s *Server) summary(r *http.Request) (*dashboard.Summary, error) {
	if r.URL.Query().Get("refresh") != "true" {
		if last := s.svc.Last(); last != nil {
			return last, nil
		}
	}
	return s.svc.Snapshot(r.Context())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summary(r)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: summary})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summary(r)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	assetFilter := strings.ToUpper(r.URL.Query().Get("asset"))
	var views []dashboard.CompanyView
	for _, as := range summary.Assets {
		if assetFilter != "" && string(as.Asset) != assetFilter {
			continue
		}
		views = append(views, as.Companies...)
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: views})
}

func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if _, ok := s.uni.Company(ticker); !ok {
		writeError(w, http.StatusNotFound, "unknown ticker: "+ticker)
		return
	}

	summary, err := s.summary(r)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	view, ok := summary.CompanyByTicker(ticker)
	if !ok {
		writeError(w, http.StatusNotFound, "no data for ticker: "+ticker)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: view})
}

func (s *Server) handleProductivity(w http.ResponseWriter, r *http.Request) {
	asset := models.Asset(strings.ToUpper(chi.URLParam(r, "asset")))
	if len(s.uni.Companies(asset)) == 0 {
		writeError(w, http.StatusNotFound, "unknown asset: "+string(asset))
		return
	}

	summary, err := s.summary(r)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	as, ok := summary.AssetSummaryFor(asset)
	if !ok {
		writeError(w, http.StatusNotFound, "no data for asset: "+string(asset))
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: as.Productivity})
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	positions := s.cfg.Portfolio.ModelPositions()
	if len(positions) == 0 {
		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: models.PortfolioSummary{}})
		return
	}
	summary, err := s.svc.Portfolio(r.Context(), positions)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: summary})
}

func (s *Server) handlePreconditions(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summary(r)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]interface{}{
		"preconditions": summary.Preconditions,
		"net_liquidity": summary.NetLiquidity,
	}})
}

func (s *Server) handleTheses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.uni.Theses()})
}

func (s *Server) handleThesis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "thesis id must be numeric")
		return
	}
	thesis, ok := s.uni.Thesis(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown thesis id")
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: thesis})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	articles, err := s.svc.News(r.Context(), r.URL.Query().Get("ticker"), limit)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: articles})
}

func (s *Server) handleFilings(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	filings, err := s.svc.Filings(r.Context(), ticker)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: filings})
}

// --- Audit endpoints ---

var auditedFields = []string{audit.FieldHoldings, audit.FieldStakingPct, audit.FieldBurn}

func (s *Server) handleAuditSummary(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "audit store not configured")
		return
	}
	health, err := s.store.HealthSummary(r.Context(), s.uni.Tickers(), auditedFields, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: health})
}

// CrossCheckResponse is the body for GET /api/v1/audit/crosscheck.
// Degraded lists assets whose registry feed could not be fetched.
type CrossCheckResponse struct {
	CheckedAssets []string            `json:"checked_assets"`
	Degraded      []string            `json:"degraded,omitempty"`
	Discrepancies []audit.Discrepancy `json:"discrepancies"`
}

func (s *Server) handleAuditCrossCheck(w http.ResponseWriter, r *http.Request) {
	resp := CrossCheckResponse{
		CheckedAssets: []string{},
		Discrepancies: []audit.Discrepancy{},
	}
	for _, asset := range audit.CrossCheckAssets {
		companies := s.uni.Companies(asset)
		if len(companies) == 0 {
			continue
		}
		feed, err := s.svc.TreasuryCompanies(r.Context(), asset)
		if err != nil {
			s.log.Warn("treasury registry fetch failed",
				zap.String("asset", string(asset)), zap.Error(err))
			resp.Degraded = append(resp.Degraded, string(asset))
			continue
		}
		resp.CheckedAssets = append(resp.CheckedAssets, string(asset))
		resp.Discrepancies = append(resp.Discrepancies, audit.CrossCheckHoldings(companies, feed)...)
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: resp})
}

func (s *Server) handleAuditTicker(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "audit store not configured")
		return
	}
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	statuses, err := s.store.FieldStatuses(r.Context(), ticker, auditedFields, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: statuses})
}

// AuditLogRequest is the body for POST /api/v1/audit/{ticker}.
type AuditLogRequest struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	Source     string `json:"source"`
	SourceURL  string `json:"source_url,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Confidence string `json:"confidence,omitempty"`
}

func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "audit store not configured")
		return
	}
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if _, ok := s.uni.Company(ticker); !ok {
		writeError(w, http.StatusNotFound, "unknown ticker: "+ticker)
		return
	}

	var req AuditLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Field == "" || req.Value == "" || req.Source == "" {
		writeError(w, http.StatusBadRequest, "field, value and source are required")
		return
	}

	rec, err := s.store.Log(r.Context(), audit.VerificationRecord{
		Ticker:     ticker,
		Field:      req.Field,
		Value:      req.Value,
		Source:     req.Source,
		SourceURL:  req.SourceURL,
		Notes:      req.Notes,
		Confidence: req.Confidence,
		VerifiedBy: audit.VerifiedManual,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: rec})
}

// --- Config endpoints ---

// SanitizedConfig is the config view with credentials removed.
type SanitizedConfig struct {
	API       config.APIConfig     `json:"api"`
	Fetch     config.FetchConfig   `json:"fetch"`
	Audit     config.AuditConfig   `json:"audit"`
	Logging   config.LoggingConfig `json:"logging"`
	Positions int                  `json:"portfolio_positions"`
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: SanitizedConfig{
		API:       s.cfg.API,
		Fetch:     s.cfg.Fetch,
		Audit:     s.cfg.Audit,
		Logging:   s.cfg.Logging,
		Positions: len(s.cfg.Portfolio.Positions),
	}})
}

func (s *Server) handleConfigKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: config.CheckAPIKeys(s.cfg)})
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to write JSON response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{Success: false, Error: msg})
}
