// Package audit tracks when and from where each manually maintained
// data point (holdings, staking percentage, burn rate) was last
// verified. It is bookkeeping about the reference data, and never feeds
// back into any calculation.
package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Confidence levels for a verification.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Verifier kinds.
const (
	VerifiedManual    = "manual"
	VerifiedAutomated = "automated"
)

// VerificationRecord is one audit entry: who checked which field of
// which company, against what source, and when. Records are append-only;
// the newest record per (ticker, field) is the current verification.
type VerificationRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ticker     string    `gorm:"index:idx_ticker_field;not null" json:"ticker"`
	Field      string    `gorm:"index:idx_ticker_field;not null" json:"field"` // e.g., "holdings"
	Value      string    `gorm:"not null" json:"value"`
	Source     string    `gorm:"not null" json:"source"`
	SourceURL  string    `json:"source_url,omitempty"`
	VerifiedAt time.Time `gorm:"index;not null" json:"verified_at"`
	VerifiedBy string    `gorm:"not null" json:"verified_by"` // manual or automated
	Confidence string    `gorm:"not null;default:high" json:"confidence"`
	Notes      string    `json:"notes,omitempty"`
}

func (VerificationRecord) TableName() string { return "verification_records" }

// Store is the audit database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the audit database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audit dir: %w", err)
		}
	}
	return open(path)
}

// OpenInMemory opens a throwaway in-memory store. Each call gets its
// own database; the shared-cache name keeps the connection pool on one
// instance without leaking state between stores.
func OpenInMemory() (*Store, error) {
	return open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err := db.AutoMigrate(&VerificationRecord{}); err != nil {
		return nil, fmt.Errorf("migrate audit db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Log appends a verification. ID and VerifiedAt are filled in when zero.
func (s *Store) Log(ctx context.Context, rec VerificationRecord) (VerificationRecord, error) {
	if rec.Ticker == "" || rec.Field == "" {
		return rec, fmt.Errorf("verification needs ticker and field")
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.VerifiedAt.IsZero() {
		rec.VerifiedAt = time.Now()
	}
	if rec.VerifiedBy == "" {
		rec.VerifiedBy = VerifiedManual
	}
	if rec.Confidence == "" {
		rec.Confidence = ConfidenceHigh
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return rec, fmt.Errorf("log verification: %w", err)
	}
	return rec, nil
}

// Latest returns the newest verification per field for one ticker.
func (s *Store) Latest(ctx context.Context, ticker string) (map[string]VerificationRecord, error) {
	var records []VerificationRecord
	err := s.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("verified_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load verifications for %s: %w", ticker, err)
	}

	latest := make(map[string]VerificationRecord, len(records))
	for _, rec := range records {
		latest[rec.Field] = rec // ascending order, last write wins
	}
	return latest, nil
}

// History returns all verifications for one ticker and field, newest first.
func (s *Store) History(ctx context.Context, ticker, field string) ([]VerificationRecord, error) {
	var records []VerificationRecord
	err := s.db.WithContext(ctx).
		Where("ticker = ? AND field = ?", ticker, field).
		Order("verified_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load history for %s.%s: %w", ticker, field, err)
	}
	return records, nil
}

// Tickers lists every ticker with at least one verification.
func (s *Store) Tickers(ctx context.Context) ([]string, error) {
	var tickers []string
	err := s.db.WithContext(ctx).
		Model(&VerificationRecord{}).
		Distinct("ticker").
		Order("ticker").
		Pluck("ticker", &tickers).Error
	if err != nil {
		return nil, fmt.Errorf("list audited tickers: %w", err)
	}
	return tickers, nil
}
