package audit

import (
	"fmt"
	"time"

	"comanda/internal/completion"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// CompletionRecord is one retired order in the audit trail
type CompletionRecord struct {
	gorm.Model
	OrderID     string `gorm:"index"`
	TableNumber int
	CompletedAt time.Time
	Deductions  []DeductionRecord `gorm:"foreignkey:CompletionID"`
}

// DeductionRecord is one ingredient movement within a completion
type DeductionRecord struct {
	gorm.Model
	CompletionID uint
	IngredientID string
	Amount       float64
}

// Store persists completion events to SQLite so the stock history
// survives a shift's worth of screens refreshing. The in-memory stores
// stay authoritative; this is write-behind history only.
type Store struct {
	db *gorm.DB
}

// Open connects to the audit database and migrates the schema
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}
	db.AutoMigrate(&CompletionRecord{}, &DeductionRecord{})
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordCompletion writes one completion event and its deduction lines
func (s *Store) RecordCompletion(event completion.Event) error {
	record := CompletionRecord{
		OrderID:     event.OrderID,
		TableNumber: event.TableNumber,
		CompletedAt: event.CompletedAt,
	}
	for _, d := range event.Deductions {
		record.Deductions = append(record.Deductions, DeductionRecord{
			IngredientID: d.IngredientID,
			Amount:       d.Amount,
		})
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("save completion record: %w", err)
	}
	return nil
}

// Recent returns the latest completion records, newest first
func (s *Store) Recent(limit int) ([]CompletionRecord, error) {
	var records []CompletionRecord
	err := s.db.Preload("Deductions").
		Order("completed_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load completion records: %w", err)
	}
	return records, nil
}
