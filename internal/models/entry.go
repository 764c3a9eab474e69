package models

import (
	"time"

	"github.com/angulartv/regisstros/internal/ledger"
)

// Entry is the stored form of one ledger record. The date is kept as
// the canonical YYYY-MM-DD string because it is the grouping and sort
// key; it is never parsed on the way in or out.
type Entry struct {
	ID           uint    `gorm:"primaryKey"`
	Date         string  `gorm:"size:10;index;not null"`
	Hours        float64 `gorm:"not null"`
	Type         string  `gorm:"size:16;not null"`
	Note         string  `gorm:"size:255"`
	RequiresMemo bool    `gorm:"not null"`
	MemoDone     bool    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToLedger converts the stored row to the domain representation.
func (e *Entry) ToLedger() ledger.Entry {
	return ledger.Entry{
		ID:           e.ID,
		Date:         e.Date,
		Hours:        e.Hours,
		Type:         ledger.Type(e.Type),
		Note:         e.Note,
		RequiresMemo: e.RequiresMemo,
		MemoDone:     e.MemoDone,
	}
}

// FromLedger fills the stored row from the domain representation,
// leaving ID and timestamps to the database.
func (e *Entry) FromLedger(le ledger.Entry) {
	e.Date = le.Date
	e.Hours = le.Hours
	e.Type = string(le.Type)
	e.Note = le.Note
	e.RequiresMemo = le.RequiresMemo
	e.MemoDone = le.MemoDone
}
