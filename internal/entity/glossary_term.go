package entity

import (
	"time"

	"gorm.io/gorm"
)

// GlossaryTerm - one row of the term catalog
type GlossaryTerm struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Position   int            `gorm:"not null;index" json:"position"`            // catalog order
	Term       string         `gorm:"uniqueIndex;size:100;not null" json:"term"` // e.g. "HODL"
	Definition string         `gorm:"type:text;not null" json:"definition"`      // quiz answer
	Example    string         `gorm:"type:text" json:"example"`                  // display only
	Category   string         `gorm:"size:50;not null;index" json:"category"`    // Trading, DeFi, ...
	Difficulty string         `gorm:"size:20;not null;index" json:"difficulty"`  // Beginner, Intermediate, Advanced
	Importance string         `gorm:"size:20;not null;default:Medium" json:"importance"`
	Tags       string         `gorm:"type:text;not null;default:'[]'" json:"tags"` // JSON array: ["holding","culture"]
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GlossaryTerm) TableName() string {
	return "glossary_terms"
}
