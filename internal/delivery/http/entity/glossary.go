package entity

import "github.com/evandrarf/cryptolearn-be/internal/glossary"

// TermListQuery - GET /terms
type TermListQuery struct {
	Search     string `query:"search" validate:"max=100"`
	Category   string `query:"category" validate:"max=50"`
	Difficulty string `query:"difficulty" validate:"max=20"`
	Importance string `query:"importance" validate:"max=20"`
	Tags       string `query:"tags" validate:"max=200"` // comma separated, any match
	Learned    string `query:"learned" validate:"omitempty,oneof=any learned unlearned"`
	Sort       string `query:"sort" validate:"max=20"`
	SessionID  string `query:"session_id" validate:"omitempty,uuid"`
}

// RandomTermQuery - GET /terms/random
type RandomTermQuery struct {
	Category  string `query:"category" validate:"max=50"`
	SessionID string `query:"session_id" validate:"omitempty,uuid"`
}

type TermView struct {
	glossary.TermRecord
	Learned *bool `json:"learned,omitempty"`
}

type TermListResponse struct {
	Terms []TermView       `json:"terms"`
	Sort  glossary.SortKey `json:"sort"`
}

type CatalogStatsResponse struct {
	glossary.CatalogStats
	Categories []string `json:"categories"`
}
