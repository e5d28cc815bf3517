package glossary

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Rank orders difficulties for sorting. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 4
}

func (d Difficulty) Valid() bool {
	return d.Rank() < 4
}

// ParseDifficulty matches case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

type Importance string

const (
	ImportanceCritical Importance = "Critical"
	ImportanceHigh     Importance = "High"
	ImportanceMedium   Importance = "Medium"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceCritical, ImportanceHigh, ImportanceMedium:
		return true
	}
	return false
}

// ParseImportance matches case-insensitively. Blank input is Medium.
func ParseImportance(s string) (Importance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ImportanceMedium, nil
	}
	for _, i := range []Importance{ImportanceCritical, ImportanceHigh, ImportanceMedium} {
		if strings.EqualFold(s, string(i)) {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown importance %q", s)
}

// TermRecord is one glossary entry.
type TermRecord struct {
	Term       string     `json:"term"`
	Definition string     `json:"definition"`
	Example    string     `json:"example"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Importance Importance `json:"importance"`
	Tags       []string   `json:"tags"`
}

func (t TermRecord) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

func (t TermRecord) clone() TermRecord {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}

func termKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func definitionKey(def string) string {
	return strings.Join(strings.Fields(strings.ToLower(def)), " ")
}
