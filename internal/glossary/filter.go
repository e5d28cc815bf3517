package glossary

import (
	"fmt"
	"sort"
	"strings"
)

// All disables a category, difficulty or importance predicate.
const All = "All"

type LearnedFilter int

const (
	LearnedAny LearnedFilter = iota
	LearnedOnly
	UnlearnedOnly
)

type SortKey string

const (
	SortRelevance    SortKey = "Relevance"
	SortAlphabetical SortKey = "Alphabetical"
	SortCategory     SortKey = "Category"
	SortDifficulty   SortKey = "Difficulty"
)

// ParseSortKey accepts the key names case-insensitively; blank means Relevance.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortRelevance, nil
	}
	for _, k := range []SortKey{SortRelevance, SortAlphabetical, SortCategory, SortDifficulty} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Query holds the filter criteria. The zero value matches every record.
type Query struct {
	Search     string
	Category   string
	Difficulty string
	Importance string
	Tags       []string
	Learned    LearnedFilter
}

func exact(want, have string) bool {
	return want == "" || want == All || want == have
}

func (q Query) matches(r TermRecord, needle string, learned TermSet) bool {
	if needle != "" &&
		!strings.Contains(strings.ToLower(r.Term), needle) &&
		!strings.Contains(strings.ToLower(r.Definition), needle) &&
		!strings.Contains(strings.ToLower(r.Example), needle) {
		return false
	}
	if !exact(q.Category, r.Category) ||
		!exact(q.Difficulty, string(r.Difficulty)) ||
		!exact(q.Importance, string(r.Importance)) {
		return false
	}
	if len(q.Tags) > 0 {
		hit := false
		for _, tag := range q.Tags {
			if r.HasTag(tag) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	switch q.Learned {
	case LearnedOnly:
		return learned.Has(r.Term)
	case UnlearnedOnly:
		return !learned.Has(r.Term)
	}
	return true
}

// Filter returns the records matching every active predicate of q, in catalog
// order. learned is only consulted when q.Learned is set and may be nil.
func Filter(c *Catalog, q Query, learned TermSet) []TermRecord {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]TermRecord, 0)
	for _, r := range c.records {
		if q.matches(r, needle, learned) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Sort returns a stably sorted copy of records.
func Sort(records []TermRecord, key SortKey) []TermRecord {
	out := append([]TermRecord(nil), records...)
	switch key {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return lessTerm(out[i], out[j])
		})
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Category != out[j].Category {
				return out[i].Category < out[j].Category
			}
			return lessTerm(out[i], out[j])
		})
	case SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Difficulty.Rank() < out[j].Difficulty.Rank()
		})
	}
	return out
}

func lessTerm(a, b TermRecord) bool {
	la, lb := strings.ToLower(a.Term), strings.ToLower(b.Term)
	if la != lb {
		return la < lb
	}
	return a.Term < b.Term
}
