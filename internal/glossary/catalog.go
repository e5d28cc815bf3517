package glossary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyCatalog        = errors.New("catalog is empty")
	ErrUnknownTerm         = errors.New("term not in catalog")
	ErrUnknownCategory     = errors.New("category not in catalog")
	ErrInvalidRecord       = errors.New("invalid term record")
	ErrDuplicateTerm       = errors.New("duplicate term")
	ErrDuplicateDefinition = errors.New("duplicate definition")
)

// Catalog is the ordered, read-only set of term records. It is safe to share
// between goroutines once built.
type Catalog struct {
	records []TermRecord
	index   map[string]int
}

type CatalogStats struct {
	Total        int                `json:"total"`
	ByCategory   map[string]int     `json:"by_category"`
	ByDifficulty map[Difficulty]int `json:"by_difficulty"`
	ByImportance map[Importance]int `json:"by_importance"`
}

// NewCatalog validates and normalizes records. Terms and definitions must be
// unique after case folding; importance defaults to Medium.
func NewCatalog(records []TermRecord) (*Catalog, error) {
	c := &Catalog{
		records: make([]TermRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	definitions := make(map[string]string, len(records))

	for i, r := range records {
		r = r.clone()
		r.Term = strings.TrimSpace(r.Term)
		r.Definition = strings.TrimSpace(r.Definition)
		r.Example = strings.TrimSpace(r.Example)
		r.Category = strings.TrimSpace(r.Category)

		if r.Term == "" {
			return nil, fmt.Errorf("record %d: %w: empty term", i, ErrInvalidRecord)
		}
		if r.Definition == "" {
			return nil, fmt.Errorf("record %q: %w: empty definition", r.Term, ErrInvalidRecord)
		}
		if !r.Difficulty.Valid() {
			return nil, fmt.Errorf("record %q: %w: difficulty %q", r.Term, ErrInvalidRecord, r.Difficulty)
		}
		if r.Importance == "" {
			r.Importance = ImportanceMedium
		}
		if !r.Importance.Valid() {
			return nil, fmt.Errorf("record %q: %w: importance %q", r.Term, ErrInvalidRecord, r.Importance)
		}
		r.Tags = dedupeTags(r.Tags)

		key := termKey(r.Term)
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("record %q: %w", r.Term, ErrDuplicateTerm)
		}
		defKey := definitionKey(r.Definition)
		if other, ok := definitions[defKey]; ok {
			return nil, fmt.Errorf("records %q and %q: %w", other, r.Term, ErrDuplicateDefinition)
		}

		definitions[defKey] = r.Term
		c.index[key] = len(c.records)
		c.records = append(c.records, r)
	}

	return c, nil
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy in catalog order.
func (c *Catalog) Records() []TermRecord {
	out := make([]TermRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// Lookup finds a record by term, ignoring case and surrounding space.
func (c *Catalog) Lookup(term string) (TermRecord, bool) {
	i, ok := c.index[termKey(term)]
	if !ok {
		return TermRecord{}, false
	}
	return c.records[i].clone(), true
}

func (c *Catalog) Contains(term string) bool {
	_, ok := c.index[termKey(term)]
	return ok
}

func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) HasCategory(category string) bool {
	for _, r := range c.records {
		if r.Category == category {
			return true
		}
	}
	return false
}

func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.records {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Stats() CatalogStats {
	s := CatalogStats{
		Total:        len(c.records),
		ByCategory:   make(map[string]int),
		ByDifficulty: make(map[Difficulty]int),
		ByImportance: make(map[Importance]int),
	}
	for _, r := range c.records {
		s.ByCategory[r.Category]++
		s.ByDifficulty[r.Difficulty]++
		s.ByImportance[r.Importance]++
	}
	return s
}

// canonical returns the stored term name for a lookup key.
func (c *Catalog) canonical(term string) (string, bool) {
	i, ok := c.index[termKey(term)]
	if !ok {
		return "", false
	}
	return c.records[i].Term, true
}
