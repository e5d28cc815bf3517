package glossary

import (
	"fmt"
	"sort"
)

// TermSet holds canonical term names.
type TermSet map[string]struct{}

func NewTermSet(terms ...string) TermSet {
	s := make(TermSet, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

func (s TermSet) Has(term string) bool {
	_, ok := s[term]
	return ok
}

func (s TermSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s TermSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s TermSet) clone() TermSet {
	out := make(TermSet, len(s)+1)
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// ProgressState is one session's learning record. It is treated as a value:
// Tracker operations return a new state and leave their input untouched.
type ProgressState struct {
	LearnedTerms TermSet `json:"learned_terms"`
	QuizScore    int     `json:"quiz_score"`
	QuizAttempts int     `json:"quiz_attempts"`
	QuizStreak   int     `json:"quiz_streak"`
	BestStreak   int     `json:"best_streak"`
}

func NewProgressState() ProgressState {
	return ProgressState{LearnedTerms: TermSet{}}
}

// Accuracy is QuizScore/QuizAttempts, or 0 before the first attempt.
func (p ProgressState) Accuracy() float64 {
	if p.QuizAttempts == 0 {
		return 0
	}
	return float64(p.QuizScore) / float64(p.QuizAttempts)
}

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
	LevelMaster       Level = "Master"
)

// LevelFor maps a completion ratio to a level. Lower bounds are inclusive.
func LevelFor(completion float64) Level {
	switch {
	case completion >= 0.8:
		return LevelMaster
	case completion >= 0.6:
		return LevelExpert
	case completion >= 0.4:
		return LevelAdvanced
	case completion >= 0.2:
		return LevelIntermediate
	}
	return LevelBeginner
}

type CategoryProgress struct {
	Category string  `json:"category"`
	Learned  int     `json:"learned"`
	Total    int     `json:"total"`
	Ratio    float64 `json:"ratio"`
	Mastered bool    `json:"mastered"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Tracker applies progress operations against one catalog.
type Tracker struct {
	catalog *Catalog
}

func NewTracker(c *Catalog) *Tracker {
	return &Tracker{catalog: c}
}

// MarkLearned adds term to the learned set. Unknown terms are ignored.
func (t *Tracker) MarkLearned(p ProgressState, term string) ProgressState {
	name, ok := t.catalog.canonical(term)
	if !ok || p.LearnedTerms.Has(name) {
		return p
	}
	p.LearnedTerms = p.LearnedTerms.clone()
	p.LearnedTerms[name] = struct{}{}
	return p
}

// UnmarkLearned removes term from the learned set. Unknown terms are ignored.
func (t *Tracker) UnmarkLearned(p ProgressState, term string) ProgressState {
	name, ok := t.catalog.canonical(term)
	if !ok || !p.LearnedTerms.Has(name) {
		return p
	}
	p.LearnedTerms = p.LearnedTerms.clone()
	delete(p.LearnedTerms, name)
	return p
}

// RecordAnswer counts one quiz attempt for term.
func (t *Tracker) RecordAnswer(p ProgressState, term string, correct bool) ProgressState {
	p.QuizAttempts++
	if !correct {
		p.QuizStreak = 0
		return p
	}
	p.QuizScore++
	p.QuizStreak++
	if p.QuizStreak > p.BestStreak {
		p.BestStreak = p.QuizStreak
	}
	return t.MarkLearned(p, term)
}

// learnedCount ignores names no longer present in the catalog.
func (t *Tracker) learnedCount(p ProgressState) int {
	n := 0
	for name := range p.LearnedTerms {
		if t.catalog.Contains(name) {
			n++
		}
	}
	return n
}

func (t *Tracker) Completion(p ProgressState) float64 {
	if t.catalog.Len() == 0 {
		return 0
	}
	return float64(t.learnedCount(p)) / float64(t.catalog.Len())
}

func (t *Tracker) Level(p ProgressState) Level {
	return LevelFor(t.Completion(p))
}

func (t *Tracker) CategoryMastered(p ProgressState, category string) bool {
	found := false
	for _, r := range t.catalog.records {
		if r.Category != category {
			continue
		}
		found = true
		if !p.LearnedTerms.Has(r.Term) {
			return false
		}
	}
	return found
}

// CriticalMastered reports whether every Critical record is learned. It holds
// trivially for a catalog without Critical records.
func (t *Tracker) CriticalMastered(p ProgressState) bool {
	for _, r := range t.catalog.records {
		if r.Importance == ImportanceCritical && !p.LearnedTerms.Has(r.Term) {
			return false
		}
	}
	return true
}

func (t *Tracker) CategoryProgress(p ProgressState) []CategoryProgress {
	byCat := make(map[string]*CategoryProgress)
	var order []string
	for _, r := range t.catalog.records {
		cp, ok := byCat[r.Category]
		if !ok {
			cp = &CategoryProgress{Category: r.Category}
			byCat[r.Category] = cp
			order = append(order, r.Category)
		}
		cp.Total++
		if p.LearnedTerms.Has(r.Term) {
			cp.Learned++
		}
	}
	sort.Strings(order)

	out := make([]CategoryProgress, 0, len(order))
	for _, cat := range order {
		cp := byCat[cat]
		cp.Ratio = float64(cp.Learned) / float64(cp.Total)
		cp.Mastered = cp.Learned == cp.Total
		out = append(out, *cp)
	}
	return out
}

const (
	sharpshooterMinAttempts = 10
	sharpshooterAccuracy    = 0.8
)

// Achievements is recomputed on every call since the learned set can shrink.
func (t *Tracker) Achievements(p ProgressState) []Achievement {
	completion := t.Completion(p)
	out := []Achievement{
		{
			ID:          "first_term",
			Title:       "First Steps",
			Description: "Learn your first term",
			Unlocked:    t.learnedCount(p) > 0,
		},
		{
			ID:          "halfway",
			Title:       "Halfway There",
			Description: "Learn half of the glossary",
			Unlocked:    completion >= 0.5,
		},
		{
			ID:          "completionist",
			Title:       "Completionist",
			Description: "Learn every term in the glossary",
			Unlocked:    t.catalog.Len() > 0 && completion >= 1,
		},
		{
			ID:          "streak_5",
			Title:       "On Fire",
			Description: "Answer 5 quiz questions in a row correctly",
			Unlocked:    p.BestStreak >= 5,
		},
		{
			ID:          "streak_10",
			Title:       "Unstoppable",
			Description: "Answer 10 quiz questions in a row correctly",
			Unlocked:    p.BestStreak >= 10,
		},
		{
			ID:          "sharpshooter",
			Title:       "Sharpshooter",
			Description: fmt.Sprintf("Keep %.0f%% accuracy over at least %d quiz answers", sharpshooterAccuracy*100, sharpshooterMinAttempts),
			Unlocked:    p.QuizAttempts >= sharpshooterMinAttempts && p.Accuracy() >= sharpshooterAccuracy,
		},
		{
			ID:          "critical_mastered",
			Title:       "Risk Aware",
			Description: "Learn every critical term",
			Unlocked:    t.CriticalMastered(p),
		},
	}

	for _, cp := range t.CategoryProgress(p) {
		out = append(out, Achievement{
			ID:          "category:" + cp.Category,
			Title:       cp.Category + " Master",
			Description: fmt.Sprintf("Learn all %d %s terms", cp.Total, cp.Category),
			Unlocked:    cp.Mastered,
		})
	}
	return out
}
