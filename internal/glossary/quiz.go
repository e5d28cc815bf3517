package glossary

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDistractors = 3
	maxSameCategory    = 2
)

type Mode string

const (
	ModeRandom   Mode = "random"
	ModeAdaptive Mode = "adaptive"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRandom:
		return ModeRandom, nil
	case ModeAdaptive, "smart":
		return ModeAdaptive, nil
	}
	return "", fmt.Errorf("unknown quiz mode %q", s)
}

// Question is a single-answer multiple-choice question. Options holds the
// target definition exactly once and never repeats a string.
type Question struct {
	ID      string     `json:"id"`
	Target  TermRecord `json:"target"`
	Options []string   `json:"options"`
}

func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Target.Definition {
			return i
		}
	}
	return -1
}

func (q Question) IsCorrect(answer int) bool {
	return answer >= 0 && answer == q.CorrectIndex()
}

// Generator builds quiz questions. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator uses src for every random choice; nil seeds from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rnd: rand.New(src)}
}

func (g *Generator) shuffled(records []TermRecord) []TermRecord {
	out := append([]TermRecord(nil), records...)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Generate builds a question for target with up to distractorCount wrong
// options. Up to two distractors come from target's category, the rest from
// other categories, then from whatever same-category records remain. Draws
// whose definition is already present are skipped, so a small catalog yields
// fewer options rather than an error.
func (g *Generator) Generate(c *Catalog, target TermRecord, distractorCount int) (Question, error) {
	if c.Len() == 0 {
		return Question{}, ErrEmptyCatalog
	}
	target, ok := c.Lookup(target.Term)
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownTerm, target.Term)
	}
	if distractorCount < 0 {
		distractorCount = 0
	}

	var same, other []TermRecord
	for _, r := range c.records {
		if r.Term == target.Term {
			continue
		}
		if r.Category == target.Category {
			same = append(same, r)
		} else {
			other = append(other, r)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	same = g.shuffled(same)
	other = g.shuffled(other)

	used := map[string]bool{target.Definition: true}
	chosen := make([]string, 0, distractorCount)
	take := func(r TermRecord) bool {
		if used[r.Definition] {
			return false
		}
		used[r.Definition] = true
		chosen = append(chosen, r.Definition)
		return true
	}

	sameCap := maxSameCategory
	if sameCap > distractorCount {
		sameCap = distractorCount
	}
	var leftover []TermRecord
	sameTaken := 0
	for _, r := range same {
		if sameTaken < sameCap && take(r) {
			sameTaken++
			continue
		}
		leftover = append(leftover, r)
	}
	for _, r := range append(other, leftover...) {
		if len(chosen) >= distractorCount {
			break
		}
		take(r)
	}

	options := append([]string{target.Definition}, chosen...)
	g.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Question{
		ID:      uuid.NewString(),
		Target:  target,
		Options: options,
	}, nil
}

// SelectTarget picks the record a question is asked about. category, when not
// empty or All, restricts the candidates. Adaptive mode walks a strict cascade:
// unlearned Critical, unlearned High, any unlearned, then anything for review.
func (g *Generator) SelectTarget(c *Catalog, p ProgressState, mode Mode, category string) (TermRecord, error) {
	if c.Len() == 0 {
		return TermRecord{}, ErrEmptyCatalog
	}

	candidates := c.records
	if category != "" && category != All {
		candidates = nil
		for _, r := range c.records {
			if r.Category == category {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) == 0 {
			return TermRecord{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
	}

	pool := candidates
	if mode == ModeAdaptive {
		var critical, high, unlearned []TermRecord
		for _, r := range candidates {
			if p.LearnedTerms.Has(r.Term) {
				continue
			}
			unlearned = append(unlearned, r)
			switch r.Importance {
			case ImportanceCritical:
				critical = append(critical, r)
			case ImportanceHigh:
				high = append(high, r)
			}
		}
		switch {
		case len(critical) > 0:
			pool = critical
		case len(high) > 0:
			pool = high
		case len(unlearned) > 0:
			pool = unlearned
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return pool[g.rnd.Intn(len(pool))].clone(), nil
}

// Next selects a target and builds its question.
func (g *Generator) Next(c *Catalog, p ProgressState, mode Mode, category string, distractorCount int) (Question, error) {
	target, err := g.SelectTarget(c, p, mode, category)
	if err != nil {
		return Question{}, err
	}
	return g.Generate(c, target, distractorCount)
}
