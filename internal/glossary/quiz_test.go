package glossary_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/evandrarf/cryptolearn-be/internal/glossary"
)

func checkOptions(t *testing.T, q glossary.Question, wantLen int) {
	t.Helper()
	if len(q.Options) != wantLen {
		t.Fatalf("expected %d options, got %d: %v", wantLen, len(q.Options), q.Options)
	}
	seen := make(map[string]bool)
	correct := 0
	for _, o := range q.Options {
		if seen[o] {
			t.Fatalf("duplicate option %q", o)
		}
		seen[o] = true
		if o == q.Target.Definition {
			correct++
		}
	}
	if correct != 1 {
		t.Fatalf("expected the target definition exactly once, got %d", correct)
	}
	if q.Options[q.CorrectIndex()] != q.Target.Definition {
		t.Fatal("CorrectIndex does not point at the target definition")
	}
}

func TestGenerate_FourTermScenario(t *testing.T) {
	c := mustCatalog(t,
		record("HODL", "Trading", glossary.DifficultyBeginner, ""),
		record("FOMO", "Psychology", glossary.DifficultyBeginner, ""),
		record("FUD", "Psychology", glossary.DifficultyBeginner, ""),
		record("DeFi", "DeFi", glossary.DifficultyIntermediate, ""),
	)
	g := glossary.NewGenerator(rand.NewSource(1))
	target, _ := c.Lookup("HODL")

	q, err := g.Generate(c, target, glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkOptions(t, q, 4)
	if q.ID == "" {
		t.Error("expected question id")
	}
}

func TestGenerate_OptionValidityOverDefaultTerms(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	g := glossary.NewGenerator(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		for _, target := range c.Records() {
			q, err := g.Generate(c, target, glossary.DefaultDistractors)
			if err != nil {
				t.Fatalf("Generate(%q): %v", target.Term, err)
			}
			checkOptions(t, q, 4)
		}
	}
}

func TestGenerate_PrefersSameCategoryDistractors(t *testing.T) {
	c := sizedCatalog(t, 30, "Trading", "DeFi", "Memecoins")
	categoryOf := make(map[string]string)
	for _, r := range c.Records() {
		categoryOf[r.Definition] = r.Category
	}
	g := glossary.NewGenerator(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		target := c.Records()[trial%c.Len()]
		q, err := g.Generate(c, target, glossary.DefaultDistractors)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		same := 0
		for _, o := range q.Options {
			if o != target.Definition && categoryOf[o] == target.Category {
				same++
			}
		}
		if same != 2 {
			t.Fatalf("trial %d: expected 2 same-category distractors, got %d", trial, same)
		}
	}
}

func TestGenerate_SingleCategoryStillFillsOptions(t *testing.T) {
	c := sizedCatalog(t, 6, "Memecoins")
	g := glossary.NewGenerator(rand.NewSource(3))
	target := c.Records()[0]

	q, err := g.Generate(c, target, glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkOptions(t, q, 4)
}

func TestGenerate_SmallCatalogDegradesOptionCount(t *testing.T) {
	c := sizedCatalog(t, 2, "Trading", "DeFi")
	g := glossary.NewGenerator(rand.NewSource(3))

	q, err := g.Generate(c, c.Records()[0], glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("expected no error for a small catalog, got %v", err)
	}
	checkOptions(t, q, 2)

	single := sizedCatalog(t, 1, "Trading")
	q, err = g.Generate(single, single.Records()[0], glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("expected no error for a single record, got %v", err)
	}
	checkOptions(t, q, 1)
}

func TestGenerate_Errors(t *testing.T) {
	g := glossary.NewGenerator(rand.NewSource(1))

	empty := mustCatalog(t)
	if _, err := g.Generate(empty, record("HODL", "Trading", glossary.DifficultyBeginner, ""), 3); !errors.Is(err, glossary.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}

	c := sizedCatalog(t, 5, "Trading")
	if _, err := g.Generate(c, record("Nope", "Trading", glossary.DifficultyBeginner, ""), 3); !errors.Is(err, glossary.ErrUnknownTerm) {
		t.Errorf("expected ErrUnknownTerm, got %v", err)
	}
}

func TestGenerate_ShufflesCorrectPosition(t *testing.T) {
	c := sizedCatalog(t, 12, "Trading", "DeFi")
	g := glossary.NewGenerator(rand.NewSource(11))
	target := c.Records()[0]

	positions := make([]int, 4)
	for i := 0; i < 400; i++ {
		q, err := g.Generate(c, target, glossary.DefaultDistractors)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		positions[q.CorrectIndex()]++
	}
	for i, n := range positions {
		// expected about 100 per slot
		if n < 50 {
			t.Errorf("correct answer landed in slot %d only %d times: %v", i, n, positions)
		}
	}
}

func TestQuestion_IsCorrect(t *testing.T) {
	c := sizedCatalog(t, 8, "Trading", "DeFi")
	g := glossary.NewGenerator(rand.NewSource(5))
	q, err := g.Generate(c, c.Records()[2], glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !q.IsCorrect(q.CorrectIndex()) {
		t.Error("expected correct index to be accepted")
	}
	if q.IsCorrect((q.CorrectIndex() + 1) % len(q.Options)) {
		t.Error("expected another index to be rejected")
	}
	if q.IsCorrect(-1) {
		t.Error("expected negative index to be rejected")
	}
}

func adaptiveCatalog(t *testing.T) *glossary.Catalog {
	t.Helper()
	return mustCatalog(t,
		record("Rugpull", "Memecoins", glossary.DifficultyIntermediate, glossary.ImportanceCritical),
		record("Private Key", "Security", glossary.DifficultyBeginner, glossary.ImportanceCritical),
		record("Whale", "Trading", glossary.DifficultyBeginner, glossary.ImportanceHigh),
		record("Degen", "Memecoins", glossary.DifficultyIntermediate, glossary.ImportanceMedium),
		record("Minting", "NFTs", glossary.DifficultyIntermediate, glossary.ImportanceMedium),
	)
}

func TestSelectTarget_AdaptiveCascade(t *testing.T) {
	c := adaptiveCatalog(t)
	tr := glossary.NewTracker(c)
	g := glossary.NewGenerator(rand.NewSource(9))

	steps := []struct {
		learn []string
		allow map[string]bool
	}{
		{nil, map[string]bool{"Rugpull": true, "Private Key": true}},
		{[]string{"Rugpull", "Private Key"}, map[string]bool{"Whale": true}},
		{[]string{"Whale"}, map[string]bool{"Degen": true, "Minting": true}},
		{[]string{"Degen", "Minting"}, map[string]bool{"Rugpull": true, "Private Key": true, "Whale": true, "Degen": true, "Minting": true}},
	}

	p := glossary.NewProgressState()
	for i, step := range steps {
		for _, term := range step.learn {
			p = tr.MarkLearned(p, term)
		}
		for trial := 0; trial < 50; trial++ {
			r, err := g.SelectTarget(c, p, glossary.ModeAdaptive, "")
			if err != nil {
				t.Fatalf("step %d: SelectTarget: %v", i, err)
			}
			if !step.allow[r.Term] {
				t.Fatalf("step %d: unexpected target %q", i, r.Term)
			}
		}
	}
}

func TestSelectTarget_Category(t *testing.T) {
	c := adaptiveCatalog(t)
	g := glossary.NewGenerator(rand.NewSource(2))
	p := glossary.NewProgressState()

	for trial := 0; trial < 30; trial++ {
		r, err := g.SelectTarget(c, p, glossary.ModeRandom, "Memecoins")
		if err != nil {
			t.Fatalf("SelectTarget: %v", err)
		}
		if r.Category != "Memecoins" {
			t.Fatalf("expected a Memecoins term, got %q", r.Category)
		}
	}

	if _, err := g.SelectTarget(c, p, glossary.ModeRandom, "Gaming"); !errors.Is(err, glossary.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := g.SelectTarget(mustCatalog(t), p, glossary.ModeRandom, ""); !errors.Is(err, glossary.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestNext_BuildsQuestionForSelectedTarget(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	g := glossary.NewGenerator(rand.NewSource(4))

	q, err := g.Next(c, glossary.NewProgressState(), glossary.ModeAdaptive, "", glossary.DefaultDistractors)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q.Target.Importance != glossary.ImportanceCritical {
		t.Errorf("expected a critical target for a fresh session, got %q", q.Target.Importance)
	}
	checkOptions(t, q, 4)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]glossary.Mode{"": glossary.ModeRandom, "Random": glossary.ModeRandom, "adaptive": glossary.ModeAdaptive, "smart": glossary.ModeAdaptive} {
		if got, err := glossary.ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := glossary.ParseMode("hard"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
