package glossary_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/evandrarf/cryptolearn-be/internal/glossary"
)

func TestRecordAnswer_ThreeRightOneWrong(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	tr := glossary.NewTracker(c)

	p := glossary.NewProgressState()
	p = tr.RecordAnswer(p, "HODL", true)
	p = tr.RecordAnswer(p, "FOMO", true)
	p = tr.RecordAnswer(p, "FUD", true)
	p = tr.RecordAnswer(p, "DeFi", false)

	if p.QuizScore != 3 || p.QuizAttempts != 4 || p.QuizStreak != 0 {
		t.Fatalf("unexpected counters %+v", p)
	}
	if p.BestStreak != 3 {
		t.Errorf("expected best streak 3, got %d", p.BestStreak)
	}
	if p.Accuracy() != 0.75 {
		t.Errorf("expected accuracy 0.75, got %v", p.Accuracy())
	}
	if p.LearnedTerms.Has("DeFi") {
		t.Error("a wrong answer must not mark the term learned")
	}
	for _, term := range []string{"HODL", "FOMO", "FUD"} {
		if !p.LearnedTerms.Has(term) {
			t.Errorf("expected %q learned after a correct answer", term)
		}
	}
}

func TestRecordAnswer_CorrectIsMonotonic(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	tr := glossary.NewTracker(c)

	p := glossary.NewProgressState()
	for i, r := range c.Records() {
		correct := i%3 != 0
		next := tr.RecordAnswer(p, r.Term, correct)

		if next.QuizAttempts != p.QuizAttempts+1 {
			t.Fatalf("attempts did not advance by one: %d -> %d", p.QuizAttempts, next.QuizAttempts)
		}
		if correct && (next.QuizScore < p.QuizScore || next.QuizStreak < p.QuizStreak || next.LearnedTerms.Len() < p.LearnedTerms.Len()) {
			t.Fatalf("correct answer decreased a counter: %+v -> %+v", p, next)
		}
		if !correct && next.QuizStreak != 0 {
			t.Fatalf("wrong answer kept streak %d", next.QuizStreak)
		}
		if next.QuizScore > next.QuizAttempts {
			t.Fatalf("score %d exceeds attempts %d", next.QuizScore, next.QuizAttempts)
		}
		if a := next.Accuracy(); a < 0 || a > 1 {
			t.Fatalf("accuracy %v out of range", a)
		}
		p = next
	}
}

func TestMarkLearned_IdempotentAndPure(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	tr := glossary.NewTracker(c)
	start := glossary.NewProgressState()

	once := tr.MarkLearned(start, "HODL")
	twice := tr.MarkLearned(once, "HODL")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("MarkLearned is not idempotent: %+v vs %+v", once, twice)
	}
	if start.LearnedTerms.Len() != 0 {
		t.Error("MarkLearned mutated its input")
	}
}

func TestMarkLearned_CanonicalizesAndIgnoresUnknown(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	tr := glossary.NewTracker(c)

	p := tr.MarkLearned(glossary.NewProgressState(), "hodl")
	if !p.LearnedTerms.Has("HODL") {
		t.Errorf("expected canonical name stored, got %v", p.LearnedTerms.Sorted())
	}

	q := tr.MarkLearned(p, "Not A Term")
	if !reflect.DeepEqual(p, q) {
		t.Error("unknown term should be a no-op")
	}
}

func TestUnmarkLearned(t *testing.T) {
	c := mustCatalog(t, glossary.DefaultTerms...)
	tr := glossary.NewTracker(c)

	p := tr.MarkLearned(glossary.NewProgressState(), "HODL")
	removed := tr.UnmarkLearned(p, "HODL")
	if removed.LearnedTerms.Has("HODL") {
		t.Error("expected HODL to be removed")
	}
	if !p.LearnedTerms.Has("HODL") {
		t.Error("UnmarkLearned mutated its input")
	}
	if again := tr.UnmarkLearned(removed, "HODL"); !reflect.DeepEqual(again, removed) {
		t.Error("UnmarkLearned is not idempotent")
	}
	if unknown := tr.UnmarkLearned(p, "Nope"); !reflect.DeepEqual(unknown, p) {
		t.Error("unknown term should be a no-op")
	}
}

func TestAccuracy_NoAttempts(t *testing.T) {
	if a := glossary.NewProgressState().Accuracy(); a != 0 {
		t.Errorf("expected 0 accuracy without attempts, got %v", a)
	}
}

func TestCompletionAndLevel_FiveOfTwentyFive(t *testing.T) {
	c := sizedCatalog(t, 25, "Trading", "DeFi")
	tr := glossary.NewTracker(c)

	p := glossary.NewProgressState()
	for _, r := range c.Records()[:5] {
		p = tr.MarkLearned(p, r.Term)
	}

	if got := tr.Completion(p); math.Abs(got-0.20) > 1e-12 {
		t.Fatalf("expected completion 0.20, got %v", got)
	}
	if lvl := tr.Level(p); lvl != glossary.LevelIntermediate {
		t.Errorf("expected Intermediate, got %q", lvl)
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		completion float64
		want       glossary.Level
	}{
		{0, glossary.LevelBeginner},
		{0.19, glossary.LevelBeginner},
		{0.2, glossary.LevelIntermediate},
		{0.4, glossary.LevelAdvanced},
		{0.59, glossary.LevelAdvanced},
		{0.6, glossary.LevelExpert},
		{0.8, glossary.LevelMaster},
		{1, glossary.LevelMaster},
	}
	for _, tt := range tests {
		if got := glossary.LevelFor(tt.completion); got != tt.want {
			t.Errorf("LevelFor(%v) = %q, want %q", tt.completion, got, tt.want)
		}
	}
}

func TestMastery_RecomputedAfterUnlearn(t *testing.T) {
	c := adaptiveCatalog(t)
	tr := glossary.NewTracker(c)

	p := glossary.NewProgressState()
	p = tr.MarkLearned(p, "Rugpull")
	p = tr.MarkLearned(p, "Degen")
	if !tr.CategoryMastered(p, "Memecoins") {
		t.Fatal("expected Memecoins mastered")
	}
	if tr.CriticalMastered(p) {
		t.Fatal("Private Key is still unlearned")
	}

	p = tr.MarkLearned(p, "Private Key")
	if !tr.CriticalMastered(p) {
		t.Fatal("expected critical terms mastered")
	}

	p = tr.UnmarkLearned(p, "Degen")
	if tr.CategoryMastered(p, "Memecoins") {
		t.Error("mastery must be lost after unlearning a category term")
	}
	if tr.CategoryMastered(p, "Gaming") {
		t.Error("an unknown category cannot be mastered")
	}
}

func TestCategoryProgress(t *testing.T) {
	c := adaptiveCatalog(t)
	tr := glossary.NewTracker(c)
	p := tr.MarkLearned(glossary.NewProgressState(), "Rugpull")

	got := tr.CategoryProgress(p)
	if len(got) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(got))
	}
	mem := got[0]
	if mem.Category != "Memecoins" || mem.Learned != 1 || mem.Total != 2 || mem.Ratio != 0.5 || mem.Mastered {
		t.Errorf("unexpected Memecoins progress %+v", mem)
	}
}

func TestAchievements(t *testing.T) {
	c := adaptiveCatalog(t)
	tr := glossary.NewTracker(c)

	unlocked := func(p glossary.ProgressState) map[string]bool {
		out := make(map[string]bool)
		for _, a := range tr.Achievements(p) {
			if a.Unlocked {
				out[a.ID] = true
			}
		}
		return out
	}

	p := glossary.NewProgressState()
	if got := unlocked(p); len(got) != 0 {
		t.Errorf("expected nothing unlocked for a fresh session, got %v", got)
	}

	for i := 0; i < 5; i++ {
		p = tr.RecordAnswer(p, "Whale", true)
	}
	got := unlocked(p)
	if !got["first_term"] || !got["streak_5"] || got["streak_10"] {
		t.Errorf("unexpected achievements after 5 correct answers: %v", got)
	}
	if !got["category:Trading"] {
		t.Error("expected Trading mastered")
	}

	for i := 0; i < 5; i++ {
		p = tr.RecordAnswer(p, "Degen", i != 4)
	}
	got = unlocked(p)
	if !got["sharpshooter"] {
		t.Errorf("expected sharpshooter at %d/%d, got %v", p.QuizScore, p.QuizAttempts, got)
	}
	if !got["streak_5"] {
		t.Error("best streak badge must survive a reset streak")
	}

	for _, r := range c.Records() {
		p = tr.MarkLearned(p, r.Term)
	}
	got = unlocked(p)
	if !got["completionist"] || !got["critical_mastered"] || !got["halfway"] {
		t.Errorf("expected completion badges, got %v", got)
	}
}
