package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/session"
	"github.com/sirupsen/logrus"
)

type GlossaryUsecase interface {
	ListTerms(ctx context.Context, query entity.TermListQuery) (*entity.TermListResponse, error)
	GetTerm(ctx context.Context, term string, sessionID string) (*entity.TermView, error)
	RandomTerm(ctx context.Context, query entity.RandomTermQuery) (*entity.TermView, error)
	Categories(ctx context.Context) []string
	Tags(ctx context.Context) []string
	Stats(ctx context.Context) *entity.CatalogStatsResponse
}

type GlossaryConfig struct {
	Catalog   *glossary.Catalog
	Tracker   *glossary.Tracker
	Generator *glossary.Generator
	Sessions  *session.Store
	Log       *logrus.Logger
}

type glossaryUsecase struct {
	cfg GlossaryConfig
}

func NewGlossaryUsecase(cfg GlossaryConfig) GlossaryUsecase {
	return &glossaryUsecase{cfg: cfg}
}

func parseLearnedFilter(s string) glossary.LearnedFilter {
	switch s {
	case "learned":
		return glossary.LearnedOnly
	case "unlearned":
		return glossary.UnlearnedOnly
	}
	return glossary.LearnedAny
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// learnedSet returns nil when no session is given.
func (u *glossaryUsecase) learnedSet(sessionID string) (glossary.TermSet, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := u.cfg.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Progress.LearnedTerms, nil
}

func view(r glossary.TermRecord, learned glossary.TermSet) entity.TermView {
	v := entity.TermView{TermRecord: r}
	if learned != nil {
		has := learned.Has(r.Term)
		v.Learned = &has
	}
	return v
}

func (u *glossaryUsecase) ListTerms(_ context.Context, query entity.TermListQuery) (*entity.TermListResponse, error) {
	sortKey, err := glossary.ParseSortKey(query.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	q := glossary.Query{
		Search:   query.Search,
		Category: strings.TrimSpace(query.Category),
		Tags:     splitList(query.Tags),
		Learned:  parseLearnedFilter(query.Learned),
	}
	if d := strings.TrimSpace(query.Difficulty); d != "" && d != glossary.All {
		difficulty, err := glossary.ParseDifficulty(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		q.Difficulty = string(difficulty)
	}
	if i := strings.TrimSpace(query.Importance); i != "" && i != glossary.All {
		importance, err := glossary.ParseImportance(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		q.Importance = string(importance)
	}

	if q.Learned != glossary.LearnedAny && query.SessionID == "" {
		return nil, fmt.Errorf("%w: the learned filter needs a session", ErrSessionRequired)
	}
	learned, err := u.learnedSet(query.SessionID)
	if err != nil {
		return nil, err
	}

	records := glossary.Sort(glossary.Filter(u.cfg.Catalog, q, learned), sortKey)
	terms := make([]entity.TermView, 0, len(records))
	for _, r := range records {
		terms = append(terms, view(r, learned))
	}

	return &entity.TermListResponse{Terms: terms, Sort: sortKey}, nil
}

func (u *glossaryUsecase) GetTerm(_ context.Context, term string, sessionID string) (*entity.TermView, error) {
	record, ok := u.cfg.Catalog.Lookup(term)
	if !ok {
		return nil, fmt.Errorf("%w: %q", glossary.ErrUnknownTerm, term)
	}
	learned, err := u.learnedSet(sessionID)
	if err != nil {
		return nil, err
	}
	v := view(record, learned)
	return &v, nil
}

// RandomTerm picks any term, optionally within a category. With a session an
// uncategorized pick also counts as learned; a category pick is only shown.
func (u *glossaryUsecase) RandomTerm(_ context.Context, query entity.RandomTermQuery) (*entity.TermView, error) {
	var progress glossary.ProgressState
	if query.SessionID != "" {
		sess, err := u.cfg.Sessions.Get(query.SessionID)
		if err != nil {
			return nil, err
		}
		progress = sess.Progress
	}

	record, err := u.cfg.Generator.SelectTarget(u.cfg.Catalog, progress, glossary.ModeRandom, strings.TrimSpace(query.Category))
	if err != nil {
		return nil, err
	}

	if query.SessionID == "" {
		v := view(record, nil)
		return &v, nil
	}
	if strings.TrimSpace(query.Category) != "" {
		v := view(record, progress.LearnedTerms)
		return &v, nil
	}

	sess, err := u.cfg.Sessions.Update(query.SessionID, func(s *session.Session) error {
		s.Progress = u.cfg.Tracker.MarkLearned(s.Progress, record.Term)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.cfg.Log.WithFields(logrus.Fields{"session_id": sess.ID, "term": record.Term}).Debug("random term marked learned")

	v := view(record, sess.Progress.LearnedTerms)
	return &v, nil
}

func (u *glossaryUsecase) Categories(_ context.Context) []string {
	return u.cfg.Catalog.Categories()
}

func (u *glossaryUsecase) Tags(_ context.Context) []string {
	return u.cfg.Catalog.Tags()
}

func (u *glossaryUsecase) Stats(_ context.Context) *entity.CatalogStatsResponse {
	return &entity.CatalogStatsResponse{
		CatalogStats: u.cfg.Catalog.Stats(),
		Categories:   u.cfg.Catalog.Categories(),
	}
}
