package usecase

import (
	"context"
	"fmt"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/session"
	"github.com/sirupsen/logrus"
)

type LearningUsecase interface {
	CreateSession(ctx context.Context) *entity.SessionResponse
	EndSession(ctx context.Context, sessionID string) error
	Progress(ctx context.Context, sessionID string) (*entity.ProgressResponse, error)
	MarkLearned(ctx context.Context, sessionID string, term string) (*entity.ProgressResponse, error)
	UnmarkLearned(ctx context.Context, sessionID string, term string) (*entity.ProgressResponse, error)
	NextQuestion(ctx context.Context, sessionID string, query entity.NextQuestionQuery) (*entity.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.AnswerResponse, error)
}

type LearningConfig struct {
	Catalog     *glossary.Catalog
	Tracker     *glossary.Tracker
	Generator   *glossary.Generator
	Sessions    *session.Store
	Distractors int
	Log         *logrus.Logger
}

type learningUsecase struct {
	cfg LearningConfig
}

func NewLearningUsecase(cfg LearningConfig) LearningUsecase {
	if cfg.Distractors <= 0 {
		cfg.Distractors = glossary.DefaultDistractors
	}
	return &learningUsecase{cfg: cfg}
}

func (u *learningUsecase) CreateSession(_ context.Context) *entity.SessionResponse {
	sess := u.cfg.Sessions.Create()
	u.cfg.Log.WithField("session_id", sess.ID).Info("session created")
	return &entity.SessionResponse{SessionID: sess.ID, CreatedAt: sess.CreatedAt}
}

func (u *learningUsecase) EndSession(_ context.Context, sessionID string) error {
	if err := u.cfg.Sessions.Delete(sessionID); err != nil {
		return err
	}
	u.cfg.Log.WithField("session_id", sessionID).Info("session ended")
	return nil
}

func (u *learningUsecase) progress(sess session.Session) *entity.ProgressResponse {
	p := sess.Progress
	learned := make([]string, 0, p.LearnedTerms.Len())
	for _, name := range p.LearnedTerms.Sorted() {
		if u.cfg.Catalog.Contains(name) {
			learned = append(learned, name)
		}
	}

	return &entity.ProgressResponse{
		SessionID:        sess.ID,
		LearnedTerms:     learned,
		LearnedCount:     len(learned),
		TotalTerms:       u.cfg.Catalog.Len(),
		Completion:       u.cfg.Tracker.Completion(p),
		Level:            u.cfg.Tracker.Level(p),
		QuizScore:        p.QuizScore,
		QuizAttempts:     p.QuizAttempts,
		QuizStreak:       p.QuizStreak,
		BestStreak:       p.BestStreak,
		Accuracy:         p.Accuracy(),
		CriticalMastered: u.cfg.Tracker.CriticalMastered(p),
		Categories:       u.cfg.Tracker.CategoryProgress(p),
		Achievements:     u.cfg.Tracker.Achievements(p),
	}
}

func (u *learningUsecase) Progress(_ context.Context, sessionID string) (*entity.ProgressResponse, error) {
	sess, err := u.cfg.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return u.progress(sess), nil
}

// MarkLearned ignores names outside the catalog, like the tracker does.
func (u *learningUsecase) MarkLearned(_ context.Context, sessionID string, term string) (*entity.ProgressResponse, error) {
	sess, err := u.cfg.Sessions.Update(sessionID, func(s *session.Session) error {
		s.Progress = u.cfg.Tracker.MarkLearned(s.Progress, term)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.progress(sess), nil
}

func (u *learningUsecase) UnmarkLearned(_ context.Context, sessionID string, term string) (*entity.ProgressResponse, error) {
	sess, err := u.cfg.Sessions.Update(sessionID, func(s *session.Session) error {
		s.Progress = u.cfg.Tracker.UnmarkLearned(s.Progress, term)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.progress(sess), nil
}

// NextQuestion replaces any question still pending for the session.
func (u *learningUsecase) NextQuestion(_ context.Context, sessionID string, query entity.NextQuestionQuery) (*entity.QuestionResponse, error) {
	mode, err := glossary.ParseMode(query.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	var question glossary.Question
	_, err = u.cfg.Sessions.Update(sessionID, func(s *session.Session) error {
		q, err := u.cfg.Generator.Next(u.cfg.Catalog, s.Progress, mode, query.Category, u.cfg.Distractors)
		if err != nil {
			return err
		}
		s.Pending = &q
		question = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &entity.QuestionResponse{
		QuestionID: question.ID,
		Term:       question.Target.Term,
		Category:   question.Target.Category,
		Difficulty: question.Target.Difficulty,
		Importance: question.Target.Importance,
		Options:    question.Options,
		Mode:       mode,
	}
	if query.IncludeAnswer {
		idx := question.CorrectIndex()
		res.AnswerIndex = &idx
	}
	return res, nil
}

// SubmitAnswer grades the pending question and consumes it. A correct answer
// also marks the term learned.
func (u *learningUsecase) SubmitAnswer(_ context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.AnswerResponse, error) {
	if req.AnswerIndex == nil {
		return nil, fmt.Errorf("%w: missing answer", ErrAnswerOutOfRange)
	}
	answer := *req.AnswerIndex

	var (
		question glossary.Question
		correct  bool
		before   []glossary.Achievement
	)
	sess, err := u.cfg.Sessions.Update(sessionID, func(s *session.Session) error {
		if s.Pending == nil || s.Pending.ID != req.QuestionID {
			return session.ErrQuestionNotPending
		}
		question = *s.Pending
		if answer < 0 || answer >= len(question.Options) {
			return fmt.Errorf("%w: %d of %d options", ErrAnswerOutOfRange, answer, len(question.Options))
		}

		before = u.cfg.Tracker.Achievements(s.Progress)
		correct = question.IsCorrect(answer)
		s.Progress = u.cfg.Tracker.RecordAnswer(s.Progress, question.Target.Term, correct)
		s.Pending = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	p := sess.Progress
	u.cfg.Log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"term":       question.Target.Term,
		"correct":    correct,
		"streak":     p.QuizStreak,
	}).Debug("quiz answer recorded")

	return &entity.AnswerResponse{
		Correct:           correct,
		CorrectIndex:      question.CorrectIndex(),
		CorrectDefinition: question.Target.Definition,
		Term:              question.Target.Term,
		Example:           question.Target.Example,
		QuizScore:         p.QuizScore,
		QuizAttempts:      p.QuizAttempts,
		QuizStreak:        p.QuizStreak,
		Accuracy:          p.Accuracy(),
		Unlocked:          newlyUnlocked(before, u.cfg.Tracker.Achievements(p)),
	}, nil
}

func newlyUnlocked(before, after []glossary.Achievement) []glossary.Achievement {
	had := make(map[string]bool, len(before))
	for _, a := range before {
		if a.Unlocked {
			had[a.ID] = true
		}
	}
	var out []glossary.Achievement
	for _, a := range after {
		if a.Unlocked && !had[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
