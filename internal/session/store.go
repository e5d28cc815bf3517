package session

import (
	"errors"
	"sync"
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("session not found")
	ErrQuestionNotPending = errors.New("question is not pending for this session")
)

// Session is a snapshot of one visitor's state. Pending is the question
// waiting for an answer, if any.
type Session struct {
	ID        string
	Progress  glossary.ProgressState
	Pending   *glossary.Question
	CreatedAt time.Time
	LastSeen  time.Time
}

func (s *Session) snapshot() Session {
	out := *s
	out.Progress.LearnedTerms = glossary.NewTermSet(s.Progress.LearnedTerms.Sorted()...)
	if s.Pending != nil {
		q := *s.Pending
		q.Options = append([]string(nil), s.Pending.Options...)
		out.Pending = &q
	}
	return out
}

// Store keeps sessions in memory only. Nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return NewStoreWithClock(ttl, time.Now)
}

func NewStoreWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Progress:  glossary.NewProgressState(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess.snapshot()
}

func (s *Store) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.LastSeen) >= s.ttl
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	sess.LastSeen = s.now()
	return sess.snapshot(), nil
}

// Update runs fn on the live session under the store lock, so updates to one
// session never interleave. An error from fn leaves the session unchanged.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	work := sess.snapshot()
	if err := fn(&work); err != nil {
		return Session{}, err
	}
	work.ID = sess.ID
	work.CreatedAt = sess.CreatedAt
	work.LastSeen = s.now()
	*sess = work
	return sess.snapshot(), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops idle sessions and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
