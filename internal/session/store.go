// Package session owns the client-side session: who is logged in and
// which league/team context is active. The Store is the single writer;
// everything else reads it or asks it to mutate.
package session

import (
	"github.com/rs/zerolog"

	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

// Adapter persists the session between runs. Load reports a zero
// session when nothing usable is stored; it only errors on genuinely
// broken storage, and even then the Store degrades to anonymous.
type Adapter interface {
	Load() (domain.Session, error)
	Save(domain.Session) error
}

// Store is the single source of truth for the current session. It is
// not safe for concurrent use; the TUI event loop is its only caller.
type Store struct {
	adapter Adapter
	current domain.Session
	subs    []func(domain.Session)
	log     zerolog.Logger
}

// NewStore loads the persisted session through adapter. Unreadable or
// corrupt storage yields an anonymous session, never an error.
func NewStore(adapter Adapter, log zerolog.Logger) *Store {
	s := &Store{adapter: adapter, log: log}
	loaded, err := adapter.Load()
	if err != nil {
		log.Warn().Err(err).Msg("session load failed, starting anonymous")
		return s
	}
	s.current = loaded
	return s
}

// Current returns a copy of the session.
func (s *Store) Current() domain.Session {
	return s.current
}

// IsAuthenticated reports whether a credential is held.
func (s *Store) IsAuthenticated() bool {
	return s.current.IsAuthenticated()
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	return s.current.SessionToken
}

// SetAuth replaces the session wholesale with the given bundle and
// writes it through to storage.
func (s *Store) SetAuth(bundle domain.Session) {
	s.current = bundle
	s.persist()
}

// ClearAuth resets every field and writes through. Idempotent.
func (s *Store) ClearAuth() {
	s.current = domain.Session{}
	s.persist()
}

// SetActiveContext switches the active league/team. Identity fields are
// never touched.
func (s *Store) SetActiveContext(leagueID, teamID string) {
	s.current = s.current.WithActiveContext(leagueID, teamID)
	s.persist()
}

// ClearActiveContext drops the league/team selection while keeping the
// user logged in. Called when the active league is deleted or left.
func (s *Store) ClearActiveContext() {
	s.current = s.current.WithoutActiveContext()
	s.persist()
}

// Subscribe registers fn to run after every mutation.
func (s *Store) Subscribe(fn func(domain.Session)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) persist() {
	if err := s.adapter.Save(s.current); err != nil {
		// In-memory state stays authoritative; a failed write must
		// never crash the caller.
		s.log.Warn().Err(err).Msg("session save failed")
	}
	for _, fn := range s.subs {
		fn(s.current)
	}
}
