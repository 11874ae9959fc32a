package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/records"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

type SessionState int

const (
	// SessionInit: the persisted record has not been read yet.
	SessionInit SessionState = iota
	SessionActive
	SessionCleared
)

func (s SessionState) String() string {
	switch s {
	case SessionInit:
		return "init"
	case SessionActive:
		return "active"
	case SessionCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Session is the single "current user" slot. It is read from the store once
// and cached; writes go to the store first.
type Session struct {
	mu     sync.Mutex
	store  kv.Store
	log    logging.Logger
	loaded bool
	user   *models.User
}

func NewSession(store kv.Store, log logging.Logger) *Session {
	return &Session{store: store, log: log}
}

// Current returns a copy of the signed-in user, or nil.
func (s *Session) Current(ctx context.Context) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.loaded:
		return SessionInit
	case s.user != nil:
		return SessionActive
	default:
		return SessionCleared
	}
}

// Start persists u as the current user and activates the session.
func (s *Session) Start(ctx context.Context, u models.User) error {
	return s.commit(u, func() error {
		return save(ctx, s.store, records.KeyCurrentUser, records.EncodeSession, u)
	})
}

// Clear removes the persisted session. Calling it without a session is a no-op.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, records.KeyCurrentUser); err != nil {
		return err
	}
	s.user = nil
	s.loaded = true
	return nil
}

// commit runs persist and, if it succeeds, activates u. Both happen under
// s.mu so a concurrent Clear cannot interleave.
func (s *Session) commit(u models.User, persist func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := persist(); err != nil {
		return err
	}
	s.user = &u
	s.loaded = true
	return nil
}

func (s *Session) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	u := load(ctx, s.store, s.log, records.KeyCurrentUser, func(raw string) (*models.User, error) {
		u, err := records.DecodeSession(raw)
		if err != nil {
			return nil, err
		}
		return &u, nil
	}, nil)
	s.user = u
	s.loaded = true
}
