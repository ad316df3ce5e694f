// Package session owns authenticated principals for the lifetime of their
// sessions. State moves anonymous -> authenticated(principal, token) ->
// anonymous; the only way in is a successful gateway login, and logout
// clears everything session-scoped in one step.
package session

import (
	"context"
	"sync"

	"github.com/talentforge/skillboard/internal/adapters/gateway"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
	"github.com/talentforge/skillboard/pkg/logger"
	"github.com/talentforge/skillboard/pkg/metrics"
)

// Session is one authenticated principal and its opaque bearer token.
// It is passed explicitly to gateway calls instead of being read from
// ambient storage.
type Session struct {
	principal model.User
	token     string
}

// Token implements gateway.TokenSource.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// Principal returns the authenticated user.
func (s *Session) Principal() model.User { return s.principal }

// Role returns the principal's role.
func (s *Session) Role() role.Role { return s.principal.Role }

// Manager tracks live sessions keyed by token.
type Manager struct {
	mu        sync.RWMutex
	auth      gateway.Auth
	store     Store
	live      map[string]*Session
	restoring bool
	logger    logger.Logger
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithStore sets the session-scoped persistence backend.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLogger sets a custom logger for the manager.
func WithLogger(l logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a session manager that establishes identity through
// the given gateway.
func NewManager(auth gateway.Auth, opts ...Option) *Manager {
	m := &Manager{
		auth:  auth,
		store: NewMemoryStore(),
		live:  make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore reloads persisted sessions. Pending reports true while a restore
// is in flight so callers can distinguish "still loading" from anonymous.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	m.restoring = true
	m.mu.Unlock()

	records, err := m.store.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.restoring = false
	if err != nil {
		return err
	}
	for _, rec := range records {
		m.live[rec.Token] = &Session{principal: rec.Principal, token: rec.Token}
	}
	metrics.UpdateActiveSessions(len(m.live))
	return nil
}

// Pending reports whether a restore is still resolving.
func (m *Manager) Pending() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

// Login exchanges credentials for an authenticated session. This is the
// sole transition into the authenticated state.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s := &Session{principal: res.User.Redacted(), token: res.Token}

	m.mu.Lock()
	m.live[s.token] = s
	count := len(m.live)
	m.mu.Unlock()

	if err := m.store.Save(ctx, Record{Token: s.token, Principal: s.principal}); err != nil && m.logger != nil {
		m.logger.Warn(ctx, "session persist failed", logger.Error(err))
	}
	metrics.UpdateActiveSessions(count)
	return s, nil
}

// Lookup resolves a bearer token to its live session.
func (m *Manager) Lookup(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.live[token]
	return s, ok
}

// Logout tears down the session: the backend is notified best-effort, and
// principal plus token are cleared together regardless of the outcome.
func (m *Manager) Logout(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	if err := m.auth.Logout(ctx, s); err != nil && m.logger != nil {
		m.logger.Debug(ctx, "backend logout notification failed", logger.Error(err))
	}

	m.mu.Lock()
	delete(m.live, s.token)
	count := len(m.live)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, s.token); err != nil && m.logger != nil {
		m.logger.Warn(ctx, "session store cleanup failed", logger.Error(err))
	}
	metrics.UpdateActiveSessions(count)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.live)
}
