// Package session owns the process's current authenticated-identity state.
// One Manager exists per process; it is constructed explicitly and passed
// to consumers rather than living as a package global.
package session

import (
	"go.uber.org/zap"

	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/credstore"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// Session is the current authenticated identity, or the absence of one.
// Invariant: Identity is non-nil iff Tokens is non-nil and the access
// token decoded successfully.
type Session struct {
	Tokens   *domain.TokenPair
	Identity *auth.Claims
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.Identity != nil
}

// Manager composes the credential store and claims decoder into the
// login/logout lifecycle. All operations run on a single goroutine; the
// manager holds no locks.
type Manager struct {
	store   credstore.Store
	logger  *zap.Logger
	current Session
}

// NewManager builds a manager over the given store.
func NewManager(store credstore.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Initialize restores the session from any persisted token pair. Run once
// at startup. A persisted pair whose access token no longer decodes is
// cleared from the store; the session starts unauthenticated either way.
func (m *Manager) Initialize() {
	pair, ok := m.store.Load()
	if !ok {
		m.current = Session{}
		return
	}

	claims, err := auth.DecodeAccessToken(pair.Access)
	if err != nil {
		m.logger.Warn("stored tokens unusable, clearing", zap.Error(err))
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.Warn("failed to clear credential store", zap.Error(clearErr))
		}
		m.current = Session{}
		return
	}

	m.current = Session{Tokens: &pair, Identity: claims}
	m.logger.Debug("session restored",
		zap.String("email", claims.Email),
		zap.String("role", string(claims.Role)))
}

// Login accepts a freshly issued token pair. The access token is decoded
// before anything is persisted: a pair that does not decode indicates an
// issuer/client contract mismatch, so the pair is never written and the
// session reverts to unauthenticated.
func (m *Manager) Login(pair domain.TokenPair) error {
	claims, err := auth.DecodeAccessToken(pair.Access)
	if err != nil {
		m.current = Session{}
		return err
	}

	if err := m.store.Save(pair); err != nil {
		m.current = Session{}
		return err
	}

	m.current = Session{Tokens: &pair, Identity: claims}
	m.logger.Info("logged in",
		zap.String("email", claims.Email),
		zap.String("role", string(claims.Role)))
	return nil
}

// Logout clears the credential store and resets the session. Idempotent;
// always leaves the session unauthenticated.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("failed to clear credential store", zap.Error(err))
	}
	m.current = Session{}
}

// Current returns a snapshot of the live session. Callers treat it as
// read-only; state changes go through Login and Logout.
func (m *Manager) Current() Session {
	return m.current
}
