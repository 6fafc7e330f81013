// Package services contains the console's application services: the session
// that owns the credential and the user collection synchronised with the
// directory API.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdeck/internal/client/client"
	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdeck/internal/logging"
)

// SessionService owns the credential lifecycle.
//
// Contract:
//   - Authenticate: log in remotely and keep the returned credential.
//   - CurrentCredential: read the credential, if any.
//   - ClearCredential: forget the credential; safe to call repeatedly.
//   - Restore: pick up a credential persisted by an earlier run.
type SessionService interface {
	Authenticate(ctx context.Context, identifier string, secret []byte) (models.Credential, error)
	CurrentCredential() (models.Credential, bool)
	ClearCredential(ctx context.Context) error
	Restore(ctx context.Context) (models.Credential, bool, error)
}

// Session is the SessionService backed by a remote Client and a credential
// store. It also serves as the client's TokenSource.
type Session struct {
	client client.Client
	store  session.Repository
	logger logging.Logger

	mu   sync.RWMutex
	cred models.Credential
}

func NewSessionService(c client.Client, store session.Repository, logger logging.Logger) *Session {
	return &Session{client: c, store: store, logger: logger.With("component", "session")}
}

// Authenticate sends identifier and secret to the login endpoint. The secret
// is not logged or retained. A failure to persist the credential is logged
// and does not fail the login.
func (s *Session) Authenticate(ctx context.Context, identifier string, secret []byte) (models.Credential, error) {
	token, err := s.client.Login(ctx, identifier, secret)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "identifier", identifier, "error", err)
		return models.Credential{}, &AuthError{Message: displayMessage(err, MsgLoginFailed), Err: err}
	}

	cred := models.Credential{Token: token, Identifier: identifier}

	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()

	if err := s.store.Save(ctx, cred); err != nil {
		s.logger.Warn(ctx, "session not persisted", "error", err)
	}

	s.logger.Info(ctx, "login succeeded", "identifier", identifier)
	return cred, nil
}

func (s *Session) CurrentCredential() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, !s.cred.IsZero()
}

// ClearCredential drops the in-memory credential first, so the session is
// logged out even when the store fails.
func (s *Session) ClearCredential(ctx context.Context) error {
	s.mu.Lock()
	s.cred = models.Credential{}
	s.mu.Unlock()

	return s.store.Clear(ctx)
}

func (s *Session) Restore(ctx context.Context) (models.Credential, bool, error) {
	cred, ok, err := s.store.Load(ctx)
	if err != nil {
		return models.Credential{}, false, err
	}
	if !ok || cred.IsZero() {
		return models.Credential{}, false, nil
	}

	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()

	s.logger.Info(ctx, "session restored", "identifier", cred.Identifier)
	return cred, true, nil
}

var (
	_ SessionService     = (*Session)(nil)
	_ client.TokenSource = (*Session)(nil)
)
