package service

import (
	"context"

	"lockbox/internal/models"
	"lockbox/internal/store"
)

// SessionService manages the single current-session record. Establish
// overwrites any prior session wholesale; Terminate deletes unconditionally.
type SessionService struct {
	store store.Store
}

// NewSessionService returns a SessionService over the given store.
func NewSessionService(s store.Store) *SessionService {
	return &SessionService{store: s}
}

// Establish writes a snapshot of the account as the current session,
// replacing any existing one. The password is never part of the snapshot.
func (s *SessionService) Establish(ctx context.Context, account *models.Account) error {
	snapshot := account.Snapshot()
	if err := store.PutJSON(ctx, s.store, store.KeySession, snapshot); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Current returns the stored session snapshot, or nil when no one is logged in.
func (s *SessionService) Current(ctx context.Context) (*models.Session, error) {
	var session models.Session
	ok, err := store.GetJSON(ctx, s.store, store.KeySession, &session)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, nil
	}
	return &session, nil
}

// Terminate deletes the session record. It succeeds even when no session exists.
func (s *SessionService) Terminate(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeySession); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateSnapshot merges the patch into the current session, preserving fields
// the patch does not set. Without a current session it is a no-op.
func (s *SessionService) UpdateSnapshot(ctx context.Context, patch models.SessionPatch) error {
	session, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	if patch.Email != nil {
		session.Email = *patch.Email
	}
	if patch.FirstName != nil {
		session.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		session.LastName = *patch.LastName
	}
	if patch.ProfileImage != nil {
		session.ProfileImage = *patch.ProfileImage
	}

	if err := store.PutJSON(ctx, s.store, store.KeySession, session); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
