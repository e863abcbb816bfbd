// Package service implements the application's business logic over the
// key-value store: the account directory, the session holder, and the
// profile asset store.
package service

import (
	"context"

	"lockbox/internal/models"
	"lockbox/internal/store"
)

// AccountService manages the account directory: the ordered list of all
// registered accounts persisted as one whole JSON array. Every mutation is a
// read-modify-write of the full array.
type AccountService struct {
	store store.Store
}

// NewAccountService returns an AccountService over the given store.
func NewAccountService(s store.Store) *AccountService {
	return &AccountService{store: s}
}

// RegisterInput holds the signup form fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register appends a new account to the directory. The email must not match
// any existing account's email (exact comparison); identifiers are assigned
// as directory length + 1 and are never reclaimed.
//
// The password is persisted verbatim. See models.Account for the warning.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == in.Email {
			return nil, models.NewDuplicateEmailError()
		}
	}

	account := models.Account{
		ID:        len(accounts) + 1,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	}
	accounts = append(accounts, account)

	if err := s.save(ctx, accounts); err != nil {
		return nil, err
	}
	return &account, nil
}

// Authenticate scans the directory for an account matching both email and
// password exactly and returns the first match. Failures are generic: the
// caller learns nothing about which field was wrong.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email && accounts[i].Password == password {
			account := accounts[i]
			return &account, nil
		}
	}
	return nil, models.NewInvalidCredentialsError()
}

// GetByID returns the account with the given identifier.
func (s *AccountService) GetByID(ctx context.Context, id int) (*models.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			account := accounts[i]
			return &account, nil
		}
	}
	return nil, models.NewNotFoundError("Account", id)
}

// List returns every account in the directory in registration order.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	return s.load(ctx)
}

// SetImage attaches the image payload reference to the stored account record.
func (s *AccountService) SetImage(ctx context.Context, id int, payload string) error {
	return s.patchImage(ctx, id, payload)
}

// RemoveImage detaches the image payload reference from the stored account record.
func (s *AccountService) RemoveImage(ctx context.Context, id int) error {
	return s.patchImage(ctx, id, "")
}

func (s *AccountService) patchImage(ctx context.Context, id int, payload string) error {
	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].ProfileImage = payload
			return s.save(ctx, accounts)
		}
	}
	return models.NewNotFoundError("Account", id)
}

func (s *AccountService) load(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if _, err := store.GetJSON(ctx, s.store, store.KeyAccounts, &accounts); err != nil {
		return nil, models.NewInternalError(err)
	}
	return accounts, nil
}

func (s *AccountService) save(ctx context.Context, accounts []models.Account) error {
	if err := store.PutJSON(ctx, s.store, store.KeyAccounts, accounts); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
