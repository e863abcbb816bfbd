package service

import (
	"context"
	"fmt"
	"testing"

	"lockbox/internal/models"
	"lockbox/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService() *AccountService {
	return NewAccountService(store.NewMemory())
}

func registerInput(email, password string) RegisterInput {
	return RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  password,
	}
}

func TestAccountService_Register_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	const n = 5
	for i := 1; i <= n; i++ {
		account, err := svc.Register(ctx, registerInput(fmt.Sprintf("user%d@x.com", i), "pw"))
		require.NoError(t, err)
		assert.Equal(t, i, account.ID)
	}

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, n)
	for i, account := range accounts {
		assert.Equal(t, i+1, account.ID)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	_, err := svc.Register(ctx, registerInput("a@x.com", "p1"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("a@x.com", "other"))
	require.Error(t, err)
	assert.Equal(t, models.CodeDuplicateEmail, models.CodeOf(err))

	// Rejection leaves the directory unchanged.
	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountService_Register_EmailComparisonIsExact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	_, err := svc.Register(ctx, registerInput("a@x.com", "p1"))
	require.NoError(t, err)

	// Case differs, so this is a different email.
	account, err := svc.Register(ctx, registerInput("A@x.com", "p2"))
	require.NoError(t, err)
	assert.Equal(t, 2, account.ID)
}

func TestAccountService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	_, err := svc.Register(ctx, registerInput("a@x.com", "p1"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerInput("b@x.com", "p2"))
	require.NoError(t, err)

	t.Run("matches on exact email and password", func(t *testing.T) {
		account, err := svc.Authenticate(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.ID)
		assert.Equal(t, "a@x.com", account.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "a@x.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, models.CodeInvalidCredentials, models.CodeOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@x.com", "p1")
		require.Error(t, err)
		assert.Equal(t, models.CodeInvalidCredentials, models.CodeOf(err))
	})

	t.Run("failure message does not name the failing field", func(t *testing.T) {
		_, wrongPw := svc.Authenticate(ctx, "a@x.com", "wrong")
		_, wrongEmail := svc.Authenticate(ctx, "nobody@x.com", "p1")
		assert.Equal(t, wrongPw.Error(), wrongEmail.Error())
	})
}

func TestAccountService_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	created, err := svc.Register(ctx, registerInput("a@x.com", "p1"))
	require.NoError(t, err)

	account, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", account.Email)

	_, err = svc.GetByID(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestAccountService_SetAndRemoveImage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService()

	created, err := svc.Register(ctx, registerInput("a@x.com", "p1"))
	require.NoError(t, err)

	require.NoError(t, svc.SetImage(ctx, created.ID, "data:image/png;base64,AAAA"))
	account, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", account.ProfileImage)

	require.NoError(t, svc.RemoveImage(ctx, created.ID))
	account, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, account.ProfileImage)

	err = svc.SetImage(ctx, 99, "data:image/png;base64,AAAA")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}
