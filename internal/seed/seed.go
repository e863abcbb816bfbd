// Package seed creates demo accounts for local development.
package seed

import (
	"context"

	"lockbox/internal/models"
	"lockbox/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// Accounts registers n fake accounts through the normal signup path and
// returns the created records. Generated emails that happen to collide are
// skipped and regenerated.
func Accounts(ctx context.Context, accounts *service.AccountService, n int) ([]models.Account, error) {
	created := make([]models.Account, 0, n)
	for len(created) < n {
		account, err := accounts.Register(ctx, service.RegisterInput{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
			Password:  gofakeit.Password(true, true, true, false, false, 12),
		})
		if err != nil {
			if models.CodeOf(err) == models.CodeDuplicateEmail {
				continue
			}
			return created, err
		}
		created = append(created, *account)
	}
	return created, nil
}
