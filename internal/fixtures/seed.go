package fixtures

import (
	"context"
	"testing"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	categoryrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	userrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"github.com/stretchr/testify/require"
)

// SeededUser is a user created by SeedUser along with its default categories
// keyed by name.
type SeededUser struct {
	ID         int64
	Categories map[string]int64
}

// SeedUser stores a user with the default categories, bypassing password
// hashing.
func SeedUser(t *testing.T, uow repository.UnitOfWork, fullName, email string) SeededUser {
	t.Helper()
	ctx := context.Background()
	seeded := SeededUser{Categories: map[string]int64{}}

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		seeded.ID, err = users.Create(ctx, &dto.UserCreate{FullName: fullName, Email: email, PasswordHash: "unused"})
		if err != nil {
			return err
		}

		categories, err := repository.Get[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		var creates []dto.CategoryCreate
		for _, c := range category.Defaults(seeded.ID) {
			creates = append(creates, dto.CategoryCreate{UserID: c.UserID, Name: c.Name, Type: c.Type, IsDefault: c.IsDefault})
		}
		if err := categories.CreateBatch(ctx, creates); err != nil {
			return err
		}
		cats, err := categories.ListByUser(ctx, seeded.ID)
		if err != nil {
			return err
		}
		for _, c := range cats {
			seeded.Categories[c.Name] = c.ID
		}
		return nil
	})
	require.NoError(t, err)
	return seeded
}
