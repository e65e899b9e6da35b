package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/auth"
)

func TestUserService_AddListDelete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	svc := services.NewUserService(repo)

	created, err := svc.Add(ctx, services.UserInput{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "Maria@Example.com",
		Password:  "staff-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", created.Email)
	// Role defaults to "user" when the admin leaves it blank.
	assert.Equal(t, "user", created.Role)
	assert.True(t, auth.CheckPassword(created.Password, "staff-secret"))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))
	users, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_Add_RequiresPassword(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(repositories.NewMemoryUserRepository())

	_, err := svc.Add(ctx, services.UserInput{
		FirstName: "Pedro",
		LastName:  "Penduko",
		Email:     "pedro@example.com",
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestUserService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(repositories.NewMemoryUserRepository())

	created, err := svc.Add(ctx, services.UserInput{
		FirstName: "Jose",
		LastName:  "Rizal",
		Email:     "jose@example.com",
		Password:  "original-secret",
		Role:      "admin",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), services.UserInput{
		FirstName: "Jose P.",
		LastName:  "Rizal",
		Email:     "jose@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jose P.", updated.FirstName)
	// Blank password and role leave the credential and role untouched.
	assert.Equal(t, created.Password, updated.Password)
	assert.Equal(t, "admin", updated.Role)
	assert.True(t, auth.CheckPassword(updated.Password, "original-secret"))
}

func TestUserService_Update_NewPasswordRehashed(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(repositories.NewMemoryUserRepository())

	created, err := svc.Add(ctx, services.UserInput{
		FirstName: "Gabriela",
		LastName:  "Silang",
		Email:     "gabriela@example.com",
		Password:  "old-secret",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), services.UserInput{
		FirstName: "Gabriela",
		LastName:  "Silang",
		Email:     "gabriela@example.com",
		Password:  "new-secret",
		Role:      "admin",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.Password, updated.Password)
	assert.True(t, auth.CheckPassword(updated.Password, "new-secret"))
	assert.Equal(t, "admin", updated.Role)
}

func TestUserService_MissingUser(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(repositories.NewMemoryUserRepository())
	ghost := "65b000000000000000000000"

	_, err := svc.Update(ctx, ghost, services.UserInput{
		FirstName: "Ghost",
		LastName:  "User",
		Email:     "ghost@example.com",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Delete(ctx, ghost)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
