package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/auth"
)

func TestAuthService_SignUpSignInRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	svc := services.NewAuthService(repo)

	created, err := svc.SignUp(ctx, services.SignUpInput{
		FirstName: "Juan",
		LastName:  "dela Cruz",
		Email:     "Juan@Example.com",
		Password:  "kusina-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", created.Email)
	assert.Equal(t, "user", created.Role)

	// Stored credential is a hash, never the plaintext.
	stored, err := repo.FindByEmail(ctx, "juan@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "kusina-secret", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "kusina-secret"))

	user, token, err := svc.SignIn(ctx, "juan@example.com", "kusina-secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestAuthService_SignIn_Failures(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	svc := services.NewAuthService(repo)

	_, err := svc.SignUp(ctx, services.SignUpInput{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@example.com",
		Password:  "another-secret",
	})
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, _, err = svc.SignIn(ctx, "maria@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	svc := services.NewAuthService(repo)

	in := services.SignUpInput{
		FirstName: "Jose",
		LastName:  "Rizal",
		Email:     "jose@example.com",
		Password:  "first-signup",
	}
	_, err := svc.SignUp(ctx, in)
	require.NoError(t, err)

	in.Password = "second-signup"
	_, err = svc.SignUp(ctx, in)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestUser_PasswordNeverSerialised(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	svc := services.NewAuthService(repo)

	_, err := svc.SignUp(ctx, services.SignUpInput{
		FirstName: "Andres",
		LastName:  "Bonifacio",
		Email:     "andres@example.com",
		Password:  "katipunan",
	})
	require.NoError(t, err)

	users, err := repo.All(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(users)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "katipunan")
}
