package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/pkg/auth"
)

// AuthService signs accounts up and in. Passwords are bcrypt-hashed before
// they touch the repository and never leave it in any readable form.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// SignUpInput carries the fields of a registration request.
type SignUpInput struct {
	FirstName  string `json:"firstname"  validate:"required"`
	LastName   string `json:"lastname"   validate:"required"`
	MiddleName string `json:"middlename"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
}

// SignUp registers a new account with the "user" role.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	user := models.User{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Password:   hash,
		Role:       "user",
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

// SignIn checks the credentials and returns the account with a fresh JWT.
// The two failure modes stay distinct so the client can tell an unknown
// address from a wrong password.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, "", fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", fmt.Errorf("%w: invalid password", ErrUnauthorized)
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, token, nil
}
