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

// UserService is the back-office account CRUD.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return users, nil
}

// UserInput carries the fields an admin supplies when creating or
// updating an account. On update, an empty Password leaves the stored
// hash untouched.
type UserInput struct {
	FirstName  string `json:"firstname"  validate:"required"`
	LastName   string `json:"lastname"   validate:"required"`
	MiddleName string `json:"middlename"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// Add creates an account on behalf of an admin.
func (s *UserService) Add(ctx context.Context, in UserInput) (models.User, error) {
	if in.Password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	role := in.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Password:   hash,
		Role:       role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

// Update rewrites an account's profile fields and, when a new password is
// supplied, its credential.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.MiddleName = in.MiddleName
	user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, &user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
