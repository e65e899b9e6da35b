package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
)

// EntryService is the record book. Entries are addressed by email.
type EntryService struct {
	entries repositories.EntryRepository
}

func NewEntryService(entries repositories.EntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

// EntryInput carries the fields of a record book entry.
type EntryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Add stores a new entry.
func (s *EntryService) Add(ctx context.Context, in EntryInput) (models.Entry, error) {
	entry := models.Entry{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.entries.Create(ctx, &entry); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entry, nil
}

// List returns every entry.
func (s *EntryService) List(ctx context.Context) ([]models.Entry, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entries, nil
}

// Edit overwrites the entry registered under the input's email.
func (s *EntryService) Edit(ctx context.Context, in EntryInput) (models.Entry, error) {
	entry, err := s.entries.FindByEmail(ctx, in.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Entry{}, fmt.Errorf("%w: entry for %s", ErrNotFound, in.Email)
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	entry.Name = in.Name
	entry.Phone = in.Phone
	entry.Message = in.Message

	if err := s.entries.Update(ctx, &entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Entry{}, fmt.Errorf("%w: entry for %s", ErrNotFound, in.Email)
		}
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entry, nil
}

// Delete removes the entry registered under email.
func (s *EntryService) Delete(ctx context.Context, email string) error {
	err := s.entries.DeleteByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: entry for %s", ErrNotFound, email)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
