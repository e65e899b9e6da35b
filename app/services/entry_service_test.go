package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
)

func TestEntryService_AddEditDelete(t *testing.T) {
	ctx := context.Background()
	svc := services.NewEntryService(repositories.NewMemoryEntryRepository())

	added, err := svc.Add(ctx, services.EntryInput{
		Name:    "Ligaya Reyes",
		Email:   "ligaya@example.com",
		Phone:   "09171234567",
		Message: "table for four on friday",
	})
	require.NoError(t, err)
	assert.False(t, added.ID.IsZero())

	edited, err := svc.Edit(ctx, services.EntryInput{
		Name:    "Ligaya Reyes",
		Email:   "ligaya@example.com",
		Phone:   "09987654321",
		Message: "make that six",
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, edited.ID)
	assert.Equal(t, "make that six", edited.Message)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "09987654321", entries[0].Phone)

	require.NoError(t, svc.Delete(ctx, "ligaya@example.com"))

	entries, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryService_MissingEntry(t *testing.T) {
	ctx := context.Background()
	svc := services.NewEntryService(repositories.NewMemoryEntryRepository())

	_, err := svc.Edit(ctx, services.EntryInput{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Delete(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
