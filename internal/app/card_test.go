package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/notes_app/internal/model"
)

func TestCardDeleteDeclinedMakesNoCall(t *testing.T) {
	repo := &memRepo{notes: []model.Note{{ID: "n1", Title: "Groceries", Content: "Milk"}}}
	notes := &recorder{}
	card := NewNoteCard(repo, notes, decline)

	require.NoError(t, card.Delete(context.Background(), "n1"))

	assert.Equal(t, 0, repo.mutationCount())
	stored, _ := repo.GetNotes(context.Background())
	assert.Len(t, stored, 1)
	assert.Empty(t, notes.successes)
	assert.Empty(t, notes.failures)
}

func TestCardDeleteConfirmed(t *testing.T) {
	repo := &memRepo{notes: []model.Note{{ID: "n1", Title: "Groceries", Content: "Milk"}}}
	notes := &recorder{}
	card := NewNoteCard(repo, notes, accept)

	require.NoError(t, card.Delete(context.Background(), "n1"))

	stored, _ := repo.GetNotes(context.Background())
	assert.Empty(t, stored)
	assert.Equal(t, []string{"Note deleted"}, notes.successes)
}

func TestCardDeleteFailureNotifiesOnly(t *testing.T) {
	repo := &memRepo{
		notes:       []model.Note{{ID: "n1", Title: "Groceries", Content: "Milk"}},
		mutationErr: errors.New("network down"),
	}
	notes := &recorder{}
	card := NewNoteCard(repo, notes, accept)

	require.Error(t, card.Delete(context.Background(), "n1"))

	// No local removal on failure; the row stays until a full re-fetch.
	repo.mutationErr = nil
	stored, _ := repo.GetNotes(context.Background())
	assert.Len(t, stored, 1)
	assert.Equal(t, []string{"Failed to delete note"}, notes.failures)
}
