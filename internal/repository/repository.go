package repository

import (
	"context"

	"github.com/ivanoskov/notes_app/internal/model"
)

// Repository is the data store contract. Every call runs under one
// session's identity and the backend's row-level security scopes it to
// that user's rows; no method takes or filters by an owner id.
type Repository interface {
	// Notes
	GetNotes(ctx context.Context) ([]model.Note, error)
	CreateNote(ctx context.Context, note *model.Note) error
	UpdateNote(ctx context.Context, id string, changes model.NoteChanges) error
	DeleteNote(ctx context.Context, id string) error

	// Categories
	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
}
