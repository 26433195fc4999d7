package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/ivanoskov/notes_app/internal/model"
)

// noteInsert is the insert payload. id and created_at are absent so the
// store assigns them; a marshaled zero created_at would override the
// column default and the row would sort as the oldest note.
type noteInsert struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	UserID   string `json:"user_id"`
}

// SupabaseRepository talks to PostgREST under a single session's access
// token. The anon key stays the api key; the bearer token decides which
// rows row-level security lets through.
type SupabaseRepository struct {
	client *supabase.Client
}

// NewSupabaseRepository builds a repository bound to one session.
func NewSupabaseRepository(url, anonKey, accessToken string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + accessToken,
		},
	})
	if err != nil {
		return nil, err
	}

	return &SupabaseRepository{client: client}, nil
}

// GetNotes returns the full note list, newest first.
func (r *SupabaseRepository) GetNotes(ctx context.Context) ([]model.Note, error) {
	data, _, err := r.client.From("notes").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to parse notes: %w", err)
	}
	return notes, nil
}

// CreateNote inserts the note and backfills the id and created_at the
// store assigned.
func (r *SupabaseRepository) CreateNote(ctx context.Context, note *model.Note) error {
	payload := noteInsert{
		Title:    note.Title,
		Content:  note.Content,
		Category: note.Category,
		UserID:   note.UserID,
	}
	data, _, err := r.client.From("notes").Insert(payload, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	var created []model.Note
	if len(data) > 0 {
		if err := json.Unmarshal(data, &created); err != nil {
			return fmt.Errorf("failed to parse created note: %w", err)
		}
	}
	if len(created) > 0 {
		note.ID = created[0].ID
		note.CreatedAt = created[0].CreatedAt
	}
	return nil
}

// UpdateNote rewrites title, content and category of the row. The owner
// column is never part of the payload.
func (r *SupabaseRepository) UpdateNote(ctx context.Context, id string, changes model.NoteChanges) error {
	_, _, err := r.client.From("notes").
		Update(changes, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) DeleteNote(ctx context.Context, id string) error {
	_, _, err := r.client.From("notes").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// GetCategories returns the category list in store-default order.
func (r *SupabaseRepository) GetCategories(ctx context.Context) ([]model.Category, error) {
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}
	return categories, nil
}

func (r *SupabaseRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	data, _, err := r.client.From("categories").Insert(category, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	var created []model.Category
	if len(data) > 0 {
		if err := json.Unmarshal(data, &created); err != nil {
			return fmt.Errorf("failed to parse created category: %w", err)
		}
	}
	if len(created) > 0 {
		category.ID = created[0].ID
	}
	return nil
}

func (r *SupabaseRepository) DeleteCategory(ctx context.Context, id string) error {
	_, _, err := r.client.From("categories").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
