package app

import (
	"context"
	"strings"

	"github.com/ivanoskov/notes_app/internal/auth"
	"github.com/ivanoskov/notes_app/internal/model"
	"github.com/ivanoskov/notes_app/internal/repository"
)

// NoteEditor validates and saves a single note, creating or updating.
type NoteEditor struct {
	provider auth.Provider
	repo     repository.Repository
	notifier Notifier
}

// NoteInput is what the editor form submits.
type NoteInput struct {
	Title    string
	Content  string
	Category string
}

func NewNoteEditor(provider auth.Provider, repo repository.Repository, notifier Notifier) *NoteEditor {
	return &NoteEditor{
		provider: provider,
		repo:     repo,
		notifier: notifier,
	}
}

// Save creates a new note when existing is nil, otherwise updates it.
// Title and content must be non-empty after trimming and the owner
// identity is resolved fresh at save time; either check failing means no
// remote call. A non-nil return means nothing was saved and the caller
// should keep the editor open for retry.
func (e *NoteEditor) Save(ctx context.Context, existing *model.Note, in NoteInput) error {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		verr := &ValidationError{Msg: "Title and content are required"}
		e.notifier.Error(verr.Msg)
		return verr
	}

	user, err := e.provider.User(ctx)
	if err != nil || user == nil {
		e.notifier.Error("Not signed in")
		if err == nil {
			err = ErrNotSignedIn
		}
		return err
	}

	if existing != nil {
		changes := model.NoteChanges{
			Title:    title,
			Content:  content,
			Category: in.Category,
		}
		if err := e.repo.UpdateNote(ctx, existing.ID, changes); err != nil {
			e.notifier.Error("Failed to save note")
			return err
		}
		e.notifier.Success("Note updated")
		return nil
	}

	note := &model.Note{
		Title:    title,
		Content:  content,
		Category: in.Category,
		UserID:   user.ID,
	}
	if err := e.repo.CreateNote(ctx, note); err != nil {
		e.notifier.Error("Failed to save note")
		return err
	}
	e.notifier.Success("Note created")
	return nil
}
