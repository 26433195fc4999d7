package app

import (
	"context"

	"github.com/ivanoskov/notes_app/internal/repository"
)

// NoteCard carries the one destructive action of a displayed note.
// Editing is the parent's job; the card only triggers it. The card never
// removes anything locally, so a delete that fails on the wire but lands
// server-side stays visible until the next full re-fetch.
type NoteCard struct {
	repo     repository.Repository
	notifier Notifier
	confirm  Confirmer
}

func NewNoteCard(repo repository.Repository, notifier Notifier, confirm Confirmer) *NoteCard {
	return &NoteCard{
		repo:     repo,
		notifier: notifier,
		confirm:  confirm,
	}
}

// Delete asks for confirmation, then deletes by id. The caller refreshes
// the note list on success; failure only notifies.
func (c *NoteCard) Delete(ctx context.Context, id string) error {
	if !c.confirm.Confirm("Delete this note?") {
		return nil
	}

	if err := c.repo.DeleteNote(ctx, id); err != nil {
		c.notifier.Error("Failed to delete note")
		return err
	}
	c.notifier.Success("Note deleted")
	return nil
}
