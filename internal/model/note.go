package model

import "time"

// Note is a single user-owned row in the "notes" collection. The store
// assigns id and created_at on insert; user_id is set once at creation
// and never resent on update.
type Note struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UserID    string    `json:"user_id"`
}

// DisplayCategory returns the label shown for the note's category. An
// empty category reads as "Uncategorized".
func (n Note) DisplayCategory() string {
	if n.Category == "" {
		return "Uncategorized"
	}
	return n.Category
}

// NoteChanges is the update payload for an existing note. The owner
// identity is deliberately absent: it is immutable after creation.
type NoteChanges struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
