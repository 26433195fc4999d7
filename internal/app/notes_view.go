package app

import (
	"context"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ivanoskov/notes_app/internal/model"
	"github.com/ivanoskov/notes_app/internal/repository"
)

// NotesView owns the note and category lists plus the filter and modal
// state of the main screen. Every mutation performed by its children is
// followed by a full re-fetch of the affected list; there is no local
// patching.
type NotesView struct {
	mu   sync.Mutex
	repo repository.Repository

	notes      []model.Note
	categories []model.Category

	selectedCategory string
	searchQuery      string

	editingNote    *model.Note
	showEditor     bool
	showCategories bool
}

func NewNotesView(repo repository.Repository) *NotesView {
	return &NotesView{repo: repo}
}

// Load fetches both lists in parallel. Failure of one fetch does not
// block the other.
func (v *NotesView) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		v.RefreshNotes(ctx)
	}()
	go func() {
		defer wg.Done()
		v.RefreshCategories(ctx)
	}()
	wg.Wait()
}

// RefreshNotes re-fetches the full note list, newest first. A failed
// fetch yields an empty list; list reads never surface errors to the
// user, only mutations do.
func (v *NotesView) RefreshNotes(ctx context.Context) {
	notes, err := v.repo.GetNotes(ctx)
	if err != nil {
		log.Debugf("notes fetch failed: %v", err)
		notes = nil
	}
	v.mu.Lock()
	v.notes = notes
	v.mu.Unlock()
}

// RefreshCategories re-fetches the category list in store order, with
// the same swallow-on-failure behavior as RefreshNotes.
func (v *NotesView) RefreshCategories(ctx context.Context) {
	categories, err := v.repo.GetCategories(ctx)
	if err != nil {
		log.Debugf("categories fetch failed: %v", err)
		categories = nil
	}
	v.mu.Lock()
	v.categories = categories
	v.mu.Unlock()
}

// Filtered returns the notes passing both active filters: the category
// must match exactly (case-sensitive) and the search query must be a
// case-insensitive substring of the title or the content.
func (v *NotesView) Filtered() []model.Note {
	v.mu.Lock()
	defer v.mu.Unlock()

	q := strings.ToLower(v.searchQuery)
	var out []model.Note
	for _, n := range v.notes {
		if v.selectedCategory != "" && n.Category != v.selectedCategory {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Notes returns a copy of the loaded note list; callers cannot reach the
// view's backing state through it.
func (v *NotesView) Notes() []model.Note {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.notes == nil {
		return nil
	}
	out := make([]model.Note, len(v.notes))
	copy(out, v.notes)
	return out
}

// Categories returns a copy of the loaded category list.
func (v *NotesView) Categories() []model.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.categories == nil {
		return nil
	}
	out := make([]model.Category, len(v.categories))
	copy(out, v.categories)
	return out
}

// NoteByID returns the loaded note with the given id, nil when absent.
func (v *NotesView) NoteByID(id string) *model.Note {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.notes {
		if v.notes[i].ID == id {
			n := v.notes[i]
			return &n
		}
	}
	return nil
}

// SelectCategory sets the category filter; empty means all notes.
func (v *NotesView) SelectCategory(name string) {
	v.mu.Lock()
	v.selectedCategory = name
	v.mu.Unlock()
}

func (v *NotesView) SelectedCategory() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedCategory
}

func (v *NotesView) SetSearchQuery(q string) {
	v.mu.Lock()
	v.searchQuery = q
	v.mu.Unlock()
}

func (v *NotesView) SearchQuery() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.searchQuery
}

// OpenEditor shows the editor modal; a nil note means create mode.
func (v *NotesView) OpenEditor(note *model.Note) {
	v.mu.Lock()
	v.editingNote = note
	v.showEditor = true
	v.mu.Unlock()
}

func (v *NotesView) CloseEditor() {
	v.mu.Lock()
	v.editingNote = nil
	v.showEditor = false
	v.mu.Unlock()
}

func (v *NotesView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showEditor
}

// EditingNote returns the note being edited, nil in create mode.
func (v *NotesView) EditingNote() *model.Note {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editingNote
}

func (v *NotesView) OpenCategories() {
	v.mu.Lock()
	v.showCategories = true
	v.mu.Unlock()
}

func (v *NotesView) CloseCategories() {
	v.mu.Lock()
	v.showCategories = false
	v.mu.Unlock()
}

func (v *NotesView) CategoriesOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showCategories
}
