package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ivanoskov/notes_app/internal/model"
	"github.com/ivanoskov/notes_app/internal/session"
)

// memRepo is an in-memory stand-in for the remote data store.
type memRepo struct {
	mu         sync.Mutex
	seq        int
	notes      []model.Note
	categories []model.Category

	notesErr      error
	categoriesErr error
	mutationErr   error

	getNotesCalls      int
	getCategoriesCalls int
	mutations          int
}

func (r *memRepo) GetNotes(ctx context.Context) ([]model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getNotesCalls++
	if r.notesErr != nil {
		return nil, r.notesErr
	}
	out := make([]model.Note, len(r.notes))
	copy(out, r.notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations++
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.seq++
	note.ID = uuid.New().String()
	note.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second)
	r.notes = append(r.notes, *note)
	return nil
}

func (r *memRepo) UpdateNote(ctx context.Context, id string, changes model.NoteChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations++
	if r.mutationErr != nil {
		return r.mutationErr
	}
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes[i].Title = changes.Title
			r.notes[i].Content = changes.Content
			r.notes[i].Category = changes.Category
			return nil
		}
	}
	return errors.New("row not found")
}

func (r *memRepo) DeleteNote(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations++
	if r.mutationErr != nil {
		return r.mutationErr
	}
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("row not found")
}

func (r *memRepo) GetCategories(ctx context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCategoriesCalls++
	if r.categoriesErr != nil {
		return nil, r.categoriesErr
	}
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations++
	if r.mutationErr != nil {
		return r.mutationErr
	}
	category.ID = uuid.New().String()
	r.categories = append(r.categories, *category)
	return nil
}

func (r *memRepo) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations++
	if r.mutationErr != nil {
		return r.mutationErr
	}
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return errors.New("row not found")
}

func (r *memRepo) mutationCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations
}

// fakeProvider is a scriptable session provider backed by a real store,
// so subscription behavior matches production.
type fakeProvider struct {
	store *session.Store

	user       *session.User
	sessionErr error
	signInErr  error
	signUpErr  error
	userErr    error

	// When set, SignIn signals signInStarted and then blocks until
	// signInRelease is closed.
	signInStarted chan struct{}
	signInRelease chan struct{}

	mu          sync.Mutex
	signInCalls int
	signUpCalls int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{store: session.NewStore()}
}

func (p *fakeProvider) Session(ctx context.Context) (*session.Session, error) {
	if p.sessionErr != nil {
		return nil, p.sessionErr
	}
	return p.store.Current(), nil
}

func (p *fakeProvider) Subscribe(fn func(*session.Session)) func() {
	return p.store.Subscribe(fn)
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	p.mu.Lock()
	p.signInCalls++
	p.mu.Unlock()
	if p.signInStarted != nil {
		p.signInStarted <- struct{}{}
	}
	if p.signInRelease != nil {
		<-p.signInRelease
	}
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	sess := &session.Session{UserID: "user-1", Email: email, AccessToken: "token"}
	if p.user == nil {
		p.user = &session.User{ID: "user-1", Email: email}
	}
	p.store.Set(sess)
	return sess, nil
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string) error {
	p.mu.Lock()
	p.signUpCalls++
	p.mu.Unlock()
	return p.signUpErr
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.store.Set(nil)
	return nil
}

func (p *fakeProvider) User(ctx context.Context) (*session.User, error) {
	if p.userErr != nil {
		return nil, p.userErr
	}
	return p.user, nil
}

// recorder captures notifications for assertions.
type recorder struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (r *recorder) Success(msg string) {
	r.mu.Lock()
	r.successes = append(r.successes, msg)
	r.mu.Unlock()
}

func (r *recorder) Error(msg string) {
	r.mu.Lock()
	r.failures = append(r.failures, msg)
	r.mu.Unlock()
}

var (
	accept  = ConfirmFunc(func(string) bool { return true })
	decline = ConfirmFunc(func(string) bool { return false })
)
