package app

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ivanoskov/notes_app/internal/auth"
	"github.com/ivanoskov/notes_app/internal/repository"
	"github.com/ivanoskov/notes_app/internal/session"
)

// State is what the shell currently shows.
type State int

const (
	StateLoading State = iota
	StateSignedOut
	StateSignedIn
)

// RepositoryFactory builds a data store bound to one session's token.
type RepositoryFactory func(sess *session.Session) (repository.Repository, error)

// Shell owns the only global state, the current session, and switches
// between the auth view and the notes view as it changes. The notes view
// and its children are rebuilt on every sign-in and dropped on sign-out.
type Shell struct {
	provider auth.Provider
	notifier Notifier
	confirm  Confirmer
	repos    RepositoryFactory

	mu         sync.Mutex
	loading    bool
	session    *session.Session
	authView   *AuthView
	notes      *NotesView
	editor     *NoteEditor
	categories *CategoryManager
	card       *NoteCard
	unsub      func()
}

func NewShell(provider auth.Provider, repos RepositoryFactory, notifier Notifier, confirm Confirmer) *Shell {
	return &Shell{
		provider: provider,
		notifier: notifier,
		confirm:  confirm,
		repos:    repos,
		loading:  true,
		authView: NewAuthView(provider, notifier),
	}
}

// Start resolves the current session once and subscribes to changes for
// the shell's lifetime. A failed lookup means signed out; there is no
// retry.
func (sh *Shell) Start(ctx context.Context) {
	sh.mu.Lock()
	if sh.unsub == nil {
		sh.unsub = sh.provider.Subscribe(sh.onSessionChange)
	}
	sh.mu.Unlock()

	sess, err := sh.provider.Session(ctx)
	if err != nil {
		log.Debugf("session lookup failed: %v", err)
		sess = nil
	}

	sh.mu.Lock()
	sh.loading = false
	sh.mu.Unlock()
	sh.setSession(ctx, sess)
}

// Close drops the session subscription.
func (sh *Shell) Close() {
	sh.mu.Lock()
	unsub := sh.unsub
	sh.unsub = nil
	sh.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// SignOut delegates to the session provider; the subscription handles
// the resulting transition.
func (sh *Shell) SignOut(ctx context.Context) error {
	return sh.provider.SignOut(ctx)
}

func (sh *Shell) State() State {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.loading {
		return StateLoading
	}
	if sh.session == nil {
		return StateSignedOut
	}
	return StateSignedIn
}

func (sh *Shell) Session() *session.Session {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.session
}

func (sh *Shell) Auth() *AuthView { return sh.authView }

// Notes returns the mounted notes view, nil while signed out.
func (sh *Shell) Notes() *NotesView {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.notes
}

func (sh *Shell) Editor() *NoteEditor {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.editor
}

func (sh *Shell) CategoryManager() *CategoryManager {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.categories
}

func (sh *Shell) Card() *NoteCard {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.card
}

// onSessionChange replaces the held session as-is; notifications are not
// re-validated.
func (sh *Shell) onSessionChange(sess *session.Session) {
	sh.setSession(context.Background(), sess)
}

func (sh *Shell) setSession(ctx context.Context, sess *session.Session) {
	sh.mu.Lock()
	mounted := sh.session != nil && sh.notes != nil
	sh.session = sess

	if sess == nil {
		sh.notes = nil
		sh.editor = nil
		sh.categories = nil
		sh.card = nil
		sh.mu.Unlock()
		return
	}
	if mounted {
		// Still signed in; the running view keeps its state.
		sh.mu.Unlock()
		return
	}

	repo, err := sh.repos(sess)
	if err != nil {
		sh.mu.Unlock()
		log.Errorf("repository setup failed: %v", err)
		sh.notifier.Error("Failed to connect to the data store")
		return
	}
	view := NewNotesView(repo)
	sh.notes = view
	sh.editor = NewNoteEditor(sh.provider, repo, sh.notifier)
	sh.categories = NewCategoryManager(sh.provider, repo, sh.notifier, sh.confirm)
	sh.card = NewNoteCard(repo, sh.notifier, sh.confirm)
	sh.mu.Unlock()

	// Mount fetch: one pair of list reads per sign-in.
	view.Load(ctx)
}
