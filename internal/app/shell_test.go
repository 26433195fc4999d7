package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/notes_app/internal/model"
	"github.com/ivanoskov/notes_app/internal/repository"
	"github.com/ivanoskov/notes_app/internal/session"
)

func newTestShell(provider *fakeProvider, repo *memRepo) *Shell {
	repos := func(sess *session.Session) (repository.Repository, error) {
		return repo, nil
	}
	return NewShell(provider, repos, &recorder{}, accept)
}

func TestShellStartsSignedOut(t *testing.T) {
	sh := newTestShell(newFakeProvider(), &memRepo{})

	sh.Start(context.Background())

	assert.Equal(t, StateSignedOut, sh.State())
	assert.Nil(t, sh.Notes())
	assert.NotNil(t, sh.Auth())
}

func TestShellTreatsLookupFailureAsSignedOut(t *testing.T) {
	provider := newFakeProvider()
	provider.sessionErr = errors.New("network down")
	sh := newTestShell(provider, &memRepo{})

	sh.Start(context.Background())

	assert.Equal(t, StateSignedOut, sh.State())
}

func TestShellStartsSignedInWithExistingSession(t *testing.T) {
	provider := newFakeProvider()
	provider.store.Set(&session.Session{UserID: "user-1", AccessToken: "token"})
	repo := &memRepo{notes: []model.Note{{ID: "n1", Title: "Groceries", Content: "Milk"}}}
	sh := newTestShell(provider, repo)

	sh.Start(context.Background())

	require.Equal(t, StateSignedIn, sh.State())
	require.NotNil(t, sh.Notes())
	assert.Len(t, sh.Notes().Notes(), 1)
}

func TestSignInMountsNotesViewWithOneFetchEach(t *testing.T) {
	provider := newFakeProvider()
	repo := seededRepo()
	sh := newTestShell(provider, repo)
	sh.Start(context.Background())
	require.Equal(t, StateSignedOut, sh.State())

	require.NoError(t, sh.Auth().Submit(context.Background(), "me@example.com", "hunter2"))

	// The subscription observed the session change and mounted the view.
	require.Equal(t, StateSignedIn, sh.State())
	require.NotNil(t, sh.Notes())
	assert.Equal(t, 1, repo.getNotesCalls)
	assert.Equal(t, 1, repo.getCategoriesCalls)
	assert.NotNil(t, sh.Editor())
	assert.NotNil(t, sh.CategoryManager())
	assert.NotNil(t, sh.Card())
}

func TestSignOutDropsNotesView(t *testing.T) {
	provider := newFakeProvider()
	sh := newTestShell(provider, seededRepo())
	sh.Start(context.Background())
	require.NoError(t, sh.Auth().Submit(context.Background(), "me@example.com", "hunter2"))
	require.Equal(t, StateSignedIn, sh.State())

	require.NoError(t, sh.SignOut(context.Background()))

	assert.Equal(t, StateSignedOut, sh.State())
	assert.Nil(t, sh.Notes())
	assert.Nil(t, sh.Editor())
}

func TestRepeatedSessionChangeKeepsMountedView(t *testing.T) {
	provider := newFakeProvider()
	repo := seededRepo()
	sh := newTestShell(provider, repo)
	sh.Start(context.Background())
	require.NoError(t, sh.Auth().Submit(context.Background(), "me@example.com", "hunter2"))

	// A token refresh replaces the session value but does not remount.
	provider.store.Set(&session.Session{UserID: "user-1", AccessToken: "token2"})

	assert.Equal(t, StateSignedIn, sh.State())
	assert.Equal(t, 1, repo.getNotesCalls)
}

func TestCloseUnsubscribes(t *testing.T) {
	provider := newFakeProvider()
	sh := newTestShell(provider, seededRepo())
	sh.Start(context.Background())
	sh.Close()

	provider.store.Set(&session.Session{UserID: "user-1", AccessToken: "token"})

	assert.Equal(t, StateSignedOut, sh.State())
	assert.Nil(t, sh.Notes())
}
