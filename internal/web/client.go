package web

import (
	"context"
	"sync"

	"github.com/ivanoskov/notes_app/internal/app"
	"github.com/ivanoskov/notes_app/internal/auth"
)

// ProviderFactory builds a session provider for a new browser session.
type ProviderFactory func() (auth.Provider, error)

// client bundles everything one browser session runs: its own session
// provider, shell and flash queue. One client per browser, like one SPA
// instance per tab.
type client struct {
	provider auth.Provider
	shell    *app.Shell
	flash    *flashNotifier
}

type clientRegistry struct {
	mu        sync.Mutex
	clients   map[string]*client
	providers ProviderFactory
	repos     app.RepositoryFactory
}

func newClientRegistry(providers ProviderFactory, repos app.RepositoryFactory) *clientRegistry {
	return &clientRegistry{
		clients:   make(map[string]*client),
		providers: providers,
		repos:     repos,
	}
}

// get returns the client for the given browser id, creating and starting
// one when absent.
func (r *clientRegistry) get(id string) (*client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[id]; ok {
		return c, nil
	}

	provider, err := r.providers()
	if err != nil {
		return nil, err
	}
	flash := newFlashNotifier()
	// Browser confirm() already gated destructive posts, so the core's
	// confirmation hook always approves here.
	shell := app.NewShell(provider, r.repos, flash, app.ConfirmFunc(func(string) bool { return true }))
	shell.Start(context.Background())

	c := &client{provider: provider, shell: shell, flash: flash}
	r.clients[id] = c
	return c, nil
}

// drop tears the client down and forgets it.
func (r *clientRegistry) drop(id string) {
	r.mu.Lock()
	c, ok := r.clients[id]
	delete(r.clients, id)
	r.mu.Unlock()
	if ok {
		c.shell.Close()
	}
}
