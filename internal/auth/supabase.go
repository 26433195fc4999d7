package auth

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"github.com/ivanoskov/notes_app/internal/session"
)

// SupabaseProvider implements Provider over the GoTrue auth API.
type SupabaseProvider struct {
	client *supabase.Client
	store  *session.Store
}

func NewSupabaseProvider(url, anonKey string) (*SupabaseProvider, error) {
	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}

	return &SupabaseProvider{
		client: client,
		store:  session.NewStore(),
	}, nil
}

// Session returns the session held in memory. Nothing is persisted
// across process restarts, so a fresh provider starts signed out.
func (p *SupabaseProvider) Session(ctx context.Context) (*session.Session, error) {
	return p.store.Current(), nil
}

func (p *SupabaseProvider) Subscribe(fn func(*session.Session)) func() {
	return p.store.Subscribe(fn)
}

func (p *SupabaseProvider) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	tok, err := p.client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	sess := &session.Session{
		UserID:       tok.User.ID.String(),
		Email:        tok.User.Email,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	p.store.Set(sess)
	return sess, nil
}

func (p *SupabaseProvider) SignUp(ctx context.Context, email, password string) error {
	_, err := p.client.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	// No session yet: the address has to be verified first.
	return nil
}

// SignOut revokes the session remotely on a best-effort basis; the local
// session is cleared either way.
func (p *SupabaseProvider) SignOut(ctx context.Context) error {
	if sess := p.store.Current(); sess != nil {
		if err := p.client.Auth.WithToken(sess.AccessToken).Logout(); err != nil {
			log.Debugf("remote logout failed: %v", err)
		}
	}
	p.store.Set(nil)
	return nil
}

// User asks the auth API who the session belongs to. Looked up fresh at
// every save so a revoked session fails the save instead of writing rows.
func (p *SupabaseProvider) User(ctx context.Context) (*session.User, error) {
	sess := p.store.Current()
	if sess == nil {
		return nil, nil
	}

	resp, err := p.client.Auth.WithToken(sess.AccessToken).GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &session.User{ID: resp.ID.String(), Email: resp.Email}, nil
}
