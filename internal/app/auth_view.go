package app

import (
	"context"
	"sync"

	"github.com/ivanoskov/notes_app/internal/auth"
)

// AuthView is the sign-in / sign-up form. The mode flag defaults to
// sign-in; a busy flag drops duplicate submissions while a call is in
// flight.
type AuthView struct {
	provider auth.Provider
	notifier Notifier

	mu     sync.Mutex
	signUp bool
	busy   bool
}

func NewAuthView(provider auth.Provider, notifier Notifier) *AuthView {
	return &AuthView{
		provider: provider,
		notifier: notifier,
	}
}

// SignUpMode reports whether the form is in sign-up mode.
func (v *AuthView) SignUpMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.signUp
}

func (v *AuthView) SetSignUpMode(signUp bool) {
	v.mu.Lock()
	v.signUp = signUp
	v.mu.Unlock()
}

func (v *AuthView) ToggleMode() {
	v.mu.Lock()
	v.signUp = !v.signUp
	v.mu.Unlock()
}

func (v *AuthView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// Submit issues the sign-in or sign-up call for the current mode. While
// a submission is in flight further submits return immediately, the form
// equivalent of a disabled button. All failures surface through the
// notifier with the underlying message and leave the form in place.
func (v *AuthView) Submit(ctx context.Context, email, password string) error {
	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return nil
	}
	v.busy = true
	signUp := v.signUp
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.busy = false
		v.mu.Unlock()
	}()

	if signUp {
		if err := v.provider.SignUp(ctx, email, password); err != nil {
			v.notifier.Error(err.Error())
			return err
		}
		// The account still needs email verification, so no transition.
		v.notifier.Success("Check your email for verification link")
		return nil
	}

	if _, err := v.provider.SignIn(ctx, email, password); err != nil {
		v.notifier.Error(err.Error())
		return err
	}
	// No explicit transition on success: the shell's subscription
	// observes the new session and switches views.
	return nil
}
