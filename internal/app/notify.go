package app

// Notifier is the transient notification surface. Success and failure of
// every user-initiated mutation lands here; nothing propagates further.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user to approve a destructive action before the
// remote call is made.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }
