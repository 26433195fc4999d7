package session

// Session is an authenticated identity handle, valid until sign-out or
// expiry. The access token rides on every data call so the backend can
// scope rows to their owner.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

// User is the identity attached to rows at creation time.
type User struct {
	ID    string
	Email string
}
