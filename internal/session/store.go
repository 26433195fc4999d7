package session

import "sync"

// Store holds the current session and notifies subscribers when it
// changes: one getter, one setter, subscribe/unsubscribe. There is no
// ambient global; the shell owns the store through its provider.
type Store struct {
	mu      sync.Mutex
	current *Session
	subs    map[int]func(*Session)
	nextID  int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(*Session))}
}

// Current returns the session held right now, nil when signed out.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the held session and notifies every subscriber.
// Subscribers run outside the lock, so they may call back into the store.
func (s *Store) Set(sess *Session) {
	s.mu.Lock()
	s.current = sess
	fns := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

// Subscribe registers fn for session changes and returns its unsubscribe
// func. Unsubscribing more than once is harmless.
func (s *Store) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
