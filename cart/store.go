package cart

import "sync"

// Store holds one cart per session. Carts live in memory only and are kept
// across logout; they disappear when the process restarts.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}
