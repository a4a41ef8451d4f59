package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps the live carts, keyed by an opaque token handed to the client on
// first touch. Carts are memory-only: they vanish on restart and are dropped
// at checkout.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for token, if one exists.
func (s *Store) Get(token string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[token]
	return c, ok
}

// GetOrCreate returns the cart for token, creating one under a fresh token
// when the given token is empty or unknown. The returned token is always the
// one the cart lives under.
func (s *Store) GetOrCreate(token string) (*Cart, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if c, ok := s.carts[token]; ok {
			return c, token
		}
	}

	token = uuid.NewString()
	c := New()
	s.carts[token] = c
	return c, token
}

// Drop removes the cart for token.
func (s *Store) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}
