package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hogarfix/storefront-api/internal/models"
)

var ErrNotFound = errors.New("cart: session not found")

// Store holds the ephemeral checkout sessions. Carts live only for the
// duration of the flow and are never persisted.
type Store interface {
	Create(ctx context.Context, cart *models.Cart) error
	Get(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	Update(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*models.Cart
}

func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[uuid.UUID]*models.Cart)}
}

func (s *memoryStore) Create(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.ID] = clone(cart)

	return nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Callers mutate the returned cart before calling Update.
	return clone(cart), nil
}

func (s *memoryStore) Update(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[cart.ID]; !ok {
		return ErrNotFound
	}

	s.carts[cart.ID] = clone(cart)

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)

	return nil
}

func clone(cart *models.Cart) *models.Cart {
	copied := *cart
	copied.Items = make(map[string]models.CartItem, len(cart.Items))

	for id, item := range cart.Items {
		copied.Items[id] = item
	}

	return &copied
}
