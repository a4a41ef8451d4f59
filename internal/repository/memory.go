package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/models"
)

// In-memory implementations of the repository interfaces. They back the unit
// tests and let the cart, checkout and notification logic run without Postgres.

// MemoryProducts is an in-memory ProductReader.
type MemoryProducts struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{}
}

// Add stores a product, assigning an ID when missing.
func (r *MemoryProducts) Add(product models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, product)
	return product
}

func (r *MemoryProducts) List(_ context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Trending != nil && p.Trending != *filter.Trending {
			continue
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) &&
				!strings.Contains(strings.ToLower(p.Description), strings.ToLower(search)) {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryProducts) ByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryOffers is an in-memory OfferReader.
type MemoryOffers struct {
	mu     sync.RWMutex
	offers map[string]models.Offer
}

func NewMemoryOffers() *MemoryOffers {
	return &MemoryOffers{offers: make(map[string]models.Offer)}
}

func (r *MemoryOffers) Add(offer models.Offer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	r.offers[offer.CouponCode] = offer
}

func (r *MemoryOffers) ByCode(_ context.Context, code string) (*models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offer, ok := r.offers[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &offer, nil
}

// MemoryOrders is an in-memory OrderWriter that records every created order.
type MemoryOrders struct {
	mu     sync.Mutex
	orders []models.Order

	// FailNext makes the next Create return the given error, for exercising
	// write-failure paths.
	FailNext error
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{}
}

func (r *MemoryOrders) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailNext != nil {
		err := r.FailNext
		r.FailNext = nil
		return err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// Orders returns a copy of everything written so far.
func (r *MemoryOrders) Orders() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// MemoryNotifications is an in-memory NotificationRepository. Transact stages
// writes against a copy of the flag set and commits only when fn succeeds, so
// the all-or-nothing contract holds here too.
type MemoryNotifications struct {
	mu     sync.Mutex
	active map[uuid.UUID]bool
}

func NewMemoryNotifications() *MemoryNotifications {
	return &MemoryNotifications{active: make(map[uuid.UUID]bool)}
}

// Add registers a notification with the given flag and returns its ID.
func (r *MemoryNotifications) Add(active bool) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.active[id] = active
	return id
}

func (r *MemoryNotifications) Transact(ctx context.Context, fn func(NotificationRepository) error) error {
	r.mu.Lock()
	staged := make(map[uuid.UUID]bool, len(r.active))
	for id, active := range r.active {
		staged[id] = active
	}
	r.mu.Unlock()

	stagedRepo := &MemoryNotifications{active: staged}
	if err := fn(stagedRepo); err != nil {
		return err
	}

	r.mu.Lock()
	r.active = stagedRepo.active
	r.mu.Unlock()
	return nil
}

func (r *MemoryNotifications) ActiveIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for id, active := range r.active {
		if active {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *MemoryNotifications) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[id]; !ok {
		return ErrNotFound
	}
	r.active[id] = active
	return nil
}

// MemoryAdminList is an in-memory AdminList.
type MemoryAdminList struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

func NewMemoryAdminList(emails ...string) *MemoryAdminList {
	list := &MemoryAdminList{emails: make(map[string]struct{})}
	for _, email := range emails {
		list.emails[strings.ToLower(email)] = struct{}{}
	}
	return list
}

func (r *MemoryAdminList) Contains(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.emails[strings.ToLower(email)]
	return ok, nil
}
