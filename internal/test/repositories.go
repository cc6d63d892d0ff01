package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (r *UserRepositoryStub) Create(_ context.Context, login, passwordHash string, email *string, initialBalance int64) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if _, ok := r.Users[login]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	u := &model.User{ID: r.Next, Login: login, Email: email, PasswordHash: passwordHash, Balance: initialBalance}
	r.Users[login] = u
	r.ByID[u.ID] = u
	r.Next++
	return u, nil
}

// GetByLogin returns user by login or ErrNotFound.
func (r *UserRepositoryStub) GetByLogin(_ context.Context, login string) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.Users[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

// GetByID returns user by identifier or ErrNotFound.
func (r *UserRepositoryStub) GetByID(_ context.Context, id int64) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

// Deposit increases the stored balance.
func (r *UserRepositoryStub) Deposit(_ context.Context, id int64, amount int64) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	u, ok := r.ByID[id]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	u.Balance += amount
	return u.Balance, nil
}

// RestaurantRepositoryStub keeps restaurants in memory. Menu is consulted by
// SearchCandidates when set.
type RestaurantRepositoryStub struct {
	Items map[int64]*model.Restaurant
	Menu  *MenuRepositoryStub
	Next  int64
	Err   error

	SearchCandidatesFn func(context.Context) ([]model.SearchCandidate, error)
}

// NewRestaurantRepositoryStub constructs an empty restaurant repository.
func NewRestaurantRepositoryStub() *RestaurantRepositoryStub {
	return &RestaurantRepositoryStub{Items: make(map[int64]*model.Restaurant), Next: 1}
}

// Create stores a restaurant unless the name is taken.
func (r *RestaurantRepositoryStub) Create(_ context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, existing := range r.Items {
		if existing.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	now := time.Now()
	rest := &model.Restaurant{ID: r.Next, OwnerID: ownerID, Name: name, OpeningHours: openingHours, CreatedAt: now, UpdatedAt: now}
	r.Items[rest.ID] = rest
	r.Next++
	return cloneRestaurant(rest), nil
}

// GetByID returns a copy of the stored restaurant.
func (r *RestaurantRepositoryStub) GetByID(_ context.Context, id int64) (*model.Restaurant, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	rest, ok := r.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneRestaurant(rest), nil
}

// Update applies the non-nil fields.
func (r *RestaurantRepositoryStub) Update(_ context.Context, id int64, update model.RestaurantUpdate) (*model.Restaurant, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	rest, ok := r.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Name != nil {
		for _, existing := range r.Items {
			if existing.ID != id && existing.Name == *update.Name {
				return nil, domainErrors.ErrAlreadyExists
			}
		}
		rest.Name = *update.Name
	}
	if update.OpeningHours != nil {
		rest.OpeningHours = *update.OpeningHours
	}
	rest.UpdatedAt = time.Now()
	return cloneRestaurant(rest), nil
}

// Delete removes the restaurant and, when linked, its menu.
func (r *RestaurantRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Items, id)
	if r.Menu != nil {
		for itemID, item := range r.Menu.Items {
			if item.RestaurantID == id {
				delete(r.Menu.Items, itemID)
			}
		}
	}
	return nil
}

// ListByOwner returns the owner's restaurants ordered by id.
func (r *RestaurantRepositoryStub) ListByOwner(_ context.Context, ownerID int64) ([]model.Restaurant, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.Restaurant
	for _, rest := range r.sorted() {
		if rest.OwnerID == ownerID {
			result = append(result, rest)
		}
	}
	return result, nil
}

// SearchCandidates joins restaurants with the linked menu.
func (r *RestaurantRepositoryStub) SearchCandidates(ctx context.Context) ([]model.SearchCandidate, error) {
	if r.SearchCandidatesFn != nil {
		return r.SearchCandidatesFn(ctx)
	}
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.SearchCandidate
	for _, rest := range r.sorted() {
		candidate := model.SearchCandidate{Restaurant: rest}
		if r.Menu != nil {
			for _, item := range r.Menu.sorted() {
				if item.RestaurantID != rest.ID {
					continue
				}
				candidate.Dishes = append(candidate.Dishes, item.Dish)
				if candidate.MinPrice == 0 || item.Price < candidate.MinPrice {
					candidate.MinPrice = item.Price
				}
			}
		}
		result = append(result, candidate)
	}
	return result, nil
}

func (r *RestaurantRepositoryStub) sorted() []model.Restaurant {
	result := make([]model.Restaurant, 0, len(r.Items))
	for _, rest := range r.Items {
		result = append(result, *rest)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneRestaurant(r *model.Restaurant) *model.Restaurant {
	c := *r
	return &c
}

// MenuRepositoryStub keeps menu items in memory.
type MenuRepositoryStub struct {
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error
}

// NewMenuRepositoryStub constructs an empty menu repository.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

// Create stores a dish unless the restaurant already offers it.
func (r *MenuRepositoryStub) Create(_ context.Context, restaurantID int64, dish string, price int64) (*model.MenuItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, existing := range r.Items {
		if existing.RestaurantID == restaurantID && existing.Dish == dish {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	now := time.Now()
	item := &model.MenuItem{ID: r.Next, RestaurantID: restaurantID, Dish: dish, Price: price, CreatedAt: now, UpdatedAt: now}
	r.Items[item.ID] = item
	r.Next++
	c := *item
	return &c, nil
}

// GetByID returns a copy of the stored item.
func (r *MenuRepositoryStub) GetByID(_ context.Context, id int64) (*model.MenuItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := *item
	return &c, nil
}

// Update applies the non-nil fields.
func (r *MenuRepositoryStub) Update(_ context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Dish != nil {
		item.Dish = *update.Dish
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	item.UpdatedAt = time.Now()
	c := *item
	return &c, nil
}

// Delete removes the item.
func (r *MenuRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Items, id)
	return nil
}

// ListByRestaurant returns the restaurant's items ordered by id.
func (r *MenuRepositoryStub) ListByRestaurant(_ context.Context, restaurantID int64) ([]model.MenuItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.MenuItem
	for _, item := range r.sorted() {
		if item.RestaurantID == restaurantID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *MenuRepositoryStub) sorted() []model.MenuItem {
	result := make([]model.MenuItem, 0, len(r.Items))
	for _, item := range r.Items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// PurchaseRepositoryStub delegates to function overrides.
type PurchaseRepositoryStub struct {
	PurchaseFn   func(context.Context, int64, uuid.UUID, []model.PurchaseLine) (*model.Receipt, error)
	ListFn       func(context.Context, int64) ([]model.Purchase, error)
	GetReceiptFn func(context.Context, int64, uuid.UUID) (*model.Receipt, error)
}

// Purchase returns an empty receipt unless overridden.
func (r PurchaseRepositoryStub) Purchase(ctx context.Context, userID int64, receiptID uuid.UUID, lines []model.PurchaseLine) (*model.Receipt, error) {
	if r.PurchaseFn != nil {
		return r.PurchaseFn(ctx, userID, receiptID, lines)
	}
	return &model.Receipt{ID: receiptID, UserID: userID}, nil
}

// ListByUser returns no purchases unless overridden.
func (r PurchaseRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	if r.ListFn != nil {
		return r.ListFn(ctx, userID)
	}
	return nil, nil
}

// GetReceipt reports ErrNotFound unless overridden.
func (r PurchaseRepositoryStub) GetReceipt(ctx context.Context, userID int64, receiptID uuid.UUID) (*model.Receipt, error) {
	if r.GetReceiptFn != nil {
		return r.GetReceiptFn(ctx, userID, receiptID)
	}
	return nil, domainErrors.ErrNotFound
}

// EventRepositoryStub serves a fixed outbox and records acknowledgements.
type EventRepositoryStub struct {
	mu        sync.Mutex
	Pending   []model.PurchaseEvent
	Published []int64
	ClaimErr  error
	MarkErr   error
	Claims    int
}

// ClaimBatch hands out up to limit pending events once.
func (r *EventRepositoryStub) ClaimBatch(_ context.Context, limit int) ([]model.PurchaseEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Claims++
	if r.ClaimErr != nil {
		return nil, r.ClaimErr
	}
	if limit > len(r.Pending) {
		limit = len(r.Pending)
	}
	batch := append([]model.PurchaseEvent(nil), r.Pending[:limit]...)
	r.Pending = r.Pending[limit:]
	return batch, nil
}

// MarkPublished records the acknowledged id.
func (r *EventRepositoryStub) MarkPublished(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MarkErr != nil {
		return r.MarkErr
	}
	r.Published = append(r.Published, id)
	return nil
}

// PublishedIDs returns a sorted copy of acknowledged ids.
func (r *EventRepositoryStub) PublishedIDs() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := append([]int64(nil), r.Published...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ClaimCount returns how many times ClaimBatch ran.
func (r *EventRepositoryStub) ClaimCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Claims
}
