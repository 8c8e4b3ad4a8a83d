// Package memory provides the in-process adapters: the catalog store
// backing lists, items and ratings, and a flow-context store. Both are
// safe for concurrent use; data lives only for the process lifetime.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rankery/rankery/internal/logging"
	"github.com/rankery/rankery/pkg/domain"
)

// itemList is one named list: item name -> ratings, plus insertion order.
type itemList struct {
	order []string
	items map[string][]domain.Rating
}

// userSpace holds one user's lists with insertion order.
type userSpace struct {
	order []string
	lists map[string]*itemList
}

// Catalog implements ports.CatalogStore in memory.
type Catalog struct {
	mu     sync.RWMutex
	users  map[string]*userSpace
	logger *slog.Logger
}

// CatalogOption configures the Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for dropped operations.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// NewCatalog creates an empty in-memory catalog store.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		users:  make(map[string]*userSpace),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// space returns the user's namespace, creating it lazily.
// Caller must hold the write lock.
func (c *Catalog) space(userID string) *userSpace {
	us, ok := c.users[userID]
	if !ok {
		us = &userSpace{lists: make(map[string]*itemList)}
		c.users[userID] = us
	}
	return us
}

// lookup returns the user's list, or nil. Caller must hold at least the
// read lock. Reads never create namespaces.
func (c *Catalog) lookup(userID, list string) *itemList {
	us, ok := c.users[userID]
	if !ok {
		return nil
	}
	return us.lists[list]
}

// CreateList creates an empty list, returning false if it already exists.
func (c *Catalog) CreateList(ctx context.Context, userID, list string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	us := c.space(userID)
	if _, ok := us.lists[list]; ok {
		return false
	}
	us.lists[list] = &itemList{items: make(map[string][]domain.Rating)}
	us.order = append(us.order, list)
	c.logger.Debug("list created", "user", userID, "list", list)
	return true
}

// ListExists reports whether the user has a list with that name.
func (c *Catalog) ListExists(ctx context.Context, userID, list string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup(userID, list) != nil
}

// Lists returns the user's list names in insertion order.
func (c *Catalog) Lists(ctx context.Context, userID string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	us, ok := c.users[userID]
	if !ok {
		return nil
	}
	out := make([]string, len(us.order))
	copy(out, us.order)
	return out
}

// AddItem adds an item, auto-creating the list if absent. Returns false if
// the item already exists in the list.
func (c *Catalog) AddItem(ctx context.Context, userID, list, item string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	us := c.space(userID)
	il, ok := us.lists[list]
	if !ok {
		il = &itemList{items: make(map[string][]domain.Rating)}
		us.lists[list] = il
		us.order = append(us.order, list)
		c.logger.Debug("list auto-created", "user", userID, "list", list)
	}
	if _, ok := il.items[item]; ok {
		return false
	}
	il.items[item] = []domain.Rating{}
	il.order = append(il.order, item)
	c.logger.Debug("item added", "user", userID, "list", list, "item", item)
	return true
}

// ItemExists reports whether the item exists in the list.
func (c *Catalog) ItemExists(ctx context.Context, userID, list, item string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	il := c.lookup(userID, list)
	if il == nil {
		return false
	}
	_, ok := il.items[item]
	return ok
}

// Items returns the list's items mapped to copies of their rating
// sequences. Empty map if the list is absent.
func (c *Catalog) Items(ctx context.Context, userID, list string) map[string][]domain.Rating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string][]domain.Rating)
	il := c.lookup(userID, list)
	if il == nil {
		return out
	}
	for name, ratings := range il.items {
		cp := make([]domain.Rating, len(ratings))
		copy(cp, ratings)
		out[name] = cp
	}
	return out
}

// ItemNames returns the list's item names in insertion order.
func (c *Catalog) ItemNames(ctx context.Context, userID, list string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	il := c.lookup(userID, list)
	if il == nil {
		return nil
	}
	out := make([]string, len(il.order))
	copy(out, il.order)
	return out
}

// AddRating appends a rating to the item's sequence. Out-of-range scores
// and absent items are logged and dropped.
func (c *Catalog) AddRating(ctx context.Context, userID, list, item string, r domain.Rating) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	il := c.lookup(userID, list)
	if il == nil {
		c.logger.Warn("rating dropped: list not found", "user", userID, "list", list, "item", item)
		return false
	}
	if _, ok := il.items[item]; !ok {
		c.logger.Warn("rating dropped: item not found", "user", userID, "list", list, "item", item)
		return false
	}
	if !r.Valid() {
		c.logger.Warn("rating dropped: score out of range", "user", userID, "item", item, "score", r.Score)
		return false
	}
	il.items[item] = append(il.items[item], r)
	c.logger.Debug("rating added", "user", userID, "list", list, "item", item, "score", r.Score)
	return true
}

// Ratings returns a copy of the item's rating sequence.
func (c *Catalog) Ratings(ctx context.Context, userID, list, item string) []domain.Rating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	il := c.lookup(userID, list)
	if il == nil {
		return nil
	}
	ratings, ok := il.items[item]
	if !ok {
		return nil
	}
	out := make([]domain.Rating, len(ratings))
	copy(out, ratings)
	return out
}

// AverageRating returns the mean score, or 0 for an unrated or absent item.
func (c *Catalog) AverageRating(ctx context.Context, userID, list, item string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	il := c.lookup(userID, list)
	if il == nil {
		return 0
	}
	return domain.Average(il.items[item])
}

// DeleteList removes the list and everything under it.
func (c *Catalog) DeleteList(ctx context.Context, userID, list string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	us, ok := c.users[userID]
	if !ok {
		return false
	}
	if _, ok := us.lists[list]; !ok {
		return false
	}
	delete(us.lists, list)
	us.order = removeString(us.order, list)
	c.logger.Debug("list deleted", "user", userID, "list", list)
	return true
}

// DeleteItem removes the item and its ratings.
func (c *Catalog) DeleteItem(ctx context.Context, userID, list, item string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	il := c.lookup(userID, list)
	if il == nil {
		return false
	}
	if _, ok := il.items[item]; !ok {
		return false
	}
	delete(il.items, item)
	il.order = removeString(il.order, item)
	c.logger.Debug("item deleted", "user", userID, "list", list, "item", item)
	return true
}

// DeleteRating removes exactly the rating at index, shifting later indices
// down by one.
func (c *Catalog) DeleteRating(ctx context.Context, userID, list, item string, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	il := c.lookup(userID, list)
	if il == nil {
		return false
	}
	ratings, ok := il.items[item]
	if !ok {
		return false
	}
	if index < 0 || index >= len(ratings) {
		c.logger.Warn("delete dropped: rating index out of range", "user", userID, "item", item, "index", index)
		return false
	}
	il.items[item] = append(ratings[:index], ratings[index+1:]...)
	c.logger.Debug("rating deleted", "user", userID, "list", list, "item", item, "index", index)
	return true
}

// ClearRatings replaces the item's ratings with an empty sequence.
func (c *Catalog) ClearRatings(ctx context.Context, userID, list, item string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	il := c.lookup(userID, list)
	if il == nil {
		return false
	}
	if _, ok := il.items[item]; !ok {
		return false
	}
	il.items[item] = []domain.Rating{}
	c.logger.Debug("ratings cleared", "user", userID, "list", list, "item", item)
	return true
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
