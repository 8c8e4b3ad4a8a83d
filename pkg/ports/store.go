package ports

import (
	"context"

	"github.com/rankery/rankery/pkg/domain"
)

// CatalogStore is the hierarchical per-user data store:
// user -> list -> item -> ordered rating records.
//
// All operations are keyed by an opaque user id and synchronous. A user's
// namespace is created lazily on first access; lists and items are created
// only by CreateList/AddItem, never by reads. Reads on absent entities
// return empty results, not errors.
//
// Boolean returns signal whether the mutation took effect: CreateList and
// AddItem return false on a duplicate name (no-op), AddRating returns false
// when the item is absent or the score is out of range (logged, dropped),
// and the delete operations return false when the target does not exist.
type CatalogStore interface {
	// CreateList creates an empty list. No-op returning false if a list
	// with that name already exists for the user.
	CreateList(ctx context.Context, userID, list string) bool

	// ListExists reports whether the user has a list with that exact name.
	ListExists(ctx context.Context, userID, list string) bool

	// Lists returns the user's list names in insertion order.
	Lists(ctx context.Context, userID string) []string

	// AddItem adds an item to a list, creating the list if absent.
	// No-op returning false if the item already exists in the list.
	AddItem(ctx context.Context, userID, list, item string) bool

	// ItemExists reports whether the item exists in the list.
	ItemExists(ctx context.Context, userID, list, item string) bool

	// Items returns the list's items mapped to their rating sequences.
	// Empty map if the list is absent.
	Items(ctx context.Context, userID, list string) map[string][]domain.Rating

	// ItemNames returns the list's item names in insertion order.
	ItemNames(ctx context.Context, userID, list string) []string

	// AddRating appends a rating to the item's sequence. Returns false,
	// without mutating anything, if the item is absent or the score is
	// outside [domain.MinScore, domain.MaxScore].
	AddRating(ctx context.Context, userID, list, item string, r domain.Rating) bool

	// Ratings returns the item's rating sequence in insertion order.
	// Empty if the item is absent.
	Ratings(ctx context.Context, userID, list, item string) []domain.Rating

	// AverageRating returns the mean score for the item, or 0 when the
	// item has no ratings (indistinguishable from an all-zero average;
	// callers check sequence emptiness first when the difference matters).
	AverageRating(ctx context.Context, userID, list, item string) float64

	// DeleteList removes the list and cascades to its items and ratings.
	DeleteList(ctx context.Context, userID, list string) bool

	// DeleteItem removes the item and cascades to its ratings.
	DeleteItem(ctx context.Context, userID, list, item string) bool

	// DeleteRating removes exactly the rating at index, shifting later
	// indices down. Returns false if the index is out of range.
	DeleteRating(ctx context.Context, userID, list, item string, index int) bool

	// ClearRatings replaces the item's ratings with an empty sequence.
	// Returns false if the item is absent.
	ClearRatings(ctx context.Context, userID, list, item string) bool
}
