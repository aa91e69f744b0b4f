package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/itemstore/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item record.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save persists a new Item. The database generates the ID; Save writes it
	// back into item before returning.
	Save(ctx context.Context, item *models.Item) error

	// FindAll returns every item ordered by creation time (oldest first,
	// ID as tiebreaker). Pagination is deliberately absent.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// GetByID returns the item with the given ID, or ErrItemNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}
