package models

import (
	"fmt"

	"github.com/google/uuid"
)

const maxDescriptionLength = 2000

// Item is the single persisted record of this bounded context, backed by the
// "item" table. The ID is generated by the database on insert; a freshly
// constructed Item carries uuid.Nil until the repository saves it.
type Item struct {
	ID uuid.UUID
	Audit
	Name        ItemName
	Description string
}

// NewItem constructs an unsaved Item with stamped audit fields.
// actor is the acting principal's identifier, nil when anonymous.
func NewItem(name ItemName, description string, actor *string) (*Item, error) {
	if description == "" {
		return nil, fmt.Errorf("item description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("item description must not exceed %d characters", maxDescriptionLength)
	}
	return &Item{
		Audit:       NewAudit(actor),
		Name:        name,
		Description: description,
	}, nil
}
