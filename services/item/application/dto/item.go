// Package dto defines the external-facing item shape and its conversions.
//
// The DTO exists so the entity's audit internals (createdBy, timestamps,
// isActive, internalComment) never reach API consumers. This package is the
// only place entity fields are read from DTO-space.
package dto

import (
	"github.com/ghuser/itemstore/pkg/auth"
	"github.com/ghuser/itemstore/services/item/domain/models"
)

// ItemDTO is the wire representation of an Item.
type ItemDTO struct {
	ID          string `json:"id,omitempty" validate:"omitempty,uuid4" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string `json:"name"        validate:"required,min=1,max=255"  example:"Sample Item"`
	Description string `json:"description" validate:"required,min=1,max=2000" example:"Some Test Item"`
} // @name ItemDTO

// FromItem projects an entity to its DTO. Total over a well-formed Item;
// audit fields are deliberately not carried across.
func FromItem(item *models.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID.String(),
		Name:        item.Name.String(),
		Description: item.Description,
	}
}

// ToItem constructs a new unsaved entity from the DTO, stamping audit fields
// with the acting principal (a nil principal leaves audit columns null). The ID is
// left zero — only a persistence round-trip assigns one.
func ToItem(d ItemDTO, p *auth.Principal) (*models.Item, error) {
	name, err := models.NewItemName(d.Name)
	if err != nil {
		return nil, err
	}

	var actor *string
	if p != nil {
		actor = &p.ID
	}
	return models.NewItem(name, d.Description, actor)
}
