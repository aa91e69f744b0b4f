package handlers

import (
	"net/http"

	"github.com/ghuser/itemstore/pkg/errhttp"
	"github.com/ghuser/itemstore/pkg/httpx"
	appsvcs "github.com/ghuser/itemstore/services/item/application/services"
)

// GetItemsHandler handles GET /item requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists all items.
//
//	@Summary		List items
//	@Description	Returns every item in creation order. No pagination or filtering.
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		dto.ItemDTO
//	@Failure		500	{object}	ErrorResponse
//	@Router			/item [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.GetAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}
