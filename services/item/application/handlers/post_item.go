package handlers

import (
	"net/http"

	"github.com/ghuser/itemstore/pkg/auth"
	"github.com/ghuser/itemstore/pkg/errhttp"
	"github.com/ghuser/itemstore/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemstore/pkg/validator"
	"github.com/ghuser/itemstore/services/item/application/dto"
	appsvcs "github.com/ghuser/itemstore/services/item/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new item attributed to the acting principal from X-User-Id (optional)
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-User-Id	header		string		false	"Acting principal identifier"
//	@Param			request		body		dto.ItemDTO	true	"Item to create (id is ignored)"
//	@Success		201			{object}	dto.ItemDTO
//	@Failure		400			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[dto.ItemDTO](w, r)
	if !ok {
		return
	}

	created, err := h.svc.Item.Create(r.Context(), *req, auth.PrincipalFromCtx(r.Context()))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}
