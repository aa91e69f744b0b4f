package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemstore/pkg/app"
	"github.com/ghuser/itemstore/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemstore/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/item", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
	})
}
