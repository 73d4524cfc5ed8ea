// Package handler is the HTTP layer, the first stop after the router.
//
// Handlers bind and validate input through the validation package, call one
// service method and write the JSON result. Errors are left to the global
// error handler.
package handler

import (
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/deppfellow/deck-api/internal/service"
)

// Handlers groups every HTTP handler so router setup takes one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Deck    *DeckHandler
	Card    *CardHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Deck:    NewDeckHandler(s, services.Deck),
		Card:    NewCardHandler(s, services.Card),
	}
}
