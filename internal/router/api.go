package router

import (
	"github.com/deppfellow/deck-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerDeckRoutes(api *echo.Group, h *handler.Handlers) {
	decks := api.Group("/paquets")

	decks.GET("", h.Deck.ListDecks())
	decks.POST("", h.Deck.CreateDeck())
	decks.PUT("/:id", h.Deck.RenameDeck())
	decks.DELETE("/:id", h.Deck.DeleteDeck())

	decks.GET("/:id/cartes", h.Card.ListDeckCards())
}

func registerCardRoutes(api *echo.Group, h *handler.Handlers) {
	cards := api.Group("/cartes")

	cards.POST("", h.Card.CreateCard())
	cards.DELETE("/:id", h.Card.DeleteCard())
}
