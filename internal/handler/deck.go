package handler

import (
	"net/http"

	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/deppfellow/deck-api/internal/service"
	"github.com/labstack/echo/v4"
)

// DeckHandler serves /api/paquets.
type DeckHandler struct {
	Handler
	deckService *service.DeckService
}

func NewDeckHandler(s *server.Server, deckService *service.DeckService) *DeckHandler {
	return &DeckHandler{
		Handler:     NewHandler(s),
		deckService: deckService,
	}
}

// ListDecks handles GET /api/paquets.
func (h *DeckHandler) ListDecks() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *model.ListDecksRequest) ([]model.Deck, error) {
		return h.deckService.ListDecks(c.Request().Context())
	}, http.StatusOK, func() *model.ListDecksRequest { return &model.ListDecksRequest{} })
}

// CreateDeck handles POST /api/paquets.
func (h *DeckHandler) CreateDeck() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateDeckRequest) (*model.Deck, error) {
		return h.deckService.CreateDeck(c.Request().Context(), req)
	}, http.StatusCreated, func() *model.CreateDeckRequest { return &model.CreateDeckRequest{} })
}

// RenameDeck handles PUT /api/paquets/:id.
func (h *DeckHandler) RenameDeck() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.RenameDeckRequest) (*model.Deck, error) {
		return h.deckService.RenameDeck(c.Request().Context(), req)
	}, http.StatusOK, func() *model.RenameDeckRequest { return &model.RenameDeckRequest{} })
}

// DeleteDeck handles DELETE /api/paquets/:id.
func (h *DeckHandler) DeleteDeck() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.DeleteDeckRequest) (*model.Deck, error) {
		return h.deckService.DeleteDeck(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *model.DeleteDeckRequest { return &model.DeleteDeckRequest{} })
}
