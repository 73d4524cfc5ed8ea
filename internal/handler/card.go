package handler

import (
	"net/http"

	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/deppfellow/deck-api/internal/service"
	"github.com/labstack/echo/v4"
)

// CardHandler serves /api/cartes and /api/paquets/:id/cartes.
type CardHandler struct {
	Handler
	cardService *service.CardService
}

func NewCardHandler(s *server.Server, cardService *service.CardService) *CardHandler {
	return &CardHandler{
		Handler:     NewHandler(s),
		cardService: cardService,
	}
}

// ListDeckCards handles GET /api/paquets/:id/cartes.
func (h *CardHandler) ListDeckCards() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.ListDeckCardsRequest) ([]model.Card, error) {
		return h.cardService.ListDeckCards(c.Request().Context(), req.DeckID)
	}, http.StatusOK, func() *model.ListDeckCardsRequest { return &model.ListDeckCardsRequest{} })
}

// CreateCard handles POST /api/cartes.
func (h *CardHandler) CreateCard() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateCardRequest) (*model.Card, error) {
		return h.cardService.CreateCard(c.Request().Context(), req)
	}, http.StatusCreated, func() *model.CreateCardRequest { return &model.CreateCardRequest{} })
}

// DeleteCard handles DELETE /api/cartes/:id.
func (h *CardHandler) DeleteCard() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.DeleteCardRequest) (*model.Card, error) {
		return h.cardService.DeleteCard(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *model.DeleteCardRequest { return &model.DeleteCardRequest{} })
}
