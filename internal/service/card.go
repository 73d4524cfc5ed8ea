package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/deck-api/internal/errs"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/deppfellow/deck-api/internal/sqlerr"
)

// CardStore is what CardService needs from the cartes table.
// *repository.CardRepository implements it.
type CardStore interface {
	ListDeckCards(ctx context.Context, deckID int64) ([]model.Card, error)
	CreateCard(ctx context.Context, name string, imageURL *string, deckID *int64) (*model.Card, error)
	DeleteCard(ctx context.Context, id int64) (*model.Card, error)
}

type CardService struct {
	server *server.Server
	store  CardStore
}

func NewCardService(s *server.Server, store CardStore) *CardService {
	return &CardService{
		server: s,
		store:  store,
	}
}

// ListDeckCards returns the cards of deck deckID. An unknown deck is not an
// error: it simply has no cards.
func (s *CardService) ListDeckCards(ctx context.Context, deckID int64) ([]model.Card, error) {
	cards, err := s.store.ListDeckCards(ctx, deckID)
	if err != nil {
		return nil, errs.NewStoreError(fmt.Sprintf("Error while retrieving cards of deck %d", deckID), err)
	}
	if cards == nil {
		cards = []model.Card{}
	}
	return cards, nil
}

// CreateCard stores a new card. The deck reference is not checked here.
func (s *CardService) CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.Card, error) {
	card, err := s.store.CreateCard(ctx, req.Name, req.ImageURL, req.DeckID)
	if err != nil {
		return nil, errs.NewStoreError("Error while adding card", err)
	}

	s.server.Logger.Debug().
		Int64("card_id", card.ID).
		Msg("card created")

	return card, nil
}

// DeleteCard removes card id and returns its last content.
func (s *CardService) DeleteCard(ctx context.Context, id int64) (*model.Card, error) {
	card, err := s.store.DeleteCard(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("No card found with id %d", id), nil)
		}
		return nil, errs.NewStoreError(fmt.Sprintf("Error while deleting card %d", id), err)
	}
	return card, nil
}
