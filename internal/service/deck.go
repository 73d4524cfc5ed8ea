package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/deck-api/internal/errs"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/deppfellow/deck-api/internal/sqlerr"
)

// DeckStore is what DeckService needs from the paquet table.
// *repository.DeckRepository implements it.
type DeckStore interface {
	ListDecks(ctx context.Context) ([]model.Deck, error)
	CreateDeck(ctx context.Context, name string, logo *string) (*model.Deck, error)
	RenameDeck(ctx context.Context, id int64, name string) (*model.Deck, error)
	DeleteDeck(ctx context.Context, id int64) (*model.Deck, error)
}

type DeckService struct {
	server *server.Server
	store  DeckStore
}

func NewDeckService(s *server.Server, store DeckStore) *DeckService {
	return &DeckService{
		server: s,
		store:  store,
	}
}

// ListDecks returns every deck, never nil.
func (s *DeckService) ListDecks(ctx context.Context) ([]model.Deck, error) {
	decks, err := s.store.ListDecks(ctx)
	if err != nil {
		return nil, errs.NewStoreError("Error while retrieving decks", err)
	}
	if decks == nil {
		decks = []model.Deck{}
	}
	return decks, nil
}

// CreateDeck stores a new deck. req has already been validated.
func (s *DeckService) CreateDeck(ctx context.Context, req *model.CreateDeckRequest) (*model.Deck, error) {
	deck, err := s.store.CreateDeck(ctx, req.Name, req.Logo)
	if err != nil {
		return nil, errs.NewStoreError("Error while creating deck", err)
	}

	s.server.Logger.Debug().
		Int64("deck_id", deck.ID).
		Msg("deck created")

	return deck, nil
}

// RenameDeck changes the name of deck req.ID.
func (s *DeckService) RenameDeck(ctx context.Context, req *model.RenameDeckRequest) (*model.Deck, error) {
	deck, err := s.store.RenameDeck(ctx, req.ID, req.Name)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, deckNotFound(req.ID)
		}
		return nil, errs.NewStoreError(fmt.Sprintf("Error while updating deck %d", req.ID), err)
	}
	return deck, nil
}

// DeleteDeck removes deck id and returns its last content.
//
// Cards pointing at the deck are left alone; the schema decides what
// happens to them.
func (s *DeckService) DeleteDeck(ctx context.Context, id int64) (*model.Deck, error) {
	deck, err := s.store.DeleteDeck(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, deckNotFound(id)
		}
		return nil, errs.NewStoreError(fmt.Sprintf("Error while deleting deck %d", id), err)
	}

	s.server.Logger.Debug().
		Int64("deck_id", deck.ID).
		Msg("deck deleted")

	return deck, nil
}

func deckNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("No deck found with id %d", id), nil)
}
