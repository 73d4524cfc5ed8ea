package service

import (
	"github.com/deppfellow/deck-api/internal/repository"
	"github.com/deppfellow/deck-api/internal/server"
)

type Services struct {
	Deck *DeckService
	Card *CardService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Deck: NewDeckService(s, repos.Deck),
		Card: NewCardService(s, repos.Card),
	}
}
