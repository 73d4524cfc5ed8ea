// Package testutil provides an application container and in-memory stores
// for tests that exercise services and HTTP routes without PostgreSQL.
package testutil

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/deppfellow/deck-api/internal/config"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// NewServer returns a container with default config, a silent logger and
// no database.
func NewServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Observability.ServiceName = config.ServiceName
	cfg.Observability.Environment = cfg.Primary.Env

	logger := zerolog.Nop()
	return &server.Server{
		Config: cfg,
		Logger: &logger,
	}
}

// StoreFailure is the driver error returned by a store whose Err is unset
// but Fail is true.
var StoreFailure = &pgconn.PgError{
	Severity: "ERROR",
	Code:     "08006",
	Message:  "connection failure",
}

// Store is an in-memory stand-in for both repositories. Cards and decks
// share nothing: deleting a deck leaves its cards in place.
type Store struct {
	mu sync.Mutex

	decks  map[int64]model.Deck
	cards  map[int64]model.Card
	nextID int64

	// Err, when set, is returned by every call.
	Err error

	// Calls counts the calls that reached the store.
	Calls int
}

func NewStore() *Store {
	return &Store{
		decks: map[int64]model.Deck{},
		cards: map[int64]model.Card{},
	}
}

// Fail makes every following call return StoreFailure.
func (s *Store) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = StoreFailure
}

func (s *Store) begin() error {
	s.Calls++
	return s.Err
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) ListDecks(_ context.Context) ([]model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	var decks []model.Deck
	for _, d := range s.decks {
		decks = append(decks, d)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].ID < decks[j].ID })
	return decks, nil
}

func (s *Store) CreateDeck(_ context.Context, name string, logo *string) (*model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	d := model.Deck{ID: s.id(), Name: name, Logo: logo}
	s.decks[d.ID] = d
	return &d, nil
}

func (s *Store) RenameDeck(_ context.Context, id int64, name string) (*model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	d, ok := s.decks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	d.Name = name
	s.decks[id] = d
	return &d, nil
}

func (s *Store) DeleteDeck(_ context.Context, id int64) (*model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	d, ok := s.decks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(s.decks, id)
	return &d, nil
}

func (s *Store) ListDeckCards(_ context.Context, deckID int64) ([]model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	var cards []model.Card
	for _, c := range s.cards {
		if c.DeckID != nil && *c.DeckID == deckID {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (s *Store) CreateCard(_ context.Context, name string, imageURL *string, deckID *int64) (*model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	c := model.Card{ID: s.id(), Name: name, ImageURL: imageURL, DeckID: deckID}
	s.cards[c.ID] = c
	return &c, nil
}

func (s *Store) DeleteCard(_ context.Context, id int64) (*model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	c, ok := s.cards[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(s.cards, id)
	return &c, nil
}
