package repository

import (
	"context"

	"github.com/deppfellow/deck-api/internal/database"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	listDeckCardsSQL = `SELECT id, nom, imageurl, id_paquet FROM cartes WHERE id_paquet = $1`
	createCardSQL    = `INSERT INTO cartes (nom, imageurl, id_paquet) VALUES ($1, $2, $3) RETURNING id, nom, imageurl, id_paquet`
	deleteCardSQL    = `DELETE FROM cartes WHERE id = $1 RETURNING id, nom, imageurl, id_paquet`
)

// CardRepository reads and writes the cartes table.
type CardRepository struct {
	db database.Querier
}

func NewCardRepository(db database.Querier) *CardRepository {
	return &CardRepository{db: db}
}

// ListDeckCards returns the cards whose id_paquet is deckID.
// A deck with no cards, or no deck at all, gives an empty slice.
func (r *CardRepository) ListDeckCards(ctx context.Context, deckID int64) ([]model.Card, error) {
	rows, err := r.db.Query(ctx, listDeckCardsSQL, deckID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Card])
}

// CreateCard inserts a card. deckID is stored as given; whether it must
// reference an existing deck is up to the schema.
func (r *CardRepository) CreateCard(ctx context.Context, name string, imageURL *string, deckID *int64) (*model.Card, error) {
	rows, err := r.db.Query(ctx, createCardSQL, name, imageURL, deckID)
	if err != nil {
		return nil, err
	}
	return collectCard(rows)
}

// DeleteCard removes card id and returns the row as it was.
//
// pgx.ErrNoRows means no card has that id.
func (r *CardRepository) DeleteCard(ctx context.Context, id int64) (*model.Card, error) {
	rows, err := r.db.Query(ctx, deleteCardSQL, id)
	if err != nil {
		return nil, err
	}
	return collectCard(rows)
}

func collectCard(rows pgx.Rows) (*model.Card, error) {
	card, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Card])
	if err != nil {
		return nil, err
	}
	return &card, nil
}
