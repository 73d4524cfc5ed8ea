package repository

import (
	"context"

	"github.com/deppfellow/deck-api/internal/database"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	listDecksSQL  = `SELECT id, nom, logo FROM paquet`
	createDeckSQL = `INSERT INTO paquet (nom, logo) VALUES ($1, $2) RETURNING id, nom, logo`
	renameDeckSQL = `UPDATE paquet SET nom = $1 WHERE id = $2 RETURNING id, nom, logo`
	deleteDeckSQL = `DELETE FROM paquet WHERE id = $1 RETURNING id, nom, logo`
)

// DeckRepository reads and writes the paquet table.
type DeckRepository struct {
	db database.Querier
}

func NewDeckRepository(db database.Querier) *DeckRepository {
	return &DeckRepository{db: db}
}

// ListDecks returns every deck in store order.
func (r *DeckRepository) ListDecks(ctx context.Context) ([]model.Deck, error) {
	rows, err := r.db.Query(ctx, listDecksSQL)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Deck])
}

// CreateDeck inserts a deck and returns it with its generated id.
func (r *DeckRepository) CreateDeck(ctx context.Context, name string, logo *string) (*model.Deck, error) {
	return r.one(ctx, createDeckSQL, name, logo)
}

// RenameDeck updates the name of deck id.
//
// pgx.ErrNoRows means no deck has that id.
func (r *DeckRepository) RenameDeck(ctx context.Context, id int64, name string) (*model.Deck, error) {
	return r.one(ctx, renameDeckSQL, name, id)
}

// DeleteDeck removes deck id and returns the row as it was.
//
// pgx.ErrNoRows means no deck has that id.
func (r *DeckRepository) DeleteDeck(ctx context.Context, id int64) (*model.Deck, error) {
	return r.one(ctx, deleteDeckSQL, id)
}

func (r *DeckRepository) one(ctx context.Context, sql string, args ...any) (*model.Deck, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	deck, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Deck])
	if err != nil {
		return nil, err
	}
	return &deck, nil
}
