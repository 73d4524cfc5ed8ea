// Package repository holds the SQL.
//
// Each method issues exactly one parameterized statement through
// database.Querier and maps rows onto model structs by their `db` tags.
// Errors come back from the driver untouched: classification (not found vs
// store failure) is the service layer's job.
package repository

import (
	"github.com/deppfellow/deck-api/internal/database"
	"github.com/deppfellow/deck-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Deck *DeckRepository
	Card *CardRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithQuerier(s.DB.Pool)
}

// NewRepositoriesWithQuerier builds every repository on top of q.
func NewRepositoriesWithQuerier(q database.Querier) *Repositories {
	return &Repositories{
		Deck: NewDeckRepository(q),
		Card: NewCardRepository(q),
	}
}
