package model

// Card is a row of the cartes table.
//
// DeckID is a plain reference: nothing checks that the deck exists.
type Card struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"nom"`
	ImageURL *string `json:"imageURL" db:"imageurl"`
	DeckID   *int64  `json:"id_paquet" db:"id_paquet"`
}

// ListDeckCardsRequest is GET /api/paquets/:id/cartes.
type ListDeckCardsRequest struct {
	DeckID int64 `param:"id" json:"-"`
}

func (r *ListDeckCardsRequest) Validate() error {
	return nil
}

// CreateCardRequest is the body of POST /api/cartes.
type CreateCardRequest struct {
	Name     string  `json:"name" validate:"required"`
	ImageURL *string `json:"imageURL"`
	DeckID   *int64  `json:"id_paquet"`
}

func (r *CreateCardRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteCardRequest is DELETE /api/cartes/:id.
type DeleteCardRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteCardRequest) Validate() error {
	return nil
}
