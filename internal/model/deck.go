package model

// Deck is a row of the paquet table.
type Deck struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"nom"`
	Logo *string `json:"logo" db:"logo"`
}

// ListDecksRequest has no input; it exists so the list endpoint goes
// through the same bind/validate pipeline as every other route.
type ListDecksRequest struct{}

func (r *ListDecksRequest) Validate() error {
	return nil
}

// CreateDeckRequest is the body of POST /api/paquets.
type CreateDeckRequest struct {
	Name string  `json:"name" validate:"required"`
	Logo *string `json:"logo"`
}

func (r *CreateDeckRequest) Validate() error {
	return validate.Struct(r)
}

// RenameDeckRequest is PUT /api/paquets/:id.
type RenameDeckRequest struct {
	ID   int64  `param:"id" json:"-"`
	Name string `json:"name" validate:"required"`
}

func (r *RenameDeckRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteDeckRequest is DELETE /api/paquets/:id.
type DeleteDeckRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteDeckRequest) Validate() error {
	return nil
}
