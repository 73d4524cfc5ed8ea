package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/deck-api/internal/errs"
	"github.com/deppfellow/deck-api/internal/model"
	"github.com/deppfellow/deck-api/internal/service"
	"github.com/deppfellow/deck-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeckService(t *testing.T) (*service.DeckService, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	return service.NewDeckService(testutil.NewServer(t), store), store
}

func requireHTTPError(t *testing.T, err error, status int, message string) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

func TestDeckService_ListDecks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store gives empty slice", func(t *testing.T) {
		svc, _ := newDeckService(t)

		decks, err := svc.ListDecks(ctx)
		require.NoError(t, err)
		assert.NotNil(t, decks)
		assert.Empty(t, decks)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newDeckService(t)
		store.Fail()

		_, err := svc.ListDecks(ctx)
		httpErr := requireHTTPError(t, err, http.StatusInternalServerError, "Error while retrieving decks")
		assert.Equal(t, errs.CodeStoreError, httpErr.Code)
		assert.Equal(t, testutil.StoreFailure.Error(), httpErr.Details)
		assert.ErrorIs(t, err, testutil.StoreFailure)
	})
}

func TestDeckService_CreateDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("without logo", func(t *testing.T) {
		svc, _ := newDeckService(t)

		deck, err := svc.CreateDeck(ctx, &model.CreateDeckRequest{Name: "Tarot"})
		require.NoError(t, err)
		assert.Positive(t, deck.ID)
		assert.Equal(t, "Tarot", deck.Name)
		assert.Nil(t, deck.Logo)

		decks, err := svc.ListDecks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Deck{*deck}, decks)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newDeckService(t)
		store.Fail()

		_, err := svc.CreateDeck(ctx, &model.CreateDeckRequest{Name: "Tarot"})
		requireHTTPError(t, err, http.StatusInternalServerError, "Error while creating deck")
	})
}

func TestDeckService_RenameDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("existing deck", func(t *testing.T) {
		svc, _ := newDeckService(t)
		logo := "logo.png"
		created, err := svc.CreateDeck(ctx, &model.CreateDeckRequest{Name: "A", Logo: &logo})
		require.NoError(t, err)

		renamed, err := svc.RenameDeck(ctx, &model.RenameDeckRequest{ID: created.ID, Name: "B"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, renamed.ID)
		assert.Equal(t, "B", renamed.Name)
		assert.Equal(t, &logo, renamed.Logo)
	})

	t.Run("unknown deck", func(t *testing.T) {
		svc, _ := newDeckService(t)

		_, err := svc.RenameDeck(ctx, &model.RenameDeckRequest{ID: 42, Name: "B"})
		requireHTTPError(t, err, http.StatusNotFound, "No deck found with id 42")
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newDeckService(t)
		store.Fail()

		_, err := svc.RenameDeck(ctx, &model.RenameDeckRequest{ID: 3, Name: "B"})
		requireHTTPError(t, err, http.StatusInternalServerError, "Error while updating deck 3")
	})
}

func TestDeckService_DeleteDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("second delete is not found", func(t *testing.T) {
		svc, _ := newDeckService(t)
		created, err := svc.CreateDeck(ctx, &model.CreateDeckRequest{Name: "A"})
		require.NoError(t, err)

		deleted, err := svc.DeleteDeck(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, deleted)

		_, err = svc.DeleteDeck(ctx, created.ID)
		requireHTTPError(t, err, http.StatusNotFound, "No deck found with id 1")
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newDeckService(t)
		store.Fail()

		_, err := svc.DeleteDeck(ctx, 5)
		requireHTTPError(t, err, http.StatusInternalServerError, "Error while deleting deck 5")
	})
}
