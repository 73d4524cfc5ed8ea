package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/deck-api/internal/handler"
	"github.com/deppfellow/deck-api/internal/middleware"
	"github.com/deppfellow/deck-api/internal/router"
	"github.com/deppfellow/deck-api/internal/service"
	"github.com/deppfellow/deck-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	e     *echo.Echo
	store *testutil.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()

	s := testutil.NewServer(t)
	store := testutil.NewStore()
	services := &service.Services{
		Deck: service.NewDeckService(s, store),
		Card: service.NewCardService(s, store),
	}

	return &api{
		e:     router.NewRouter(s, handler.NewHandlers(s, services)),
		store: store,
	}
}

func (a *api) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type object = map[string]any

func TestDecks(t *testing.T) {
	t.Run("create without logo", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/paquets", `{"name":"Tarot"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		deck := decode[object](t, rec)
		assert.Equal(t, float64(1), deck["id"])
		assert.Equal(t, "Tarot", deck["name"])
		require.Contains(t, deck, "logo")
		assert.Nil(t, deck["logo"])
	})

	t.Run("create then list", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/paquets", `{"name":"Tarot","logo":"tarot.png"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decode[object](t, rec)

		rec = a.do(t, http.MethodGet, "/api/paquets", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []object{created}, decode[[]object](t, rec))
	})

	t.Run("empty list is an array", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/api/paquets", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("missing name is rejected before the store", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/paquets", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[object](t, rec)
		assert.Equal(t, "Field 'name' is required.", body["error"])
		assert.Equal(t, "BAD_REQUEST", body["code"])
		assert.Equal(t, []any{object{"field": "name", "error": "is required"}}, body["errors"])
		assert.Zero(t, a.store.Calls)
	})

	t.Run("malformed body", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/paquets", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, a.store.Calls)
	})

	t.Run("rename", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"A","logo":"a.png"}`)

		rec := a.do(t, http.MethodPut, "/api/paquets/1", `{"name":"B"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"B","logo":"a.png"}`, rec.Body.String())
	})

	t.Run("body cannot override the path id", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"A"}`)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"B"}`)

		rec := a.do(t, http.MethodPut, "/api/paquets/1", `{"id":2,"name":"C"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"C","logo":null}`, rec.Body.String())
	})

	t.Run("rename unknown deck", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPut, "/api/paquets/99999", `{"name":"B"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No deck found with id 99999","code":"NOT_FOUND"}`, rec.Body.String())
	})

	t.Run("rename without name", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPut, "/api/paquets/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, a.store.Calls)
	})

	t.Run("delete twice", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"A"}`)

		rec := a.do(t, http.MethodDelete, "/api/paquets/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"A","logo":null}`, rec.Body.String())

		rec = a.do(t, http.MethodDelete, "/api/paquets/1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No deck found with id 1", decode[object](t, rec)["error"])

		rec = a.do(t, http.MethodGet, "/api/paquets", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("non-integer id", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodDelete, "/api/paquets/abc", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid value 'abc': must be an integer", decode[object](t, rec)["error"])
		assert.Zero(t, a.store.Calls)
	})

	t.Run("store failure", func(t *testing.T) {
		a := newAPI(t)
		a.store.Fail()

		rec := a.do(t, http.MethodGet, "/api/paquets", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decode[object](t, rec)
		assert.Equal(t, "Error while retrieving decks", body["error"])
		assert.Equal(t, "STORE_ERROR", body["code"])
		assert.Equal(t, testutil.StoreFailure.Error(), body["details"])
	})
}

func TestCards(t *testing.T) {
	t.Run("create and list by deck", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"Tarot"}`)

		rec := a.do(t, http.MethodPost, "/api/cartes", `{"name":"Le Mat","imageURL":"http://img/mat.png","id_paquet":1}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"id":2,"name":"Le Mat","imageURL":"http://img/mat.png","id_paquet":1}`, rec.Body.String())

		rec = a.do(t, http.MethodGet, "/api/paquets/1/cartes", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":2,"name":"Le Mat","imageURL":"http://img/mat.png","id_paquet":1}]`, rec.Body.String())
	})

	t.Run("unknown deck has no cards", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/api/paquets/424242/cartes", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("optional fields default to null", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/cartes", `{"name":"Loose"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"Loose","imageURL":null,"id_paquet":null}`, rec.Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/cartes", `{"imageURL":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Field 'name' is required.", decode[object](t, rec)["error"])
		assert.Zero(t, a.store.Calls)
	})

	t.Run("delete twice", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/cartes", `{"name":"Ace"}`)

		rec := a.do(t, http.MethodDelete, "/api/cartes/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ace","imageURL":null,"id_paquet":null}`, rec.Body.String())

		rec = a.do(t, http.MethodDelete, "/api/cartes/1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No card found with id 1","code":"NOT_FOUND"}`, rec.Body.String())
	})

	t.Run("deleting a deck keeps its cards", func(t *testing.T) {
		a := newAPI(t)
		a.do(t, http.MethodPost, "/api/paquets", `{"name":"Tarot"}`)
		a.do(t, http.MethodPost, "/api/cartes", `{"name":"Ace","id_paquet":1}`)

		rec := a.do(t, http.MethodDelete, "/api/paquets/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = a.do(t, http.MethodGet, "/api/paquets/1/cartes", "")
		assert.Len(t, decode[[]object](t, rec), 1)
	})

	t.Run("store failure", func(t *testing.T) {
		a := newAPI(t)
		a.store.Fail()

		rec := a.do(t, http.MethodPost, "/api/cartes", `{"name":"Ace"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error while adding card", decode[object](t, rec)["error"])
	})
}

func TestSystemRoutes(t *testing.T) {
	t.Run("status without database", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/status", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", decode[object](t, rec)["status"])
	})

	t.Run("docs", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/docs", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.Contains(t, rec.Body.String(), "/static/openapi.json")
	})

	t.Run("openapi document", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/static/openapi.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		doc := decode[object](t, rec)
		assert.Contains(t, doc["paths"], "/api/paquets")
	})

	t.Run("unknown route", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Route not found","code":"NOT_FOUND"}`, rec.Body.String())
	})

	t.Run("request id is generated and echoed", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/api/paquets", "")
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

		req := httptest.NewRequest(http.MethodGet, "/api/paquets", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec = httptest.NewRecorder()
		a.e.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	})
}
