package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/deck-api/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static/openapi.html
var openAPIUI []byte

//go:embed static/openapi.json
var openAPISpec []byte

// OpenAPIHandler serves the API documentation.
//
// The UI page loads its JS from a CDN and reads /static/openapi.json.
// Both files are compiled into the binary.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the docs page, uncached so edits show up at once.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, openAPIUI)
}

// ServeOpenAPISpec serves the OpenAPI document itself.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, openAPISpec)
}
