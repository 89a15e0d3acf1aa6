package http

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// LoadOpenAPISpec reads the API contract from disk and validates it.
// Startup fails fast on a malformed contract rather than serving routes
// that drifted from the published document.
func LoadOpenAPISpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract from %s: %w", path, err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}

	return doc, nil
}

// RegisterOpenAPIRoute exposes the validated contract as JSON so API
// explorers and client generators can fetch it from the running service.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
}
