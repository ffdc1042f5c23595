// Package srd imports the System Reference Document catalog from a dnd5eapi compatible server
package srd

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("srd")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Import(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Import runs a synchronous import. ?resources=classes,spells limits what is imported.
func (h handler) Import(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SRD.Handler.Import")
	defer span.End()

	var resources []string
	for _, resource := range strings.Split(c.QueryParam("resources"), ",") {
		resource = strings.TrimSpace(resource)
		if resource != "" {
			resources = append(resources, resource)
		}
	}

	report, err := h.service.Import(ctx, resources)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": report})
}
