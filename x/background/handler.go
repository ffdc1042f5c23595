// Package background manages character backgrounds
package background

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var tracer = otel.Tracer("background")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.BackgroundService
}

// NewHandler creates a new handler
func NewHandler(service core.BackgroundService) Handler {
	return &handler{service: service}
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Background.Handler.Get")
	defer span.End()

	background, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": background})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Background.Handler.List")
	defer span.End()

	opts, err := listing.FromContext(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(ctx, opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": page})
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Background.Handler.Create")
	defer span.End()

	var request backgroundRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&request); err != nil {
		return err
	}

	created, err := h.service.Create(ctx, request.toModel())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Background.Handler.Update")
	defer span.End()

	var request backgroundRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&request); err != nil {
		return err
	}

	updated, err := h.service.Update(ctx, c.Param("id"), request.toModel())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Background.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
