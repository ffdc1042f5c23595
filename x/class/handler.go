// Package class manages the character classes of the catalog and their subclasses
package class

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var tracer = otel.Tracer("class")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error

	ListSubclasses(c echo.Context) error
	CreateSubclass(c echo.Context) error
	DeleteSubclass(c echo.Context) error
}

type handler struct {
	service core.ClassService
}

// NewHandler creates a new handler
func NewHandler(service core.ClassService) Handler {
	return &handler{service: service}
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.Get")
	defer span.End()

	class, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": class})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.List")
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
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.Create")
	defer span.End()

	var request classRequest
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
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.Update")
	defer span.End()

	var request classRequest
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
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h handler) ListSubclasses(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.ListSubclasses")
	defer span.End()

	subclasses, err := h.service.ListSubclasses(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": subclasses})
}

func (h handler) CreateSubclass(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.CreateSubclass")
	defer span.End()

	var request subclassRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&request); err != nil {
		return err
	}

	created, err := h.service.CreateSubclass(ctx, c.Param("id"), request.toModel())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) DeleteSubclass(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Class.Handler.DeleteSubclass")
	defer span.End()

	err := h.service.DeleteSubclass(ctx, c.Param("id"), c.Param("subclassId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
