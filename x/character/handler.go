// Package character handles character sheets, their inventory and spellbook
package character

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	UpdateAbilityScores(c echo.Context) error

	ListItems(c echo.Context) error
	AddItem(c echo.Context) error
	UpdateItem(c echo.Context) error
	RemoveItem(c echo.Context) error

	ListSpells(c echo.Context) error
	LearnSpell(c echo.Context) error
	UpdateSpell(c echo.Context) error
	ForgetSpell(c echo.Context) error
}

type handler struct {
	service core.CharacterService
}

// NewHandler creates a new handler
func NewHandler(service core.CharacterService) Handler {
	return &handler{service: service}
}

func bind(c echo.Context, request any) error {
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(request)
}

// Get returns a character with its relations
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Get")
	defer span.End()

	character, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": character})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.List")
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
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	var request createRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	created, err := h.service.Create(ctx, request.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	var request updateRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	updated, err := h.service.Update(ctx, c.Param("id"), request.toPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h handler) UpdateAbilityScores(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.UpdateAbilityScores")
	defer span.End()

	var request abilityScoresRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	updated, err := h.service.UpdateAbilityScores(ctx, c.Param("id"), request.toModel())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) ListItems(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.ListItems")
	defer span.End()

	items, err := h.service.ListItems(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": items})
}

func (h handler) AddItem(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.AddItem")
	defer span.End()

	var request addItemRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	entry, err := h.service.AddItem(ctx, c.Param("id"), request.ItemID, request.Quantity, request.Equipped)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": entry})
}

func (h handler) UpdateItem(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.UpdateItem")
	defer span.End()

	var request updateItemRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	entry, err := h.service.UpdateItem(ctx, c.Param("id"), c.Param("itemId"), core.CharacterItemPatch{
		Quantity: request.Quantity,
		Equipped: request.Equipped,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": entry})
}

func (h handler) RemoveItem(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.RemoveItem")
	defer span.End()

	err := h.service.RemoveItem(ctx, c.Param("id"), c.Param("itemId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h handler) ListSpells(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.ListSpells")
	defer span.End()

	spells, err := h.service.ListSpells(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": spells})
}

func (h handler) LearnSpell(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.LearnSpell")
	defer span.End()

	var request learnSpellRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	entry, err := h.service.LearnSpell(ctx, c.Param("id"), request.SpellID, request.Prepared)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": entry})
}

func (h handler) UpdateSpell(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.UpdateSpell")
	defer span.End()

	var request updateSpellRequest
	if err := bind(c, &request); err != nil {
		return err
	}

	entry, err := h.service.UpdateSpell(ctx, c.Param("id"), c.Param("spellId"), request.Prepared)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": entry})
}

func (h handler) ForgetSpell(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.ForgetSpell")
	defer span.End()

	err := h.service.ForgetSpell(ctx, c.Param("id"), c.Param("spellId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
