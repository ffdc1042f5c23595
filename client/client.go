//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/charsheet/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client reads reference data from a dnd5eapi compatible SRD server
type Client interface {
	List(ctx context.Context, resource string) ([]Reference, error)
	GetClass(ctx context.Context, index string) (Class, error)
	GetSubclass(ctx context.Context, index string) (Subclass, error)
	GetRace(ctx context.Context, index string) (Race, error)
	GetBackground(ctx context.Context, index string) (Background, error)
	GetEquipment(ctx context.Context, index string) (Equipment, error)
	GetSpell(ctx context.Context, index string) (Spell, error)
}

type client struct {
	baseURL string
	http    *http.Client
}

func NewClient(config core.Config) Client {
	return &client{
		baseURL: strings.TrimRight(config.SRD.BaseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func get[T any](ctx context.Context, c *client, path string) (T, error) {
	var result T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/"+path, nil)
	if err != nil {
		return result, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return result, core.NewErrorNotFound()
	}
	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("srd server returned %d for %s", resp.StatusCode, path)
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return result, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return result, nil
}

func (c *client) List(ctx context.Context, resource string) ([]Reference, error) {
	ctx, span := tracer.Start(ctx, "Client.List")
	defer span.End()

	list, err := get[ResourceList](ctx, c, resource)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return list.Results, nil
}

func (c *client) GetClass(ctx context.Context, index string) (Class, error) {
	ctx, span := tracer.Start(ctx, "Client.GetClass")
	defer span.End()

	class, err := get[Class](ctx, c, "classes/"+index)
	if err != nil {
		span.RecordError(err)
		return Class{}, err
	}

	return class, nil
}

func (c *client) GetSubclass(ctx context.Context, index string) (Subclass, error) {
	ctx, span := tracer.Start(ctx, "Client.GetSubclass")
	defer span.End()

	subclass, err := get[Subclass](ctx, c, "subclasses/"+index)
	if err != nil {
		span.RecordError(err)
		return Subclass{}, err
	}

	return subclass, nil
}

func (c *client) GetRace(ctx context.Context, index string) (Race, error) {
	ctx, span := tracer.Start(ctx, "Client.GetRace")
	defer span.End()

	race, err := get[Race](ctx, c, "races/"+index)
	if err != nil {
		span.RecordError(err)
		return Race{}, err
	}

	return race, nil
}

func (c *client) GetBackground(ctx context.Context, index string) (Background, error) {
	ctx, span := tracer.Start(ctx, "Client.GetBackground")
	defer span.End()

	background, err := get[Background](ctx, c, "backgrounds/"+index)
	if err != nil {
		span.RecordError(err)
		return Background{}, err
	}

	return background, nil
}

func (c *client) GetEquipment(ctx context.Context, index string) (Equipment, error) {
	ctx, span := tracer.Start(ctx, "Client.GetEquipment")
	defer span.End()

	equipment, err := get[Equipment](ctx, c, "equipment/"+index)
	if err != nil {
		span.RecordError(err)
		return Equipment{}, err
	}

	return equipment, nil
}

func (c *client) GetSpell(ctx context.Context, index string) (Spell, error) {
	ctx, span := tracer.Start(ctx, "Client.GetSpell")
	defer span.End()

	spell, err := get[Spell](ctx, c, "spells/"+index)
	if err != nil {
		span.RecordError(err)
		return Spell{}, err
	}

	return spell, nil
}
