package equipment

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var listFields = listing.Fields{
	"id":       {Column: "id", Type: listing.String},
	"name":     {Column: "name", Type: listing.String},
	"category": {Column: "category", Type: listing.String},
	"costCp":   {Column: "cost_cp", Type: listing.Int},
	"weight":   {Column: "weight", Type: listing.Float},
	"cdate":    {Column: "c_date", Type: listing.Timestamp},
	"mdate":    {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo Repository
}

// NewService creates a new item service
func NewService(repo Repository) core.ItemService {
	return &service{repo}
}

func (s *service) Create(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Create")
	defer span.End()

	item.ID = ""
	item.Name = strings.TrimSpace(item.Name)
	if !item.Category.Valid() {
		return core.Item{}, core.NewErrorInvalidArgument("unknown item category: " + string(item.Category))
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		span.RecordError(err)
		return core.Item{}, errors.Wrap(err, "failed to create item")
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.GetByName")
	defer span.End()

	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.Item], error) {
	ctx, span := tracer.Start(ctx, "Item.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, "name")
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Item]{}, err
	}

	return s.repo.List(ctx, q)
}

func (s *service) Update(ctx context.Context, id string, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Update")
	defer span.End()

	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	if !item.Category.Valid() {
		return core.Item{}, core.NewErrorInvalidArgument("unknown item category: " + string(item.Category))
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		span.RecordError(err)
		return core.Item{}, errors.Wrap(err, "failed to update item")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Item.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete item")
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
