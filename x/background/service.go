package background

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var listFields = listing.Fields{
	"id":    {Column: "id", Type: listing.String},
	"name":  {Column: "name", Type: listing.String},
	"cdate": {Column: "c_date", Type: listing.Timestamp},
	"mdate": {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo Repository
}

// NewService creates a new background service
func NewService(repo Repository) core.BackgroundService {
	return &service{repo}
}

func (s *service) Create(ctx context.Context, background core.Background) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Service.Create")
	defer span.End()

	background.ID = ""
	background.Name = strings.TrimSpace(background.Name)

	created, err := s.repo.Create(ctx, background)
	if err != nil {
		span.RecordError(err)
		return core.Background{}, errors.Wrap(err, "failed to create background")
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Service.GetByName")
	defer span.End()

	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.Background], error) {
	ctx, span := tracer.Start(ctx, "Background.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, listing.DefaultOrder)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Background]{}, err
	}

	return s.repo.List(ctx, q)
}

func (s *service) Update(ctx context.Context, id string, background core.Background) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Service.Update")
	defer span.End()

	background.ID = id
	background.Name = strings.TrimSpace(background.Name)

	updated, err := s.repo.Update(ctx, background)
	if err != nil {
		span.RecordError(err)
		return core.Background{}, errors.Wrap(err, "failed to update background")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Background.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete background")
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Background.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
