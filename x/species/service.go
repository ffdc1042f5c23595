package species

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

const defaultSpeed = 30

var listFields = listing.Fields{
	"id":    {Column: "id", Type: listing.String},
	"name":  {Column: "name", Type: listing.String},
	"speed": {Column: "speed", Type: listing.Int},
	"size":  {Column: "size", Type: listing.String},
	"cdate": {Column: "c_date", Type: listing.Timestamp},
	"mdate": {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo   Repository
	recalc core.RecalculationService
}

// NewService creates a new species service
func NewService(repo Repository, recalc core.RecalculationService) core.SpeciesService {
	return &service{repo, recalc}
}

func normalize(species core.Species) core.Species {
	species.Name = strings.TrimSpace(species.Name)
	if species.Speed <= 0 {
		species.Speed = defaultSpeed
	}
	if species.AbilityBonuses == nil {
		species.AbilityBonuses = core.AbilityBonuses{}
	}
	return species
}

func (s *service) Create(ctx context.Context, species core.Species) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Service.Create")
	defer span.End()

	species.ID = ""
	created, err := s.repo.Create(ctx, normalize(species))
	if err != nil {
		span.RecordError(err)
		return core.Species{}, errors.Wrap(err, "failed to create species")
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Service.GetByName")
	defer span.End()

	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.Species], error) {
	ctx, span := tracer.Start(ctx, "Species.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, listing.DefaultOrder)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Species]{}, err
	}

	return s.repo.List(ctx, q)
}

// Update replaces the species. A new speed is pushed to every character of the species.
func (s *service) Update(ctx context.Context, id string, species core.Species) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Service.Update")
	defer span.End()

	species.ID = id

	var updated core.Species
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		previous, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		updated, err = s.repo.Update(ctx, normalize(species))
		if err != nil {
			return err
		}

		if previous.Speed == updated.Speed {
			return nil
		}

		_, err = s.recalc.RecalculateSpecies(ctx, id)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.Species{}, errors.Wrap(err, "failed to update species")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Species.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete species")
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Species.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
