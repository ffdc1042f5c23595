package spell

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

const maxSpellLevel = 9

var listFields = listing.Fields{
	"id":            {Column: "id", Type: listing.String},
	"name":          {Column: "name", Type: listing.String},
	"level":         {Column: "level", Type: listing.Int},
	"school":        {Column: "school", Type: listing.String},
	"concentration": {Column: "concentration", Type: listing.Bool},
	"ritual":        {Column: "ritual", Type: listing.Bool},
	"cdate":         {Column: "c_date", Type: listing.Timestamp},
	"mdate":         {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo Repository
}

// NewService creates a new spell service
func NewService(repo Repository) core.SpellService {
	return &service{repo}
}

func check(spell core.Spell) error {
	if spell.Level < 0 || spell.Level > maxSpellLevel {
		return core.NewErrorInvalidArgument("spell level must be between 0 and 9")
	}
	if !spell.School.Valid() {
		return core.NewErrorInvalidArgument("unknown spell school: " + string(spell.School))
	}
	return nil
}

func (s *service) Create(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.Create")
	defer span.End()

	spell.ID = ""
	spell.Name = strings.TrimSpace(spell.Name)
	if err := check(spell); err != nil {
		return core.Spell{}, err
	}

	created, err := s.repo.Create(ctx, spell)
	if err != nil {
		span.RecordError(err)
		return core.Spell{}, errors.Wrap(err, "failed to create spell")
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.GetByName")
	defer span.End()

	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.Spell], error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, "level, name")
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Spell]{}, err
	}

	return s.repo.List(ctx, q)
}

func (s *service) Update(ctx context.Context, id string, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.Update")
	defer span.End()

	spell.ID = id
	spell.Name = strings.TrimSpace(spell.Name)
	if err := check(spell); err != nil {
		return core.Spell{}, err
	}

	updated, err := s.repo.Update(ctx, spell)
	if err != nil {
		span.RecordError(err)
		return core.Spell{}, errors.Wrap(err, "failed to update spell")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Spell.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete spell")
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Spell.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
