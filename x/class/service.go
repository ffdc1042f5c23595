package class

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var listFields = listing.Fields{
	"id":                  {Column: "id", Type: listing.String},
	"name":                {Column: "name", Type: listing.String},
	"hitDie":              {Column: "hit_die", Type: listing.String},
	"primaryAbility":      {Column: "primary_ability", Type: listing.String},
	"spellcastingAbility": {Column: "spellcasting_ability", Type: listing.String},
	"cdate":               {Column: "c_date", Type: listing.Timestamp},
	"mdate":               {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo   Repository
	recalc core.RecalculationService
}

// NewService creates a new class service
func NewService(repo Repository, recalc core.RecalculationService) core.ClassService {
	return &service{repo, recalc}
}

func (s *service) Create(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.Create")
	defer span.End()

	class.ID = ""
	class.Name = strings.TrimSpace(class.Name)
	class.Subclasses = nil

	created, err := s.repo.Create(ctx, class)
	if err != nil {
		span.RecordError(err)
		return core.CharacterClass{}, errors.Wrap(err, "failed to create class")
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.GetByName")
	defer span.End()

	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.CharacterClass], error) {
	ctx, span := tracer.Start(ctx, "Class.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, listing.DefaultOrder)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.CharacterClass]{}, err
	}

	return s.repo.List(ctx, q)
}

// Update replaces the class fields. Subclasses are left untouched.
// Changing the hit die recalculates every character of the class in the same transaction.
func (s *service) Update(ctx context.Context, id string, class core.CharacterClass) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.Update")
	defer span.End()

	class.ID = id
	class.Name = strings.TrimSpace(class.Name)
	class.Subclasses = nil

	var updated core.CharacterClass
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		previous, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		updated, err = s.repo.Update(ctx, class)
		if err != nil {
			return err
		}

		if previous.HitDie == updated.HitDie {
			return nil
		}

		_, err = s.recalc.RecalculateClass(ctx, id)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.CharacterClass{}, errors.Wrap(err, "failed to update class")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Class.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete class")
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// CreateSubclass adds a subclass to an existing class
func (s *service) CreateSubclass(ctx context.Context, classID string, subclass core.Subclass) (core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.CreateSubclass")
	defer span.End()

	_, err := s.repo.Get(ctx, classID)
	if err != nil {
		span.RecordError(err)
		return core.Subclass{}, err
	}

	subclass.ID = ""
	subclass.ClassID = classID
	subclass.Name = strings.TrimSpace(subclass.Name)

	created, err := s.repo.CreateSubclass(ctx, subclass)
	if err != nil {
		span.RecordError(err)
		return core.Subclass{}, errors.Wrap(err, "failed to create subclass")
	}

	return created, nil
}

func (s *service) GetSubclass(ctx context.Context, id string) (core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.GetSubclass")
	defer span.End()

	return s.repo.GetSubclass(ctx, id)
}

func (s *service) ListSubclasses(ctx context.Context, classID string) ([]core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Service.ListSubclasses")
	defer span.End()

	_, err := s.repo.Get(ctx, classID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repo.ListSubclasses(ctx, classID)
}

func (s *service) DeleteSubclass(ctx context.Context, classID, subclassID string) error {
	ctx, span := tracer.Start(ctx, "Class.Service.DeleteSubclass")
	defer span.End()

	err := s.repo.DeleteSubclass(ctx, classID, subclassID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete subclass")
	}

	return nil
}
