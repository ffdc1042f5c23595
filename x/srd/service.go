package srd

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/totegamma/charsheet/client"
	"github.com/totegamma/charsheet/core"
)

// importable resources, named as the SRD API names them
const (
	Classes     = "classes"
	Races       = "races"
	Backgrounds = "backgrounds"
	Equipment   = "equipment"
	Spells      = "spells"
)

var Resources = []string{Classes, Races, Backgrounds, Equipment, Spells}

// Result counts the outcome of importing one resource
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// Report is keyed by resource
type Report map[string]Result

// Service is the interface for the SRD importer
type Service interface {
	Import(ctx context.Context, resources []string) (Report, error)
}

type service struct {
	client      client.Client
	class       core.ClassService
	species     core.SpeciesService
	background  core.BackgroundService
	item        core.ItemService
	spell       core.SpellService
	concurrency int
}

// NewService creates a new SRD import service
func NewService(
	client client.Client,
	class core.ClassService,
	species core.SpeciesService,
	background core.BackgroundService,
	item core.ItemService,
	spell core.SpellService,
	config core.Config,
) Service {
	concurrency := config.SRD.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &service{
		client,
		class,
		species,
		background,
		item,
		spell,
		concurrency,
	}
}

// Import fetches every entry of the given resources and upserts it by name.
// A failing entry is counted and logged; only a failing index listing aborts the import.
func (s *service) Import(ctx context.Context, resources []string) (Report, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.Import")
	defer span.End()

	if len(resources) == 0 {
		resources = Resources
	}

	importers := make([]func(context.Context, string) (bool, error), 0, len(resources))
	for _, resource := range resources {
		importer := s.importer(resource)
		if importer == nil {
			return nil, core.NewErrorInvalidArgument("unknown resource " + resource)
		}
		importers = append(importers, importer)
	}

	var mu sync.Mutex
	report := Report{}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for i, resource := range resources {
		refs, err := s.client.List(gctx, resource)
		if err != nil {
			span.RecordError(err)
			_ = group.Wait()
			return report, errors.Wrap(err, "failed to list "+resource)
		}

		mu.Lock()
		report[resource] = Result{}
		mu.Unlock()

		importer := importers[i]
		for _, ref := range refs {
			group.Go(func() error {
				created, err := importer(gctx, ref.Index)

				mu.Lock()
				defer mu.Unlock()
				result := report[resource]
				switch {
				case err != nil:
					result.Failed++
					slog.WarnContext(
						gctx, "failed to import srd entry",
						slog.String("error", err.Error()),
						slog.String("resource", resource),
						slog.String("index", ref.Index),
						slog.String("module", "srd"),
					)
				case created:
					result.Created++
				default:
					result.Updated++
				}
				report[resource] = result

				return gctx.Err()
			})
		}
	}

	if err := group.Wait(); err != nil {
		span.RecordError(err)
		return report, err
	}

	return report, nil
}

func (s *service) importer(resource string) func(context.Context, string) (bool, error) {
	switch resource {
	case Classes:
		return s.importClass
	case Races:
		return s.importRace
	case Backgrounds:
		return s.importBackground
	case Equipment:
		return s.importEquipment
	case Spells:
		return s.importSpell
	}
	return nil
}

// upsert creates value, or replaces the stored object of the same name. created reports which happened.
func upsert[T any](
	ctx context.Context,
	name string,
	value T,
	getByName func(context.Context, string) (T, error),
	create func(context.Context, T) (T, error),
	update func(context.Context, string, T) (T, error),
	idOf func(T) string,
) (stored T, created bool, err error) {
	existing, err := getByName(ctx, name)
	if err != nil {
		if !errors.As(err, &core.ErrorNotFound{}) {
			return stored, false, err
		}
		stored, err = create(ctx, value)
		return stored, true, err
	}

	stored, err = update(ctx, idOf(existing), value)
	return stored, false, err
}

func (s *service) importClass(ctx context.Context, index string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.importClass")
	defer span.End()

	remote, err := s.client.GetClass(ctx, index)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	class := toClass(remote)
	stored, created, err := upsert(ctx, class.Name, class, s.class.GetByName, s.class.Create, s.class.Update,
		func(c core.CharacterClass) string { return c.ID })
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	known, err := s.class.ListSubclasses(ctx, stored.ID)
	if err != nil {
		span.RecordError(err)
		return created, err
	}
	have := make(map[string]bool, len(known))
	for _, subclass := range known {
		have[subclass.Name] = true
	}

	for _, ref := range remote.Subclasses {
		if have[ref.Name] {
			continue
		}
		subclass := core.Subclass{Name: ref.Name}
		if detail, err := s.client.GetSubclass(ctx, ref.Index); err == nil {
			subclass.Description = strings.Join(detail.Desc, "\n")
		}
		_, err := s.class.CreateSubclass(ctx, stored.ID, subclass)
		if err != nil {
			span.RecordError(err)
			return created, err
		}
	}

	return created, nil
}

func (s *service) importRace(ctx context.Context, index string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.importRace")
	defer span.End()

	remote, err := s.client.GetRace(ctx, index)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	species := toSpecies(remote)
	_, created, err := upsert(ctx, species.Name, species, s.species.GetByName, s.species.Create, s.species.Update,
		func(s core.Species) string { return s.ID })
	if err != nil {
		span.RecordError(err)
	}
	return created, err
}

func (s *service) importBackground(ctx context.Context, index string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.importBackground")
	defer span.End()

	remote, err := s.client.GetBackground(ctx, index)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	background := toBackground(remote)
	_, created, err := upsert(ctx, background.Name, background, s.background.GetByName, s.background.Create, s.background.Update,
		func(b core.Background) string { return b.ID })
	if err != nil {
		span.RecordError(err)
	}
	return created, err
}

func (s *service) importEquipment(ctx context.Context, index string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.importEquipment")
	defer span.End()

	remote, err := s.client.GetEquipment(ctx, index)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	item := toItem(remote)
	_, created, err := upsert(ctx, item.Name, item, s.item.GetByName, s.item.Create, s.item.Update,
		func(i core.Item) string { return i.ID })
	if err != nil {
		span.RecordError(err)
	}
	return created, err
}

func (s *service) importSpell(ctx context.Context, index string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SRD.Service.importSpell")
	defer span.End()

	remote, err := s.client.GetSpell(ctx, index)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	spell := toSpell(remote)
	_, created, err := upsert(ctx, spell.Name, spell, s.spell.GetByName, s.spell.Create, s.spell.Update,
		func(s core.Spell) string { return s.ID })
	if err != nil {
		span.RecordError(err)
	}
	return created, err
}
