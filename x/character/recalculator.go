package character

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/stats"
	"github.com/totegamma/charsheet/x/util"
)

// recalculate loads the character inside the running transaction and stores its derived stats
func recalculate(ctx context.Context, repo Repository, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.recalculate")
	defer span.End()

	character, err := repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	stats.Recalculate(character).ApplyTo(&character)

	err = repo.SaveDerived(ctx, character)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	return character, nil
}

type recalculator struct {
	repo Repository
}

// NewRecalculator creates the service catalog packages use to keep derived stats current
func NewRecalculator(repo Repository) core.RecalculationService {
	return &recalculator{repo}
}

func (r *recalculator) RecalculateClass(ctx context.Context, classID string) (int, error) {
	ctx, span := tracer.Start(ctx, "Character.Recalculator.RecalculateClass")
	defer span.End()

	ids, err := r.repo.ListIDsByClass(ctx, classID)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to list characters of class")
	}

	return r.recalculateAll(ctx, ids)
}

func (r *recalculator) RecalculateSpecies(ctx context.Context, speciesID string) (int, error) {
	ctx, span := tracer.Start(ctx, "Character.Recalculator.RecalculateSpecies")
	defer span.End()

	ids, err := r.repo.ListIDsBySpecies(ctx, speciesID)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to list characters of species")
	}

	return r.recalculateAll(ctx, ids)
}

func (r *recalculator) recalculateAll(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	err := r.repo.Transaction(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			if _, err := recalculate(ctx, r.repo, id); err != nil {
				return errors.Wrapf(err, "failed to recalculate character %s", id)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	count := len(ids)
	util.AfterCommit(ctx, func(ctx context.Context) {
		recalculations.WithLabelValues(core.RecalcCatalog).Add(float64(count))
		slog.InfoContext(
			ctx, "recalculated characters after catalog change",
			slog.Int("count", count),
			slog.String("module", "character"),
		)
	})

	return count, nil
}
