//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package spell

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

// Repository is the interface for spell repository
type Repository interface {
	Create(ctx context.Context, spell core.Spell) (core.Spell, error)
	Get(ctx context.Context, id string) (core.Spell, error)
	GetByName(ctx context.Context, name string) (core.Spell, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.Spell], error)
	Update(ctx context.Context, spell core.Spell) (core.Spell, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new spell repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.Create")
	defer span.End()

	if spell.ID == "" {
		spell.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Create(&spell).Error
	if err != nil {
		span.RecordError(err)
		return core.Spell{}, util.TranslateError(err)
	}

	return spell, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Spell{}, core.NewErrorNotFound()
	}

	var spell core.Spell
	err := r.db.WithContext(ctx).First(&spell, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Spell{}, util.TranslateError(err)
	}

	return spell, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.GetByName")
	defer span.End()

	var spell core.Spell
	err := r.db.WithContext(ctx).First(&spell, "name = ?", name).Error
	if err != nil {
		span.RecordError(err)
		return core.Spell{}, util.TranslateError(err)
	}

	return spell, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.Spell], error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.List")
	defer span.End()

	page, err := listing.Find[core.Spell](ctx, r.db, q)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Spell]{}, err
	}

	return page, nil
}

func (r *repository) Update(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.Update")
	defer span.End()

	if !util.IsUUID(spell.ID) {
		return core.Spell{}, core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).
		Model(&core.Spell{ID: spell.ID}).
		Select("name", "level", "school", "casting_time", "range", "components", "duration", "concentration", "ritual", "classes", "description").
		Updates(&spell)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Spell{}, util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.Spell{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, spell.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Spell.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).Delete(&core.Spell{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Spell.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Spell{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
