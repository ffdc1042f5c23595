//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package background

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

// Repository is the interface for background repository
type Repository interface {
	Create(ctx context.Context, background core.Background) (core.Background, error)
	Get(ctx context.Context, id string) (core.Background, error)
	GetByName(ctx context.Context, name string) (core.Background, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.Background], error)
	Update(ctx context.Context, background core.Background) (core.Background, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new background repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, background core.Background) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Repository.Create")
	defer span.End()

	if background.ID == "" {
		background.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Create(&background).Error
	if err != nil {
		span.RecordError(err)
		return core.Background{}, util.TranslateError(err)
	}

	return background, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Background{}, core.NewErrorNotFound()
	}

	var background core.Background
	err := r.db.WithContext(ctx).First(&background, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Background{}, util.TranslateError(err)
	}

	return background, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Repository.GetByName")
	defer span.End()

	var background core.Background
	err := r.db.WithContext(ctx).First(&background, "name = ?", name).Error
	if err != nil {
		span.RecordError(err)
		return core.Background{}, util.TranslateError(err)
	}

	return background, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.Background], error) {
	ctx, span := tracer.Start(ctx, "Background.Repository.List")
	defer span.End()

	page, err := listing.Find[core.Background](ctx, r.db, q)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Background]{}, err
	}

	return page, nil
}

func (r *repository) Update(ctx context.Context, background core.Background) (core.Background, error) {
	ctx, span := tracer.Start(ctx, "Background.Repository.Update")
	defer span.End()

	if !util.IsUUID(background.ID) {
		return core.Background{}, core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).
		Model(&core.Background{ID: background.ID}).
		Select("name", "description", "skill_proficiencies", "feature").
		Updates(&background)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Background{}, util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.Background{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, background.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Background.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).Delete(&core.Background{}, "id = ?", id)
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
	ctx, span := tracer.Start(ctx, "Background.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Background{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
