//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package equipment

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

// Repository is the interface for item repository
type Repository interface {
	Create(ctx context.Context, item core.Item) (core.Item, error)
	Get(ctx context.Context, id string) (core.Item, error)
	GetByName(ctx context.Context, name string) (core.Item, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.Item], error)
	Update(ctx context.Context, item core.Item) (core.Item, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new item repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Create")
	defer span.End()

	if item.ID == "" {
		item.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Create(&item).Error
	if err != nil {
		span.RecordError(err)
		return core.Item{}, util.TranslateError(err)
	}

	return item, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Item{}, core.NewErrorNotFound()
	}

	var item core.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Item{}, util.TranslateError(err)
	}

	return item, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.GetByName")
	defer span.End()

	var item core.Item
	err := r.db.WithContext(ctx).First(&item, "name = ?", name).Error
	if err != nil {
		span.RecordError(err)
		return core.Item{}, util.TranslateError(err)
	}

	return item, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.Item], error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.List")
	defer span.End()

	page, err := listing.Find[core.Item](ctx, r.db, q)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Item]{}, err
	}

	return page, nil
}

func (r *repository) Update(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Update")
	defer span.End()

	if !util.IsUUID(item.ID) {
		return core.Item{}, core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).
		Model(&core.Item{ID: item.ID}).
		Select("name", "category", "cost_cp", "weight", "properties", "description").
		Updates(&item)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Item{}, util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.Item{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, item.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Item.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).Delete(&core.Item{}, "id = ?", id)
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
	ctx, span := tracer.Start(ctx, "Item.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Item{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
