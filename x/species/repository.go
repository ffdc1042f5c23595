//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package species

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

// Repository is the interface for species repository
type Repository interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, species core.Species) (core.Species, error)
	Get(ctx context.Context, id string) (core.Species, error)
	GetByName(ctx context.Context, name string) (core.Species, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.Species], error)
	Update(ctx context.Context, species core.Species) (core.Species, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

// NewRepository creates a new species repository
func NewRepository(db *gorm.DB, rdb *redis.Client, config core.Config) Repository {
	return &repository{db, rdb, config.Catalog.CacheTTL}
}

func cacheKey(id string) string {
	return fmt.Sprintf("species:%s", id)
}

func (r *repository) invalidate(ctx context.Context, id string) {
	err := r.rdb.Del(ctx, cacheKey(id)).Err()
	if err != nil {
		slog.WarnContext(
			ctx, "failed to invalidate species cache",
			slog.String("error", err.Error()),
			slog.String("module", "species"),
		)
	}
}

func (r *repository) Create(ctx context.Context, species core.Species) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.Create")
	defer span.End()

	if species.ID == "" {
		species.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Create(&species).Error
	if err != nil {
		span.RecordError(err)
		return core.Species{}, util.TranslateError(err)
	}

	return species, nil
}

func (r *repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "Species.Repository.Transaction")
	defer span.End()

	err := util.Transaction(ctx, r.db, fn)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Get returns a species, served from redis when cached. Inside a transaction the cache is bypassed.
func (r *repository) Get(ctx context.Context, id string) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Species{}, core.NewErrorNotFound()
	}

	if util.InTx(ctx) {
		var species core.Species
		err := util.Conn(ctx, r.db).First(&species, "id = ?", id).Error
		if err != nil {
			span.RecordError(err)
			return core.Species{}, util.TranslateError(err)
		}
		return species, nil
	}

	key := cacheKey(id)
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var species core.Species
		err = json.Unmarshal([]byte(val), &species)
		if err == nil {
			span.AddEvent("cache hit")
			return species, nil
		}
		span.SetStatus(codes.Error, err.Error())
	} else if err != redis.Nil {
		span.RecordError(err)
	}

	var species core.Species
	err = r.db.WithContext(ctx).First(&species, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Species{}, util.TranslateError(err)
	}

	jsonStr, err := json.Marshal(species)
	if err != nil {
		span.RecordError(err)
		return species, nil
	}

	err = r.rdb.Set(ctx, key, jsonStr, r.ttl).Err()
	if err != nil {
		span.RecordError(err)
	}

	return species, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.GetByName")
	defer span.End()

	var species core.Species
	err := r.db.WithContext(ctx).First(&species, "name = ?", name).Error
	if err != nil {
		span.RecordError(err)
		return core.Species{}, util.TranslateError(err)
	}

	return species, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.Species], error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.List")
	defer span.End()

	page, err := listing.Find[core.Species](ctx, r.db, q)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Species]{}, err
	}

	return page, nil
}

func (r *repository) Update(ctx context.Context, species core.Species) (core.Species, error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.Update")
	defer span.End()

	if !util.IsUUID(species.ID) {
		return core.Species{}, core.NewErrorNotFound()
	}

	result := util.Conn(ctx, r.db).
		Model(&core.Species{ID: species.ID}).
		Select("name", "speed", "size", "ability_bonuses", "languages", "traits").
		Updates(&species)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Species{}, util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.Species{}, core.NewErrorNotFound()
	}

	util.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, species.ID) })

	return r.Get(ctx, species.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Species.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).Delete(&core.Species{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Species.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Species{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
