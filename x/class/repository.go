//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package class

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

// Repository is the interface for class repository
type Repository interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error)
	Get(ctx context.Context, id string) (core.CharacterClass, error)
	GetByName(ctx context.Context, name string) (core.CharacterClass, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.CharacterClass], error)
	Update(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	CreateSubclass(ctx context.Context, subclass core.Subclass) (core.Subclass, error)
	GetSubclass(ctx context.Context, id string) (core.Subclass, error)
	ListSubclasses(ctx context.Context, classID string) ([]core.Subclass, error)
	DeleteSubclass(ctx context.Context, classID, subclassID string) error
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

// NewRepository creates a new class repository
func NewRepository(db *gorm.DB, rdb *redis.Client, config core.Config) Repository {
	return &repository{db, rdb, config.Catalog.CacheTTL}
}

func cacheKey(id string) string {
	return fmt.Sprintf("class:%s", id)
}

func (r *repository) invalidate(ctx context.Context, id string) {
	err := r.rdb.Del(ctx, cacheKey(id)).Err()
	if err != nil {
		slog.WarnContext(
			ctx, "failed to invalidate class cache",
			slog.String("error", err.Error()),
			slog.String("module", "class"),
		)
	}
}

func (r *repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "Class.Repository.Transaction")
	defer span.End()

	err := util.Transaction(ctx, r.db, fn)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Create inserts a class. Subclasses are created separately.
func (r *repository) Create(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.Create")
	defer span.End()

	if class.ID == "" {
		class.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&class).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterClass{}, util.TranslateError(err)
	}

	return class, nil
}

// Get returns a class with its subclasses, served from redis when cached.
// Inside a transaction the cache is bypassed.
func (r *repository) Get(ctx context.Context, id string) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.CharacterClass{}, core.NewErrorNotFound()
	}

	if util.InTx(ctx) {
		var class core.CharacterClass
		err := util.Conn(ctx, r.db).Preload("Subclasses").First(&class, "id = ?", id).Error
		if err != nil {
			span.RecordError(err)
			return core.CharacterClass{}, util.TranslateError(err)
		}
		return class, nil
	}

	key := cacheKey(id)
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var class core.CharacterClass
		err = json.Unmarshal([]byte(val), &class)
		if err == nil {
			span.AddEvent("cache hit")
			return class, nil
		}
		span.SetStatus(codes.Error, err.Error())
	} else if err != redis.Nil {
		span.RecordError(err)
	}

	var class core.CharacterClass
	err = r.db.WithContext(ctx).Preload("Subclasses").First(&class, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterClass{}, util.TranslateError(err)
	}

	jsonStr, err := json.Marshal(class)
	if err != nil {
		span.RecordError(err)
		return class, nil
	}

	err = r.rdb.Set(ctx, key, jsonStr, r.ttl).Err()
	if err != nil {
		span.RecordError(err)
	}

	return class, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.GetByName")
	defer span.End()

	var class core.CharacterClass
	err := r.db.WithContext(ctx).Preload("Subclasses").First(&class, "name = ?", name).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterClass{}, util.TranslateError(err)
	}

	return class, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.CharacterClass], error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.List")
	defer span.End()

	page, err := listing.Find[core.CharacterClass](ctx, r.db, q)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.CharacterClass]{}, err
	}

	return page, nil
}

// Update replaces every column of an existing class
func (r *repository) Update(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.Update")
	defer span.End()

	if !util.IsUUID(class.ID) {
		return core.CharacterClass{}, core.NewErrorNotFound()
	}

	result := util.Conn(ctx, r.db).
		Model(&core.CharacterClass{ID: class.ID}).
		Select("name", "hit_die", "primary_ability", "saving_throws", "spellcasting_ability", "description").
		Updates(&class)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.CharacterClass{}, util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.CharacterClass{}, core.NewErrorNotFound()
	}

	util.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, class.ID) })

	return r.Get(ctx, class.ID)
}

// Delete removes a class and its subclasses
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Class.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("class_id = ?", id).Delete(&core.Subclass{}).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&core.CharacterClass{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return core.NewErrorNotFound()
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return util.TranslateError(err)
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.CharacterClass{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}

func (r *repository) CreateSubclass(ctx context.Context, subclass core.Subclass) (core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.CreateSubclass")
	defer span.End()

	if subclass.ID == "" {
		subclass.ID = util.NewID()
	}

	err := r.db.WithContext(ctx).Create(&subclass).Error
	if err != nil {
		span.RecordError(err)
		return core.Subclass{}, util.TranslateError(err)
	}

	r.invalidate(ctx, subclass.ClassID)

	return subclass, nil
}

func (r *repository) GetSubclass(ctx context.Context, id string) (core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.GetSubclass")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Subclass{}, core.NewErrorNotFound()
	}

	var subclass core.Subclass
	err := r.db.WithContext(ctx).First(&subclass, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Subclass{}, util.TranslateError(err)
	}

	return subclass, nil
}

func (r *repository) ListSubclasses(ctx context.Context, classID string) ([]core.Subclass, error) {
	ctx, span := tracer.Start(ctx, "Class.Repository.ListSubclasses")
	defer span.End()

	if !util.IsUUID(classID) {
		return []core.Subclass{}, nil
	}

	var subclasses []core.Subclass
	err := r.db.WithContext(ctx).Where("class_id = ?", classID).Order("name").Find(&subclasses).Error
	if err != nil {
		span.RecordError(err)
		return []core.Subclass{}, err
	}
	if subclasses == nil {
		return []core.Subclass{}, nil
	}

	return subclasses, nil
}

func (r *repository) DeleteSubclass(ctx context.Context, classID, subclassID string) error {
	ctx, span := tracer.Start(ctx, "Class.Repository.DeleteSubclass")
	defer span.End()

	if !util.IsUUID(classID) || !util.IsUUID(subclassID) {
		return core.NewErrorNotFound()
	}

	result := r.db.WithContext(ctx).Delete(&core.Subclass{}, "id = ? AND class_id = ?", subclassID, classID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.invalidate(ctx, classID)

	return nil
}
