//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package character

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
	"github.com/totegamma/charsheet/x/util"
)

const countKey = "character_count"

// Repository is the interface for character repository
type Repository interface {
	// Transaction runs fn in a database transaction. Repository calls made with the ctx passed to fn join it,
	// including those of other packages going through util.Conn.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, character core.Character) (core.Character, error)
	Get(ctx context.Context, id string) (core.Character, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, q listing.Query) (core.Page[core.Character], error)
	Update(ctx context.Context, character core.Character, columns []string) error
	ListIDsByClass(ctx context.Context, classID string) ([]string, error)
	ListIDsBySpecies(ctx context.Context, speciesID string) ([]string, error)
	SaveDerived(ctx context.Context, character core.Character) error
	UpsertAbilityScore(ctx context.Context, scores core.AbilityScore) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	ListItems(ctx context.Context, characterID string) ([]core.CharacterItem, error)
	GetItem(ctx context.Context, characterID, itemID string) (core.CharacterItem, error)
	SaveItem(ctx context.Context, entry core.CharacterItem) (core.CharacterItem, error)
	DeleteItem(ctx context.Context, characterID, itemID string) error

	ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error)
	GetSpell(ctx context.Context, characterID, spellID string) (core.CharacterSpell, error)
	CreateSpell(ctx context.Context, entry core.CharacterSpell) (core.CharacterSpell, error)
	UpdateSpell(ctx context.Context, entry core.CharacterSpell) (core.CharacterSpell, error)
	DeleteSpell(ctx context.Context, characterID, spellID string) error
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return util.Conn(ctx, r.db)
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count characters",
			slog.String("error", err.Error()),
			slog.String("module", "character"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
}

func (r *repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.Transaction")
	defer span.End()

	err := util.Transaction(ctx, r.db, fn)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Create inserts the character row only. Ability scores are written with UpsertAbilityScore.
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	if character.ID == "" {
		character.ID = util.NewID()
	}

	err := r.conn(ctx).Omit(clause.Associations).Create(&character).Error
	if err != nil {
		span.RecordError(err)
		return core.Character{}, util.TranslateError(err)
	}

	util.AfterCommit(ctx, r.refreshCount)

	return character, nil
}

// Get returns a character with every relation loaded
func (r *repository) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Get")
	defer span.End()

	if !util.IsUUID(id) {
		return core.Character{}, core.NewErrorNotFound()
	}

	var character core.Character
	err := r.conn(ctx).
		Preload("Class.Subclasses").
		Preload("Subclass").
		Preload("Species").
		Preload("Background").
		Preload("AbilityScore").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("c_date") }).
		Preload("Items.Item").
		Preload("Spells", func(db *gorm.DB) *gorm.DB { return db.Order("c_date") }).
		Preload("Spells.Spell").
		First(&character, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return core.Character{}, util.TranslateError(err)
	}

	return character, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Exists")
	defer span.End()

	if !util.IsUUID(id) {
		return false, nil
	}

	var count int64
	err := r.conn(ctx).Model(&core.Character{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return count > 0, nil
}

func (r *repository) List(ctx context.Context, q listing.Query) (core.Page[core.Character], error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.List")
	defer span.End()

	page, err := listing.Find[core.Character](ctx, r.conn(ctx), q, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Class").Preload("Subclass").Preload("Species").Preload("Background").Preload("AbilityScore")
	})
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Character]{}, err
	}

	return page, nil
}

func (r *repository) ListIDsByClass(ctx context.Context, classID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.ListIDsByClass")
	defer span.End()

	return r.listIDs(ctx, "class_id", classID)
}

func (r *repository) ListIDsBySpecies(ctx context.Context, speciesID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.ListIDsBySpecies")
	defer span.End()

	return r.listIDs(ctx, "species_id", speciesID)
}

func (r *repository) listIDs(ctx context.Context, column, value string) ([]string, error) {
	ids := []string{}
	if !util.IsUUID(value) {
		return ids, nil
	}

	err := r.conn(ctx).Model(&core.Character{}).Where(column+" = ?", value).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return []string{}, err
	}

	return ids, nil
}

// Update writes the given columns of the character row
func (r *repository) Update(ctx context.Context, character core.Character, columns []string) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	if len(columns) == 0 {
		return nil
	}

	columns = append(columns, "m_date")

	row := character
	row.Class, row.Subclass, row.Species, row.Background = nil, nil, nil, nil
	row.AbilityScore, row.Items, row.Spells = nil, nil, nil

	result := r.conn(ctx).Model(&core.Character{ID: character.ID}).Select(columns).Updates(&row)
	if result.Error != nil {
		span.RecordError(result.Error)
		return util.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

// SaveDerived persists the computed stats of character
func (r *repository) SaveDerived(ctx context.Context, character core.Character) error {
	return r.Update(ctx, character, []string{
		"max_hit_points",
		"current_hit_points",
		"speed",
		"proficiency_bonus",
		"initiative_bonus",
		"armor_class",
	})
}

func (r *repository) UpsertAbilityScore(ctx context.Context, scores core.AbilityScore) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.UpsertAbilityScore")
	defer span.End()

	err := r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "character_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma", "m_date"}),
	}).Create(&scores).Error
	if err != nil {
		span.RecordError(err)
		return util.TranslateError(err)
	}

	return nil
}

// Delete soft-deletes a character
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	if !util.IsUUID(id) {
		return core.NewErrorNotFound()
	}

	result := r.conn(ctx).Delete(&core.Character{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	util.AfterCommit(ctx, r.refreshCount)

	return nil
}

// Count returns the number of live characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		var count int64
		err = r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
		if err != nil {
			span.RecordError(err)
			return 0, err
		}
		r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
		return count, nil
	}
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

func (r *repository) ListItems(ctx context.Context, characterID string) ([]core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.ListItems")
	defer span.End()

	if !util.IsUUID(characterID) {
		return []core.CharacterItem{}, nil
	}

	var items []core.CharacterItem
	err := r.conn(ctx).Preload("Item").Where("character_id = ?", characterID).Order("c_date").Find(&items).Error
	if err != nil {
		span.RecordError(err)
		return []core.CharacterItem{}, err
	}
	if items == nil {
		return []core.CharacterItem{}, nil
	}

	return items, nil
}

func (r *repository) GetItem(ctx context.Context, characterID, itemID string) (core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetItem")
	defer span.End()

	if !util.IsUUID(characterID) || !util.IsUUID(itemID) {
		return core.CharacterItem{}, core.NewErrorNotFound()
	}

	var entry core.CharacterItem
	err := r.conn(ctx).Preload("Item").First(&entry, "character_id = ? AND item_id = ?", characterID, itemID).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, util.TranslateError(err)
	}

	return entry, nil
}

// SaveItem inserts or replaces an inventory entry
func (r *repository) SaveItem(ctx context.Context, entry core.CharacterItem) (core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.SaveItem")
	defer span.End()

	item := entry.Item
	entry.Item = nil

	err := r.conn(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "character_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "equipped", "m_date"}),
	}).Create(&entry).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, util.TranslateError(err)
	}

	entry.Item = item
	return entry, nil
}

func (r *repository) DeleteItem(ctx context.Context, characterID, itemID string) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.DeleteItem")
	defer span.End()

	if !util.IsUUID(characterID) || !util.IsUUID(itemID) {
		return core.NewErrorNotFound()
	}

	result := r.conn(ctx).Delete(&core.CharacterItem{}, "character_id = ? AND item_id = ?", characterID, itemID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.ListSpells")
	defer span.End()

	if !util.IsUUID(characterID) {
		return []core.CharacterSpell{}, nil
	}

	var spells []core.CharacterSpell
	err := r.conn(ctx).Preload("Spell").Where("character_id = ?", characterID).Order("c_date").Find(&spells).Error
	if err != nil {
		span.RecordError(err)
		return []core.CharacterSpell{}, err
	}
	if spells == nil {
		return []core.CharacterSpell{}, nil
	}

	return spells, nil
}

func (r *repository) GetSpell(ctx context.Context, characterID, spellID string) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetSpell")
	defer span.End()

	if !util.IsUUID(characterID) || !util.IsUUID(spellID) {
		return core.CharacterSpell{}, core.NewErrorNotFound()
	}

	var entry core.CharacterSpell
	err := r.conn(ctx).Preload("Spell").First(&entry, "character_id = ? AND spell_id = ?", characterID, spellID).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, util.TranslateError(err)
	}

	return entry, nil
}

// CreateSpell adds a spell to the spellbook. A spell already known is AlreadyExists.
func (r *repository) CreateSpell(ctx context.Context, entry core.CharacterSpell) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.CreateSpell")
	defer span.End()

	spell := entry.Spell
	entry.Spell = nil

	err := r.conn(ctx).Omit(clause.Associations).Create(&entry).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, util.TranslateError(err)
	}

	entry.Spell = spell
	return entry, nil
}

func (r *repository) UpdateSpell(ctx context.Context, entry core.CharacterSpell) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.UpdateSpell")
	defer span.End()

	if !util.IsUUID(entry.CharacterID) || !util.IsUUID(entry.SpellID) {
		return core.CharacterSpell{}, core.NewErrorNotFound()
	}

	result := r.conn(ctx).
		Model(&core.CharacterSpell{}).
		Where("character_id = ? AND spell_id = ?", entry.CharacterID, entry.SpellID).
		Update("prepared", entry.Prepared)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.CharacterSpell{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.CharacterSpell{}, core.NewErrorNotFound()
	}

	return entry, nil
}

func (r *repository) DeleteSpell(ctx context.Context, characterID, spellID string) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.DeleteSpell")
	defer span.End()

	if !util.IsUUID(characterID) || !util.IsUUID(spellID) {
		return core.NewErrorNotFound()
	}

	result := r.conn(ctx).Delete(&core.CharacterSpell{}, "character_id = ? AND spell_id = ?", characterID, spellID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}
