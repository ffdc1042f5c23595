//go:build wireinject

package charsheet

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/charsheet/client"
	"github.com/totegamma/charsheet/core"

	"github.com/totegamma/charsheet/x/background"
	"github.com/totegamma/charsheet/x/character"
	"github.com/totegamma/charsheet/x/class"
	"github.com/totegamma/charsheet/x/equipment"
	"github.com/totegamma/charsheet/x/species"
	"github.com/totegamma/charsheet/x/spell"
	"github.com/totegamma/charsheet/x/srd"
)

// Lv0
var recalculationServiceProvider = wire.NewSet(character.NewRecalculator, character.NewRepository)
var backgroundServiceProvider = wire.NewSet(background.NewService, background.NewRepository)
var itemServiceProvider = wire.NewSet(equipment.NewService, equipment.NewRepository)
var spellServiceProvider = wire.NewSet(spell.NewService, spell.NewRepository)

// Lv1
var classServiceProvider = wire.NewSet(class.NewService, class.NewRepository, SetupRecalculationService)
var speciesServiceProvider = wire.NewSet(species.NewService, species.NewRepository, SetupRecalculationService)

// Lv2
var characterServiceProvider = wire.NewSet(
	character.NewService,
	character.NewRepository,
	SetupClassService,
	SetupSpeciesService,
	SetupBackgroundService,
	SetupItemService,
	SetupSpellService,
)
var srdServiceProvider = wire.NewSet(
	srd.NewService,
	client.NewClient,
	SetupClassService,
	SetupSpeciesService,
	SetupBackgroundService,
	SetupItemService,
	SetupSpellService,
)

// -----------

func SetupRecalculationService(db *gorm.DB, mc *memcache.Client) core.RecalculationService {
	wire.Build(recalculationServiceProvider)
	return nil
}

func SetupClassService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.ClassService {
	wire.Build(classServiceProvider)
	return nil
}

func SetupSpeciesService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.SpeciesService {
	wire.Build(speciesServiceProvider)
	return nil
}

func SetupBackgroundService(db *gorm.DB) core.BackgroundService {
	wire.Build(backgroundServiceProvider)
	return nil
}

func SetupItemService(db *gorm.DB) core.ItemService {
	wire.Build(itemServiceProvider)
	return nil
}

func SetupSpellService(db *gorm.DB) core.SpellService {
	wire.Build(spellServiceProvider)
	return nil
}

func SetupCharacterService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.CharacterService {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupSRDService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) srd.Service {
	wire.Build(srdServiceProvider)
	return nil
}
