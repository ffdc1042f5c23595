package character

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/internal/testutil"
	"github.com/totegamma/charsheet/x/class"
	"github.com/totegamma/charsheet/x/listing"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB(t)
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC(t)
	defer cleanup_mc()

	// catalog rows referenced by the character
	assert.NoError(t, db.Create(&core.CharacterClass{ID: FighterID, Name: "Fighter", HitDie: core.D10}).Error)
	assert.NoError(t, db.Create(&core.Subclass{ID: ChampionID, ClassID: FighterID, Name: "Champion"}).Error)
	assert.NoError(t, db.Create(&core.Species{ID: HumanID, Name: "Human", Speed: 30}).Error)
	assert.NoError(t, db.Create(&core.Background{ID: SoldierID, Name: "Soldier"}).Error)
	assert.NoError(t, db.Create(&core.Item{ID: LongswordID, Name: "Longsword", Category: core.ItemWeapon}).Error)
	assert.NoError(t, db.Create(&core.Spell{ID: MagicMissile, Name: "Magic Missile", Level: 1, School: core.Evocation}).Error)

	repo := NewRepository(db, mc)

	var created core.Character
	err := repo.Transaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = repo.Create(ctx, core.Character{
			Name:         "Aria",
			ClassID:      FighterID,
			SpeciesID:    HumanID,
			BackgroundID: SoldierID,
			Alignment:    core.LawfulGood,
			Level:        1,
		})
		if err != nil {
			return err
		}
		return repo.UpsertAbilityScore(ctx, core.AbilityScore{
			CharacterID:  created.ID,
			Strength:     15,
			Dexterity:    12,
			Constitution: 14,
			Intelligence: 10,
			Wisdom:       10,
			Charisma:     8,
		})
	})
	if !assert.NoError(t, err) {
		return
	}
	assert.NotEmpty(t, created.ID)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}

	// a failing transaction leaves nothing behind
	err = repo.Transaction(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, core.Character{
			Name:         "Ghost",
			ClassID:      FighterID,
			SpeciesID:    HumanID,
			BackgroundID: SoldierID,
			Alignment:    core.TrueNeutral,
			Level:        1,
		})
		if err != nil {
			return err
		}
		return core.NewErrorInvalidArgument("abort")
	})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	page, err := repo.List(ctx, listing.Query{Page: 1, PageSize: 10})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), page.Total)
	}

	found, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Fighter", found.Class.Name)
		assert.Len(t, found.Class.Subclasses, 1)
		assert.Equal(t, 14, found.AbilityScore.Constitution)
	}

	found.MaxHitPoints = 12
	found.CurrentHitPoints = 12
	found.ArmorClass = 11
	assert.NoError(t, repo.SaveDerived(ctx, found))

	subclass := ChampionID
	found.SubclassID = &subclass
	found.Name = "Aria Stormborn"
	assert.NoError(t, repo.Update(ctx, found, []string{"name", "subclass_id"}))

	found, err = repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Aria Stormborn", found.Name)
		assert.Equal(t, 12, found.MaxHitPoints)
		assert.Equal(t, "Champion", found.Subclass.Name)
	}

	assert.NoError(t, repo.UpsertAbilityScore(ctx, core.AbilityScore{CharacterID: created.ID, Dexterity: 16, Constitution: 14, Strength: 10, Intelligence: 10, Wisdom: 10, Charisma: 10}))
	found, err = repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 16, found.AbilityScore.Dexterity)
	}

	_, err = repo.SaveItem(ctx, core.CharacterItem{CharacterID: created.ID, ItemID: LongswordID, Quantity: 1})
	assert.NoError(t, err)
	_, err = repo.SaveItem(ctx, core.CharacterItem{CharacterID: created.ID, ItemID: LongswordID, Quantity: 3, Equipped: true})
	assert.NoError(t, err)

	items, err := repo.ListItems(ctx, created.ID)
	if assert.NoError(t, err) && assert.Len(t, items, 1) {
		assert.Equal(t, 3, items[0].Quantity)
		assert.True(t, items[0].Equipped)
		assert.Equal(t, "Longsword", items[0].Item.Name)
	}

	_, err = repo.CreateSpell(ctx, core.CharacterSpell{CharacterID: created.ID, SpellID: MagicMissile})
	assert.NoError(t, err)
	_, err = repo.CreateSpell(ctx, core.CharacterSpell{CharacterID: created.ID, SpellID: MagicMissile})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	_, err = repo.UpdateSpell(ctx, core.CharacterSpell{CharacterID: created.ID, SpellID: MagicMissile, Prepared: true})
	assert.NoError(t, err)

	spell, err := repo.GetSpell(ctx, created.ID, MagicMissile)
	if assert.NoError(t, err) {
		assert.True(t, spell.Prepared)
	}

	assert.NoError(t, repo.DeleteSpell(ctx, created.ID, MagicMissile))
	assert.ErrorAs(t, repo.DeleteSpell(ctx, created.ID, MagicMissile), &core.ErrorNotFound{})

	assert.NoError(t, repo.DeleteItem(ctx, created.ID, LongswordID))
	assert.ErrorAs(t, repo.DeleteItem(ctx, created.ID, LongswordID), &core.ErrorNotFound{})

	assert.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	exists, err := repo.Exists(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.False(t, exists)
	}

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), count)
	}

	// soft-deleted rows stay in the table
	var raw int64
	assert.NoError(t, db.Unscoped().Model(&core.Character{}).Where("id = ?", created.ID).Count(&raw).Error)
	assert.Equal(t, int64(1), raw)
}

func TestClassUpdateRecalculatesCharacters(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB(t)
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC(t)
	defer cleanup_mc()

	rdb, cleanup_rdb := testutil.CreateRDB(t)
	defer cleanup_rdb()

	assert.NoError(t, db.Create(&core.CharacterClass{ID: FighterID, Name: "Fighter", HitDie: core.D8}).Error)
	assert.NoError(t, db.Create(&core.Species{ID: HumanID, Name: "Human", Speed: 30}).Error)
	assert.NoError(t, db.Create(&core.Background{ID: SoldierID, Name: "Soldier"}).Error)

	repo := NewRepository(db, mc)

	err := repo.Transaction(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, core.Character{
			ID:           CharacterID,
			Name:         "Aria",
			ClassID:      FighterID,
			SpeciesID:    HumanID,
			BackgroundID: SoldierID,
			Alignment:    core.LawfulGood,
			Level:        1,
		})
		if err != nil {
			return err
		}
		err = repo.UpsertAbilityScore(ctx, core.AbilityScore{CharacterID: CharacterID, Dexterity: 10, Constitution: 14})
		if err != nil {
			return err
		}
		_, err = recalculate(ctx, repo, CharacterID)
		return err
	})
	if !assert.NoError(t, err) {
		return
	}

	before, err := repo.Get(ctx, CharacterID)
	if assert.NoError(t, err) {
		assert.Equal(t, 10, before.MaxHitPoints)
	}

	classService := class.NewService(class.NewRepository(db, rdb, core.DefaultConfig()), NewRecalculator(repo))

	// warm the class cache with the old hit die
	_, err = classService.Get(ctx, FighterID)
	assert.NoError(t, err)

	_, err = classService.Update(ctx, FighterID, core.CharacterClass{Name: "Fighter", HitDie: core.D12})
	if !assert.NoError(t, err) {
		return
	}

	after, err := repo.Get(ctx, CharacterID)
	if assert.NoError(t, err) {
		assert.Equal(t, 14, after.MaxHitPoints)
		assert.Equal(t, 14, after.CurrentHitPoints)
	}

	cached, err := classService.Get(ctx, FighterID)
	if assert.NoError(t, err) {
		assert.Equal(t, core.D12, cached.HitDie)
	}

	// malformed character ids never reach postgres
	_, err = repo.GetItem(ctx, "abc", LongswordID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
	assert.ErrorAs(t, repo.DeleteSpell(ctx, "abc", MagicMissile), &core.ErrorNotFound{})
	_, err = repo.UpdateSpell(ctx, core.CharacterSpell{CharacterID: "abc", SpellID: MagicMissile})
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
