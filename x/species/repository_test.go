package species

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB(t)
	defer cleanup_db()

	rdb, cleanup_rdb := testutil.CreateRDB(t)
	defer cleanup_rdb()

	repo := NewRepository(db, rdb, core.DefaultConfig())

	created, err := repo.Create(ctx, core.Species{
		Name:           "Dwarf",
		Speed:          25,
		Size:           "medium",
		AbilityBonuses: core.AbilityBonuses{"constitution": 2},
		Languages:      []string{"Common", "Dwarvish"},
	})
	if !assert.NoError(t, err) {
		return
	}

	found, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 25, found.Speed)
		assert.Equal(t, core.AbilityBonuses{"constitution": 2}, found.AbilityBonuses)
	}

	// served from cache after the redis entry is written
	cached, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, found.Name, cached.Name)
	}

	found.Speed = 30
	updated, err := repo.Update(ctx, found)
	if assert.NoError(t, err) {
		assert.Equal(t, 30, updated.Speed)
	}

	byName, err := repo.GetByName(ctx, "Dwarf")
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, byName.ID)
	}

	err = repo.Delete(ctx, created.ID)
	assert.NoError(t, err)

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
