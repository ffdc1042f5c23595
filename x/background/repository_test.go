package background

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/internal/testutil"
	"github.com/totegamma/charsheet/x/listing"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB(t)
	defer cleanup_db()

	repo := NewRepository(db)

	for _, name := range []string{"Acolyte", "Criminal", "Sage"} {
		_, err := repo.Create(ctx, core.Background{
			Name:               name,
			SkillProficiencies: []string{"insight"},
		})
		assert.NoError(t, err)
	}

	_, err := repo.Create(ctx, core.Background{Name: "Sage"})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	q, err := listing.Parse(core.ListOptions{PageSize: 2, OrderBy: "name desc"}, listFields, listing.DefaultOrder)
	if !assert.NoError(t, err) {
		return
	}

	page, err := repo.List(ctx, q)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), page.Total)
		if assert.Len(t, page.Items, 2) {
			assert.Equal(t, "Sage", page.Items[0].Name)
			assert.Equal(t, "Criminal", page.Items[1].Name)
		}
	}

	q, err = listing.Parse(core.ListOptions{Filter: `name = "Acolyte"`}, listFields, listing.DefaultOrder)
	if !assert.NoError(t, err) {
		return
	}

	page, err = repo.List(ctx, q)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), page.Total)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), count)
	}
}
