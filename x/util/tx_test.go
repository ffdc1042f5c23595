package util_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/internal/testutil"
	"github.com/totegamma/charsheet/x/util"
)

func TestAfterCommitWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	assert.False(t, util.InTx(ctx))

	ran := false
	util.AfterCommit(ctx, func(ctx context.Context) { ran = true })
	assert.True(t, ran)
}

func TestTransaction(t *testing.T) {
	db, cleanup := testutil.CreateDB(t)
	defer cleanup()

	ctx := context.Background()

	var hooks []string
	committed := core.Background{ID: util.NewID(), Name: "Acolyte"}
	savepoint := core.Background{ID: util.NewID(), Name: "Sage"}

	err := util.Transaction(ctx, db, func(ctx context.Context) error {
		assert.True(t, util.InTx(ctx))
		if err := util.Conn(ctx, db).Create(&committed).Error; err != nil {
			return err
		}
		util.AfterCommit(ctx, func(ctx context.Context) { hooks = append(hooks, "outer") })

		nestedErr := util.Transaction(ctx, db, func(ctx context.Context) error {
			if err := util.Conn(ctx, db).Create(&savepoint).Error; err != nil {
				return err
			}
			util.AfterCommit(ctx, func(ctx context.Context) { hooks = append(hooks, "dropped") })
			return errors.New("abort savepoint")
		})
		assert.Error(t, nestedErr)

		// nothing runs before the outer commit
		assert.Empty(t, hooks)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"outer"}, hooks)

	var count int64
	db.Model(&core.Background{}).Where("id = ?", committed.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&core.Background{}).Where("id = ?", savepoint.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	hooks = nil
	err = util.Transaction(ctx, db, func(ctx context.Context) error {
		util.AfterCommit(ctx, func(ctx context.Context) { hooks = append(hooks, "rolled back") })
		return errors.New("abort")
	})
	assert.Error(t, err)
	assert.Empty(t, hooks)
}
