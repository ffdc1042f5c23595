package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, TranslateError(nil))

	err := TranslateError(fmt.Errorf("get: %w", gorm.ErrRecordNotFound))
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	err = TranslateError(&pgconn.PgError{Code: "23505"})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	err = TranslateError(gorm.ErrDuplicatedKey)
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	err = TranslateError(&pgconn.PgError{Code: "23503"})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	err = TranslateError(fmt.Errorf("list: %w", &pgconn.PgError{Code: "22P02"}))
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	other := errors.New("boom")
	assert.Equal(t, other, TranslateError(other))
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.True(t, IsUUID(id))
	assert.NotEqual(t, id, NewID())
	assert.False(t, IsUUID("not-a-uuid"))
}
