package util

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	invalidText         = "22P02"
)

// NewID returns a new random primary key
func NewID() string {
	return uuid.New().String()
}

// IsUUID reports whether s is a canonical uuid
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsUniqueViolation reports whether err was caused by a unique constraint
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsForeignKeyViolation reports whether err was caused by a foreign key constraint
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// IsInvalidText reports whether postgres rejected a value for its column type, e.g. a malformed uuid
func IsInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidText
}

// TranslateError maps driver errors onto the core error types
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return core.NewErrorNotFound()
	case IsUniqueViolation(err):
		return core.NewErrorAlreadyExists()
	case IsForeignKeyViolation(err):
		return core.NewErrorInvalidArgument("violates a reference between objects")
	case IsInvalidText(err):
		return core.NewErrorInvalidArgument("malformed value")
	default:
		return err
	}
}
