package util

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

type txState struct {
	tx    *gorm.DB
	hooks *[]func(context.Context)
}

// Transaction runs fn in a database transaction carried by the context passed to fn.
// Repositories reach it through Conn, so calls made by different packages join the same transaction.
// A nested call becomes a savepoint of the outer one.
func Transaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	outer, nested := ctx.Value(txKey{}).(txState)

	conn := db
	hooks := new([]func(context.Context))
	if nested {
		conn = outer.tx
		hooks = outer.hooks
	}
	mark := len(*hooks)

	err := conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, txState{tx, hooks}))
	})
	if err != nil {
		*hooks = (*hooks)[:mark]
		return err
	}

	if !nested {
		for _, hook := range *hooks {
			hook(ctx)
		}
	}

	return nil
}

// Conn returns the transaction carried by ctx, or db when there is none
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if state, ok := ctx.Value(txKey{}).(txState); ok {
		return state.tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// InTx reports whether ctx carries a transaction
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(txState)
	return ok
}

// AfterCommit defers fn until the outermost transaction of ctx commits.
// Without a transaction fn runs immediately. A rollback drops it.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if state, ok := ctx.Value(txKey{}).(txState); ok {
		*state.hooks = append(*state.hooks, fn)
		return
	}
	fn(ctx)
}
