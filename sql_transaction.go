package pgqb

import (
	"context"
	"fmt"

	"github.com/gopsql/db"
	"github.com/pkg/errors"
)

type (
	TransactionBlock func(context.Context, db.Tx) error
)

// MustTransaction starts a transaction, uses context.Background() internally
// and panics if transaction fails.
func (t Table) MustTransaction(block TransactionBlock) {
	if err := t.Transaction(block); err != nil {
		panic(err)
	}
}

// Transaction starts a transaction, uses context.Background() internally.
func (t Table) Transaction(block TransactionBlock) error {
	return t.TransactionCtx(context.Background(), block)
}

// MustTransactionCtx starts a transaction and panics if transaction fails.
func (t Table) MustTransactionCtx(ctx context.Context, block TransactionBlock) {
	if err := t.TransactionCtx(ctx, block); err != nil {
		panic(err)
	}
}

// TransactionCtx starts a transaction. The transaction is committed if block
// returns nil, otherwise it is rolled back. A panic in block also rolls back
// the transaction and is returned as error.
//
//	users.MustTransaction(func(ctx context.Context, tx db.Tx) error {
//		users.Insert("name", "Alice").MustExecuteCtxTx(ctx, tx)
//		users.Insert("name", "Bob").MustExecuteCtxTx(ctx, tx)
//		return nil
//	})
func (t Table) TransactionCtx(ctx context.Context, block TransactionBlock) (err error) {
	if t.connection == nil {
		return ErrNoConnection
	}
	t.log("BEGIN", nil)
	var tx db.Tx
	tx, err = t.connection.BeginTx(ctx, "", false)
	if err != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.log("ROLLBACK", nil)
			tx.Rollback(ctx)
			if rerr, ok := r.(error); ok {
				err = rerr
			} else {
				err = errors.New(fmt.Sprint(r))
			}
		} else if err != nil {
			t.log("ROLLBACK", nil)
			tx.Rollback(ctx)
		} else {
			t.log("COMMIT", nil)
			err = tx.Commit(ctx)
		}
	}()
	err = block(ctx, tx)
	return
}
