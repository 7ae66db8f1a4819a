package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxnFunc is the body of a multi-document transaction. The context it
// receives is session-bound; every repository call made with it joins
// the same transaction.
type TxnFunc func(ctx context.Context) error

// TxnRunner runs fn atomically. Services hold a TxnRunner instead of the
// Mongo client so tests can substitute a pass-through.
type TxnRunner func(ctx context.Context, fn TxnFunc) error

// WithTransaction executes fn inside a MongoDB multi-document transaction.
// The whole unit either commits or aborts; concurrent writers to the same
// documents abort with a transient transaction error.
func WithTransaction(ctx context.Context, fn TxnFunc) error {
	sess, err := MongoClient.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// IsTransient reports whether the error is a retryable transaction
// conflict (two writers touched the same documents).
func IsTransient(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}
