package db

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/logger"
)

type contextKey int

const transactionKey contextKey = iota

var txSequence int64

type transaction struct {
	tx         *gorm.DB
	txid       int64
	rollback   bool
	rollbackOn error
}

// NewContext returns a new context with a transaction stored in it. Callers must Resolve it.
func NewContext(ctx context.Context, connection *ConnectionFactory) (context.Context, error) {
	tx := connection.New().WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "beginning transaction")
	}
	txid := atomic.AddInt64(&txSequence, 1)
	ctx = context.WithValue(ctx, transactionKey, &transaction{tx: tx, txid: txid})
	ctx = context.WithValue(ctx, logger.TxIDKey, txid)
	return ctx, nil
}

// Resolve commits the transaction stored in ctx, or rolls it back when it was marked for rollback.
func Resolve(ctx context.Context) error {
	t, ok := ctx.Value(transactionKey).(*transaction)
	if !ok {
		return errors.New("no transaction in context")
	}
	ulog := logger.NewUHCLogger(ctx)

	if t.rollback {
		if err := t.tx.Rollback().Error; err != nil {
			return errors.Wrap(err, "rolling back transaction")
		}
		if t.rollbackOn != nil {
			ulog.V(10).Infof("Rolled back transaction: %v", t.rollbackOn)
		} else {
			ulog.V(10).Infof("Rolled back transaction")
		}
		return nil
	}

	if err := t.tx.Commit().Error; err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return nil
}

// MarkForRollback flags the transaction stored in ctx to be rolled back by Resolve.
func MarkForRollback(ctx context.Context, err error) {
	t, ok := ctx.Value(transactionKey).(*transaction)
	if !ok {
		glog.Warningf("Could not mark transaction for rollback: no transaction in context")
		return
	}
	t.rollback = true
	t.rollbackOn = err
}

// Conn returns the transaction stored in ctx, or a plain session of connection when there is none.
func Conn(ctx context.Context, connection *ConnectionFactory) *gorm.DB {
	if t, ok := ctx.Value(transactionKey).(*transaction); ok {
		return t.tx
	}
	return connection.New().WithContext(ctx)
}
