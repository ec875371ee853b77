// Package txn runs a function inside a MongoDB multi-document transaction.
//
// Stores bind to the session through the context, so any store method
// called with the callback's context joins the transaction. On servers
// without transaction support (standalone mongod, as in dev and most test
// setups) Run degrades to executing the function directly; the write paths
// lose atomicity but keep working, which matches how the service is run
// outside replica-set deployments.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn within one transaction: commit on nil, abort on error.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger, fn func(ctx context.Context) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logger.Warn("mongo sessions unavailable; running without transaction", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logger.Warn("mongo transactions unavailable; running without transaction", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// notSupportedCodes are server codes returned when the deployment cannot
// run multi-document transactions (20 IllegalOperation on standalone,
// 51 and 263 variants from older servers and DocumentDB).
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err indicates the server cannot run
// transactions at all, as opposed to a transaction that failed.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) && notSupportedCodes[ce.Code] {
		return true
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "illegal operation") {
		return true
	}
	if strings.Contains(s, "transaction") && (strings.Contains(s, "replica set") || strings.Contains(s, "session")) {
		return true
	}
	if strings.Contains(s, "session") && strings.Contains(s, "not supported") {
		return true
	}
	return false
}
