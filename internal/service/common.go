package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/ecollege-api/pkg/database"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/validation"
)

var errEmptyUpdate = errors.New("update payload carries no known field")

type existenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

func viewKey(entity string, id int64) string {
	return fmt.Sprintf("%s:%d", entity, id)
}

func listKey(entity string) string {
	return entity + ":list"
}

// invalid logs the failing fields and returns an Inoperable error.
func invalid(logger *zap.Logger, entity string, err error) error {
	logger.Debug("payload rejected", zap.String("entity", entity), zap.Strings("fields", validation.Fields(err)), zap.Error(err))
	return appErrors.Inoperable(err)
}

// storeFailure classifies a repository error: missing rows become NotFound,
// referential violations become Inoperable, anything else is logged as a
// server error.
func storeFailure(logger *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.NotFound(err)
	case database.IsForeignKeyViolation(err):
		return appErrors.Inoperable(err)
	default:
		logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
		return appErrors.Server(fmt.Errorf("%s: %w", op, err))
	}
}

// requireParent rejects a write whose foreign key does not resolve.
func requireParent(ctx context.Context, logger *zap.Logger, checker existenceChecker, parent string, id int64) error {
	ok, err := checker.Exists(ctx, id)
	if err != nil {
		return storeFailure(logger, "check "+parent, err)
	}
	if !ok {
		return appErrors.Inoperable(fmt.Errorf("%s %d does not exist", parent, id))
	}
	return nil
}
