package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// storeErrorFields describes a store failure for the log line that precedes
// folding it into a generic error.
func storeErrorFields(err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.Bool("timeout", pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded)),
	}

	if errors.Is(err, context.Canceled) {
		fields = append(fields, zap.Bool("canceled", true))
	}
	if errors.Is(err, gorm.ErrInvalidField) || errors.Is(err, gorm.ErrInvalidData) {
		fields = append(fields, zap.String("kind", "mapping"))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields,
			zap.String("sqlstate", pgErr.Code),
			zap.String("severity", pgErr.Severity),
		)
		if pgErr.TableName != "" {
			fields = append(fields, zap.String("table", pgErr.TableName))
		}
	}

	return fields
}

// mapRepositoryError keeps the caller-facing error fixed no matter what the
// store reported.
func mapRepositoryError(err error, generic error) error {
	if err == nil {
		return nil
	}
	return generic
}
