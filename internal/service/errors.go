package service

import (
	"errors"
	"strings"

	"github.com/alicheaibx/ems-challenge/internal/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// mapDatabaseError marks constraint violations from either driver with
// CodeConstraint and keeps the driver's message as is.
func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514", "23503", "23502":
			return apperror.Constraint(pgErr.Message)
		}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return apperror.Constraint(sqliteErr.Error())
	}

	return err
}

func missingFieldsError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return apperror.New(apperror.CodeValidation, strings.Join(fields, ", ")+" required")
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func trim(value string) string {
	return strings.TrimSpace(value)
}
