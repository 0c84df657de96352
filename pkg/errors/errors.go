package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUndefinedTable        = "42P01"
	CodeUndefinedColumn       = "42703"
	CodeInsufficientPrivilege = "42501"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsUndefinedTable also covers views: Postgres reports a missing view as 42P01.
func IsUndefinedTable(err error) bool {
	return Is(err, CodeUndefinedTable)
}

func IsUndefinedColumn(err error) bool {
	return Is(err, CodeUndefinedColumn)
}

func IsInsufficientPrivilege(err error) bool {
	return Is(err, CodeInsufficientPrivilege)
}

func IsConnectionErr(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
