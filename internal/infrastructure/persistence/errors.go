package persistence

import (
	"errors"

	"git.appkode.ru/pub/go/failure"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func conflict(code failure.ErrorCode, message string) error {
	return failure.NewConflictError(
		message,
		failure.WithCode(code),
		failure.WithDescription(message),
	)
}
