package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// NewInvalidInputError описывает нарушение структурного контракта входных данных
// (неположительное количество, процент вне диапазона, битая таблица тиров).
// Такие ошибки никогда не приводятся молча к допустимым значениям.
func NewInvalidInputError(code failure.ErrorCode, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)

	return failure.NewInvalidArgumentError(
		message,
		failure.WithCode(code),
		failure.WithDescription(message),
	)
}

// IsInvalidInput проверяет, что ошибка является нарушением контракта входных данных.
func IsInvalidInput(err error) bool {
	return failure.IsInvalidArgumentError(err)
}

// NewNotFoundError возвращает ошибку отсутствия сущности.
func NewNotFoundError(code failure.ErrorCode, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)

	return failure.NewNotFoundError(
		message,
		failure.WithCode(code),
		failure.WithDescription(message),
	)
}

// GetCode извлекает код ошибки, если он есть.
func GetCode(err error) (failure.ErrorCode, bool) {
	code := failure.Code(err)

	return code, code != ""
}
