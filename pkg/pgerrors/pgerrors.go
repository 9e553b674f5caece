// Package pgerrors классифицирует ошибки PostgreSQL по SQLSTATE коду
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатываются явно
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeCheckViolation       = "23514"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
)

// Code возвращает SQLSTATE код, если err (или обёрнутая в нём ошибка) пришла от PostgreSQL
func Code(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

// Constraint возвращает имя нарушенного ограничения
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func is(err error, code string) bool {
	c, ok := Code(err)
	return ok && c == code
}

// IsUniqueViolation нарушение UNIQUE ограничения
func IsUniqueViolation(err error) bool { return is(err, CodeUniqueViolation) }

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool { return is(err, CodeForeignKeyViolation) }

// IsCheckViolation нарушение CHECK ограничения
func IsCheckViolation(err error) bool { return is(err, CodeCheckViolation) }

// IsExclusionViolation нарушение EXCLUDE ограничения (пересечение интервалов)
func IsExclusionViolation(err error) bool { return is(err, CodeExclusionViolation) }

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool { return is(err, CodeSerializationFailure) }
