package txmanager

import "errors"

var (
	// ErrBeginTx не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")

	// ErrTimeout единица работы не уложилась в отведённое время
	ErrTimeout = errors.New("txmanager: transaction timeout")
)
