package create_reservation

import "errors"

// Ошибки допуска (прошедшая дата, часы работы, пересечения, вместимость)
// проходят из пакета admission без переупаковки: обработчики различают их
// через errors.Is по его сентинелам.
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
