package find_tables

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_tables: invalid input data")

	// ErrInvalidTime возвращается при нераспознанном формате времени
	ErrInvalidTime = errors.New("find_tables: invalid start time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_tables: internal error")
)
