package hours

import "errors"

var (
	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("business hour interval not found")

	// ErrInvalidDay возвращается при дне недели вне 0..6
	ErrInvalidDay = errors.New("day of week must be between 0 and 6")

	// ErrInvalidRange возвращается, когда открытие не раньше закрытия
	ErrInvalidRange = errors.New("open time must be before close time")

	// ErrIntervalOverlap возвращается при пересечении с другим интервалом того же дня
	ErrIntervalOverlap = errors.New("interval overlaps an existing one for this day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
