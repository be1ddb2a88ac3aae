package policy

import "errors"

var (
	// ErrInvalidDuration возвращается при стандартной длительности вне границ
	ErrInvalidDuration = errors.New("standard duration out of range")

	// ErrInvalidSlotInterval возвращается при шаге сетки слотов вне границ
	ErrInvalidSlotInterval = errors.New("slot interval out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
