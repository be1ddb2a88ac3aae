package update_reservation

import "errors"

// Ошибки допуска проходят из пакета admission без переупаковки,
// обработчики различают их через errors.Is по его сентинелам.
var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrNotEditable возвращается при попытке редактировать бронь
	// в терминальном статусе
	ErrNotEditable = errors.New("update_reservation: reservation can no longer be edited")

	// ErrPastDateEdit возвращается, когда не-администратор редактирует
	// бронь на прошедшую дату
	ErrPastDateEdit = errors.New("update_reservation: only admin can edit past reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
