package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel возвращается, когда бронь не может быть отменена
	// из своего текущего статуса
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrCancelTooLate возвращается, когда до начала брони осталось меньше
	// минимального окна отмены для гостевого канала
	ErrCancelTooLate = errors.New("too late to cancel reservation")

	// ErrCannotMarkNoShow возвращается, когда бронь нельзя отметить как no-show
	ErrCannotMarkNoShow = errors.New("reservation cannot be marked as no-show")

	// ErrTooEarlyForNoShow возвращается, когда допустимое опоздание еще не истекло
	ErrTooEarlyForNoShow = errors.New("lateness threshold not reached yet")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
