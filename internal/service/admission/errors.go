package admission

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPastDate возвращается, когда дата брони уже прошла
	ErrPastDate = errors.New("admission: reservation date is in the past")

	// ErrInvalidPartySize возвращается при некорректном числе гостей
	ErrInvalidPartySize = errors.New("admission: party size must be a positive integer")

	// ErrInvalidTime возвращается при нераспознанном формате времени
	ErrInvalidTime = errors.New("admission: invalid start time")

	// ErrInvalidDuration возвращается при длительности вне допустимых границ
	ErrInvalidDuration = errors.New("admission: invalid duration")

	// ErrCrossesMidnight возвращается, когда окно брони выходит за полночь:
	// брони живут в пределах одного календарного дня
	ErrCrossesMidnight = errors.New("admission: reservation window extends past midnight")

	// ErrOutsideBusinessHours возвращается, когда время вне часов работы.
	// Конкретный экземпляр — *OutsideHoursError с интервалами дня.
	ErrOutsideBusinessHours = errors.New("admission: outside business hours")

	// ErrTableNotFound возвращается, когда закрепленный стол не найден
	ErrTableNotFound = errors.New("admission: table not found")

	// ErrTableInactive возвращается, когда закрепленный стол неактивен
	ErrTableInactive = errors.New("admission: table is not active")

	// ErrPartyExceedsTableCapacity возвращается, когда гостей больше мест за столом
	ErrPartyExceedsTableCapacity = errors.New("admission: party exceeds table capacity")

	// ErrDuplicateReservation возвращается, когда у клиента уже есть активная
	// бронь на ту же дату с тем же временем начала
	ErrDuplicateReservation = errors.New("admission: duplicate reservation for customer")

	// ErrTableOverlap возвращается при пересечении с другой бронью того же стола
	ErrTableOverlap = errors.New("admission: table already reserved for this time")

	// ErrInsufficientCapacity возвращается при нехватке совокупной вместимости.
	// Конкретный экземпляр — *CapacityError с числами для сообщения.
	ErrInsufficientCapacity = errors.New("admission: insufficient total capacity")

	// ErrSlotLimitReached возвращается при достижении лимита броней на слот,
	// если он задан в политике ресторана
	ErrSlotLimitReached = errors.New("admission: reservation limit for this slot reached")

	// ErrNoTableAvailable возвращается, когда автоназначение не нашло стол,
	// а политика запрещает брони без стола
	ErrNoTableAvailable = errors.New("admission: no table available for this time")

	// ErrInternal возвращается при инфраструктурных ошибках коллабораторов
	ErrInternal = errors.New("admission: internal error")
)

// OutsideHoursError несет интервалы работы дня, чтобы вызывающая сторона
// могла показать или предложить альтернативы без повторного запроса
type OutsideHoursError struct {
	DayName   string
	Intervals []string // "HH:MM-HH:MM", по возрастанию открытия; пусто = выходной
}

// Error различает "закрыто весь день" и "открыто, но не в это время"
func (e *OutsideHoursError) Error() string {
	if len(e.Intervals) == 0 {
		return fmt.Sprintf("admission: restaurant is closed on %s", e.DayName)
	}
	return fmt.Sprintf("admission: time is outside business hours on %s, open: %s",
		e.DayName, strings.Join(e.Intervals, ", "))
}

// Is позволяет errors.Is(err, ErrOutsideBusinessHours)
func (e *OutsideHoursError) Is(target error) bool {
	return target == ErrOutsideBusinessHours
}

// ClosedAllDay возвращает true, если на этот день нет интервалов работы
func (e *OutsideHoursError) ClosedAllDay() bool {
	return len(e.Intervals) == 0
}

// CapacityError несет числа для сообщения о нехватке вместимости
type CapacityError struct {
	TotalCapacity int
	Reserved      int
	Requested     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("admission: insufficient capacity: total %d, reserved %d, requested %d",
		e.TotalCapacity, e.Reserved, e.Requested)
}

// Is позволяет errors.Is(err, ErrInsufficientCapacity)
func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}
