// Package calendar содержит утилиты для работы с календарными датами.
// Все вычисления дня недели и сравнения дат привязаны к полуночи UTC,
// чтобы результат не зависел от локальной таймзоны процесса.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat возвращается при некорректной строке даты
var ErrInvalidDateFormat = errors.New("calendar: invalid date format")

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// dayNames индексируется днём недели: 0=Sunday .. 6=Saturday
var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ParseDate parses a "YYYY-MM-DD" string into a UTC-midnight time.Time.
// A trailing time part after 'T' is ignored.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// Normalize returns the UTC midnight of the calendar date carried by t.
// The calendar date is read from t's own location, then re-anchored to UTC,
// so a date parsed anywhere in the world stays the same date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayOfWeek resolves the day of week for a calendar date: 0=Sunday .. 6=Saturday.
// Resolution happens at UTC midnight and never consults the local zone.
func DayOfWeek(date time.Time) int {
	return int(Normalize(date).Weekday())
}

// DayName returns the English weekday name for a 0=Sunday..6=Saturday index.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}

// IsPast reports whether date falls on an earlier calendar day than now,
// comparing both at UTC midnight.
func IsPast(date, now time.Time) bool {
	nowUTC := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return Normalize(date).Before(nowUTC)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
