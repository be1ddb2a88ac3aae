package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует
// ни одному из поддерживаемых форматов
var ErrInvalidTimeFormat = errors.New("types: invalid time format")

// TimeString represents a clock time as "HH:MM" (24-hour).
// It is stored in the database as a TIME column and compared as minute-of-day.
type TimeString string

const timeStringLayout = "15:04"

// clockPattern извлекает часы и минуты из строки времени
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// meridiemPattern находит локализованные маркеры 12-часового формата:
// "am", "pm", "a.m.", "p. m." и их варианты с пробелами и регистром
var meridiemPattern = regexp.MustCompile(`(?i)([ap])\.?\s*m\.?\s*$`)

// secondsPattern матчит хвост ":SS" после HH:MM
var secondsPattern = regexp.MustCompile(`^:\d{2}$`)

// NewTimeString creates a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromMinutes creates a TimeString from a minute-of-day offset.
func NewTimeStringFromMinutes(minutes int) TimeString {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

const minutesPerDay = 24 * 60

// NewTimeStringFromString parses a time string into a normalized TimeString.
//
// Accepted formats (closed set):
//   - "HH:MM" (24-hour)
//   - "HH:MM:SS" (seconds are dropped)
//   - 12-hour with a trailing meridiem marker: "7:30 pm", "07:30 p. m.",
//     "11:00 a.m." and case/spacing variants
//
// Anything else fails with ErrInvalidTimeFormat.
func NewTimeStringFromString(s string) (TimeString, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}

	meridiem := ""
	if m := meridiemPattern.FindStringSubmatch(raw); m != nil {
		meridiem = strings.ToLower(m[1])
		raw = strings.TrimSpace(raw[:len(raw)-len(m[0])])
	}

	clock := clockPattern.FindStringSubmatch(raw)
	if clock == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// Остаток после HH:MM может быть только секундами ":SS"
	rest := raw[len(clock[0]):]
	if rest != "" && !secondsPattern.MatchString(rest) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	var hours, mins int
	if _, err := fmt.Sscanf(clock[0], "%d:%d", &hours, &mins); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	switch meridiem {
	case "p":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hours != 12 {
			hours += 12
		}
	case "a":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hours == 12 {
			hours = 0
		}
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, mins)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed 24-hour "HH:MM" string.
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// Minutes returns the minute-of-day offset (0..1439).
// The value must be valid; use Validate first for untrusted input.
func (t TimeString) Minutes() int {
	m, err := t.minutes()
	if err != nil {
		return 0
	}
	return m
}

func (t TimeString) minutes() (int, error) {
	var hours, mins int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return hours*60 + mins, nil
}

// AddMinutes returns the time shifted forward by n minutes.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + n), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Value implements driver.Valuer for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
// Postgres TIME columns arrive as "HH:MM:SS" strings or time.Time values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

// Overlaps reports whether the half-open intervals [t, tEnd) and
// [other, otherEnd) intersect. Intervals that only touch do not overlap.
func Overlaps(start, end, otherStart, otherEnd TimeString) bool {
	return otherStart.IsBefore(end) && otherEnd.IsAfter(start)
}
