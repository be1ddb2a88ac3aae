package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-19")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), d)

	// Хвост с временем отбрасывается
	d, err = ParseDate("2025-12-19T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("19.12.2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDayOfWeek(t *testing.T) {
	// 2025-12-19 — пятница
	assert.Equal(t, 5, DayOfWeek(time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC)))
	// 2025-12-21 — воскресенье
	assert.Equal(t, 0, DayOfWeek(time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)))

	// День недели не зависит от таймзоны исходного значения
	loc := time.FixedZone("UTC+12", 12*3600)
	assert.Equal(t, 5, DayOfWeek(time.Date(2025, 12, 19, 23, 0, 0, 0, loc)))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Sunday", DayName(0))
	assert.Equal(t, "Friday", DayName(5))
	assert.Equal(t, "", DayName(7))
	assert.Equal(t, "", DayName(-1))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 12, 19, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsPast(time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошлым
	assert.False(t, IsPast(time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPast(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), now))
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	got := Normalize(time.Date(2025, 12, 19, 22, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), got)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 12, 19, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 12, 19, 23, 59, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(time.Minute)))
}
