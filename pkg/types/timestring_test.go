package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "24-hour", input: "18:30", want: "18:30"},
		{name: "24-hour with seconds", input: "18:30:45", want: "18:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "pm marker", input: "7:00 pm", want: "19:00"},
		{name: "pm with dots", input: "07:30 p. m.", want: "19:30"},
		{name: "am with dots", input: "11:00 a.m.", want: "11:00"},
		{name: "noon pm", input: "12:00 pm", want: "12:00"},
		{name: "midnight am", input: "12:00 am", want: "00:00"},
		{name: "uppercase marker", input: "7:15 PM", want: "19:15"},
		{name: "surrounding spaces", input: "  10:00  ", want: "10:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
		{name: "pm hour out of range", input: "13:00 pm", wantErr: true},
		{name: "trailing garbage", input: "10:00x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 1110, TimeString("18:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("18:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:30"), got)

	// Переход через полночь заворачивается
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:15").Validate())
	assert.Error(t, TimeString("bad").Validate())
	assert.Error(t, TimeString("24:00").Validate())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		start, end             TimeString
		otherStart, otherEnd   TimeString
		want                   bool
	}{
		{name: "identical", start: "18:00", end: "19:30", otherStart: "18:00", otherEnd: "19:30", want: true},
		{name: "partial", start: "18:00", end: "19:30", otherStart: "19:00", otherEnd: "20:30", want: true},
		{name: "contained", start: "18:00", end: "22:00", otherStart: "19:00", otherEnd: "20:00", want: true},
		{name: "touching ends do not overlap", start: "18:00", end: "19:30", otherStart: "19:30", otherEnd: "21:00", want: false},
		{name: "touching starts do not overlap", start: "19:30", end: "21:00", otherStart: "18:00", otherEnd: "19:30", want: false},
		{name: "disjoint", start: "12:00", end: "13:00", otherStart: "18:00", otherEnd: "19:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, tt.otherStart, tt.otherEnd))
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 12, 19, 9, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
