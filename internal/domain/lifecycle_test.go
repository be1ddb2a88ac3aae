package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to no_show", from: StatusPending, to: StatusNoShow, want: true},
		{name: "pending cannot skip to completed", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed to in_progress", from: StatusConfirmed, to: StatusInProgress, want: true},
		{name: "confirmed to no_show", from: StatusConfirmed, to: StatusNoShow, want: true},
		{name: "in_progress to completed", from: StatusInProgress, to: StatusCompleted, want: true},
		{name: "in_progress to cancelled", from: StatusInProgress, to: StatusCancelled, want: true},
		{name: "in_progress cannot be no_show", from: StatusInProgress, to: StatusNoShow, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, want: false},
		{name: "no_show is terminal", from: StatusNoShow, to: StatusConfirmed, want: false},
		{name: "unknown status", from: "frozen", to: StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("frozen"))
}

func TestIsValidChannel(t *testing.T) {
	for _, c := range ValidChannels {
		assert.True(t, IsValidChannel(c))
	}
	assert.False(t, IsValidChannel("telegram"))
}
