package domain

// Default policy values
const (
	DefaultStandardDurationMinutes = 90
	DefaultSlotIntervalMinutes     = 30
	DefaultMinCancelLeadMinutes    = 60
	DefaultMaxLatenessMinutes      = 20
)

// Business validation constants
const (
	MinPartySize            = 1
	MinTableCapacity        = 1
	MinDurationMinutes      = 15
	MaxDurationMinutes      = 480 // 8 hours
	MinSlotIntervalMinutes  = 5
	MaxSlotIntervalMinutes  = 240
	MaxSuggestedSlots       = 5
	MaxNotesLength          = 500
	MaxCancelReasonLength   = 500
	MaxGuestNameLength      = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, освобождающих слот.
// Используется при фильтрации для проверок пересечений и вместимости.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
	StatusCompleted,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// ValidStatuses все допустимые статусы брони
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ValidChannels все допустимые каналы создания брони
var ValidChannels = []Channel{
	ChannelWeb,
	ChannelPhone,
	ChannelInPerson,
}
