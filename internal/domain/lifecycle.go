package domain

// lifecycleTransitions описывает допустимые переходы статусов брони.
// pending -> confirmed -> in_progress -> completed; отмена возможна из любого
// нетерминального статуса, no-show только до начала обслуживания.
var lifecycleTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// CanTransition reports whether a status change is allowed by the lifecycle
func CanTransition(from, to ReservationStatus) bool {
	allowed, ok := lifecycleTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known reservation status
func IsValidStatus(s ReservationStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidChannel reports whether c is a known reservation channel
func IsValidChannel(c Channel) bool {
	for _, v := range ValidChannels {
		if v == c {
			return true
		}
	}
	return false
}
